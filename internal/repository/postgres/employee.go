package postgres

import (
	"context"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
)

const employeeColumns = `id, first_name, last_name, created_at, updated_at`

type employeeRepository struct {
	BaseRepository
}

func NewEmployeeRepository(base BaseRepository) repository.EmployeeRepository {
	return &employeeRepository{base}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, employee.FirstName, employee.LastName).
		Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return wrapError("create employee", err)
	}
	return nil
}

func (r *employeeRepository) Get(ctx context.Context, id int64) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var employee model.Employee
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		return nil, wrapError("get employee", err)
	}
	return &employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, employee.FirstName, employee.LastName, employee.ID).
		Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return wrapError("update employee", err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return wrapError("delete employee", err)
	}
	return expectAffected("delete employee", result)
}

func (r *employeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	employees := []*model.Employee{}
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, wrapError("list employees", err)
	}
	return employees, nil
}

func (r *employeeRepository) ListExcept(ctx context.Context, id int64) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id <> $1 ORDER BY id`

	employees := []*model.Employee{}
	if err := r.db.SelectContext(ctx, &employees, query, id); err != nil {
		return nil, wrapError("list other employees", err)
	}
	return employees, nil
}

func (r *employeeRepository) FindByName(ctx context.Context, firstName, lastName string) (*model.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2)
		ORDER BY id
		LIMIT 1
	`
	var employee model.Employee
	if err := r.db.GetContext(ctx, &employee, query, firstName, lastName); err != nil {
		return nil, wrapError("find employee by name", err)
	}
	return &employee, nil
}

func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id); err != nil {
		return false, wrapError("check employee", err)
	}
	return exists, nil
}
