package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
)

func TestEmployeeRepository_Create(t *testing.T) {
	base, mock := newMockBase(t)
	repo := NewEmployeeRepository(base)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees (first_name, last_name)")).
		WithArgs("Ann", "Lee").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	employee := &model.Employee{FirstName: "Ann", LastName: "Lee"}
	require.NoError(t, repo.Create(context.Background(), employee))
	assert.Equal(t, int64(1), employee.ID)
	assert.Equal(t, now, employee.CreatedAt)
}

func TestEmployeeRepository_GetNotFound(t *testing.T) {
	base, mock := newMockBase(t)
	repo := NewEmployeeRepository(base)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeeRepository_DeleteMissing(t *testing.T) {
	base, mock := newMockBase(t)
	repo := NewEmployeeRepository(base)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmployeeRepository_ListExceptEmpty(t *testing.T) {
	base, mock := newMockBase(t)
	repo := NewEmployeeRepository(base)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id <> $1 ORDER BY id")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "created_at", "updated_at"}))

	employees, err := repo.ListExcept(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestEmployeeRepository_FindByName(t *testing.T) {
	base, mock := newMockBase(t)
	repo := NewEmployeeRepository(base)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2)")).
		WithArgs("ann", "LEE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "created_at", "updated_at"}).
			AddRow(3, "Ann", "Lee", now, now))

	employee, err := repo.FindByName(context.Background(), "ann", "LEE")
	require.NoError(t, err)
	assert.Equal(t, int64(3), employee.ID)
	assert.Equal(t, "Ann Lee", employee.FullName())
}

func TestEmployeeRepository_Exists(t *testing.T) {
	base, mock := newMockBase(t)
	repo := NewEmployeeRepository(base)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, exists)
}
