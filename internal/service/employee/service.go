package employee

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
	"github.com/jwalitptl/staff-directory/pkg/auth"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
	"github.com/jwalitptl/staff-directory/pkg/logger"
)

// Directory is the read side of the employee store other services depend on.
type Directory interface {
	GetEmployee(ctx context.Context, id int64) (*model.Employee, error)
	ListOtherEmployees(ctx context.Context, id int64) ([]*model.Employee, error)
	EmployeeExists(ctx context.Context, id int64) (bool, error)
}

type EmployeeServicer interface {
	Directory
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	UpdateEmployee(ctx context.Context, employee *model.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	SelectActing(ctx context.Context, firstName, lastName string) (*model.SelectEmployeeResponse, error)
}

type Service struct {
	repo   repository.EmployeeRepository
	cache  *cache.Cache
	tokens *auth.TokenService
	logger *logger.Logger
}

// NewService wires the employee service. A nil cache disables caching.
func NewService(repo repository.EmployeeRepository, c *cache.Cache, tokens *auth.TokenService, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  c,
		tokens: tokens,
		logger: log,
	}
}

func cacheKey(id int64) string {
	return "employee:" + strconv.FormatInt(id, 10)
}

func (s *Service) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey(id)); ok {
			employee := *cached.(*model.Employee)
			return &employee, nil
		}
	}

	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Employee", err)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if s.cache != nil {
		stored := *employee
		s.cache.SetDefault(cacheKey(id), &stored)
	}
	return employee, nil
}

func (s *Service) ListOtherEmployees(ctx context.Context, id int64) ([]*model.Employee, error) {
	employees, err := s.repo.ListExcept(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list other employees: %w", err)
	}
	return employees, nil
}

func (s *Service) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	if s.cache != nil {
		if _, ok := s.cache.Get(cacheKey(id)); ok {
			return true, nil
		}
	}
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

func (s *Service) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("employee created", "employee_id", employee.ID)
	return nil
}

func (s *Service) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Employee", err)
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	s.forget(employee.ID)
	return nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Employee", err)
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.forget(id)
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

// SelectActing finds an employee by name, ignoring case, and issues a token naming them.
func (s *Service) SelectActing(ctx context.Context, firstName, lastName string) (*model.SelectEmployeeResponse, error) {
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, apperrors.BadRequest("first_name and last_name are required", nil)
	}

	employee, err := s.repo.FindByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Employee", err)
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(employee.ID, employee.FullName())
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.SelectEmployeeResponse{
		Employee:  employee,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Service) forget(id int64) {
	if s.cache != nil {
		s.cache.Delete(cacheKey(id))
	}
}

func validateEmployee(employee *model.Employee) error {
	if strings.TrimSpace(employee.FirstName) == "" {
		return apperrors.BadRequest("first_name is required", nil)
	}
	if strings.TrimSpace(employee.LastName) == "" {
		return apperrors.BadRequest("last_name is required", nil)
	}
	return nil
}
