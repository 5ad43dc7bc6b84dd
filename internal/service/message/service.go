package message

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
	"github.com/jwalitptl/staff-directory/internal/service/employee"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
	"github.com/jwalitptl/staff-directory/pkg/logger"
)

// PostCreatedHook runs after a broadcast message has been stored.
// The result is reported in logs only; it never changes the create outcome.
type PostCreatedHook interface {
	OnPostCreated(ctx context.Context, message *model.Message) bool
}

type PostCreatedHookFunc func(ctx context.Context, message *model.Message) bool

func (f PostCreatedHookFunc) OnPostCreated(ctx context.Context, message *model.Message) bool {
	return f(ctx, message)
}

type MessageServicer interface {
	ListMessages(ctx context.Context) ([]*model.Message, error)
	GetMessage(ctx context.Context, id int64) (*model.Message, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*model.Message, error)
	CreateMessage(ctx context.Context, message *model.Message) error
	UpdateMessage(ctx context.Context, message *model.Message) error
	DeleteMessage(ctx context.Context, id int64) error
}

type Service struct {
	repo      repository.MessageRepository
	employees employee.Directory
	logger    *logger.Logger

	mu    sync.RWMutex
	hooks []PostCreatedHook
}

func NewService(repo repository.MessageRepository, employees employee.Directory, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    log,
	}
}

// RegisterHook adds a hook to run after every successful CreateMessage.
func (s *Service) RegisterHook(hook PostCreatedHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

func (s *Service) ListMessages(ctx context.Context) ([]*model.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *Service) GetMessage(ctx context.Context, id int64) (*model.Message, error) {
	message, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Message", err)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return message, nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]*model.Message, error) {
	exists, err := s.employees.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Employee", nil)
	}

	messages, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee messages: %w", err)
	}
	return messages, nil
}

// CreateMessage stores a broadcast message and then runs the registered hooks.
func (s *Service) CreateMessage(ctx context.Context, message *model.Message) error {
	if err := validateMessage(message); err != nil {
		return err
	}

	author, err := s.employees.GetEmployee(ctx, message.EmployeeID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Referential("employee", err)
		}
		return err
	}

	if err := s.repo.Create(ctx, message); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return apperrors.Referential("employee", err)
		}
		return fmt.Errorf("failed to create message: %w", err)
	}
	message.Employee = author

	s.runHooks(context.WithoutCancel(ctx), message)
	return nil
}

func (s *Service) UpdateMessage(ctx context.Context, message *model.Message) error {
	if err := validateMessage(message); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, message); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Message", err)
		}
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

func (s *Service) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Message", err)
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (s *Service) runHooks(ctx context.Context, message *model.Message) {
	s.mu.RLock()
	hooks := make([]PostCreatedHook, len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.RUnlock()

	for _, hook := range hooks {
		if !s.runHook(ctx, hook, message) {
			s.logger.Warn("post created hook reported failure", "message_id", message.ID)
		}
	}
}

// runHook treats a panicking hook as a failed one.
func (s *Service) runHook(ctx context.Context, hook PostCreatedHook, message *model.Message) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(fmt.Errorf("panic: %v", r), "post created hook panicked",
				"message_id", message.ID,
				"stack", string(debug.Stack()),
			)
			ok = false
		}
	}()
	return hook.OnPostCreated(ctx, message)
}

func validateMessage(message *model.Message) error {
	if strings.TrimSpace(message.Title) == "" {
		return apperrors.BadRequest("title is required", nil)
	}
	if strings.TrimSpace(message.Description) == "" {
		return apperrors.BadRequest("description is required", nil)
	}
	return nil
}
