package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jwalitptl/staff-directory/internal/model"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row
	ErrNotFound = errors.New("record not found")
	// ErrForeignKey is returned when a write references a row that does not exist
	ErrForeignKey = errors.New("referenced record does not exist")
)

// All repository interfaces in one file
type (
	EmployeeRepository interface {
		Create(ctx context.Context, employee *model.Employee) error
		Get(ctx context.Context, id int64) (*model.Employee, error)
		Update(ctx context.Context, employee *model.Employee) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Employee, error)
		// ListExcept returns every employee whose id differs from id
		ListExcept(ctx context.Context, id int64) ([]*model.Employee, error)
		FindByName(ctx context.Context, firstName, lastName string) (*model.Employee, error)
		Exists(ctx context.Context, id int64) (bool, error)
	}

	MessageRepository interface {
		Create(ctx context.Context, message *model.Message) error
		Get(ctx context.Context, id int64) (*model.Message, error)
		Update(ctx context.Context, message *model.Message) error
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Message, error)
		ListByEmployee(ctx context.Context, employeeID int64) ([]*model.Message, error)
	}

	DirectMessageRepository interface {
		Create(ctx context.Context, message *model.DirectMessage) error
		// ListBetween returns both directions of a pair, oldest first
		ListBetween(ctx context.Context, employeeID, otherEmployeeID int64) ([]*model.DirectMessage, error)
		// ListInvolving returns every message the employee sent or received
		ListInvolving(ctx context.Context, employeeID int64) ([]*model.DirectMessage, error)
	}

	NotificationRepository interface {
		Create(ctx context.Context, notification *model.Notification) error
		ListRecent(ctx context.Context, employeeID int64, limit int) ([]*model.Notification, error)
		ListSince(ctx context.Context, employeeID int64, since time.Time) ([]*model.Notification, error)
		MarkAllRead(ctx context.Context, employeeID int64) (int64, error)
		// MarkRead only touches ids owned by employeeID
		MarkRead(ctx context.Context, employeeID int64, ids []int64) (int64, error)
		DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}
)
