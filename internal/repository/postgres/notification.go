package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
)

const notificationColumns = `id, employee_id, title, message, type, reference_id, read, created_at, updated_at`

type notificationRepository struct {
	BaseRepository
}

func NewNotificationRepository(base BaseRepository) repository.NotificationRepository {
	return &notificationRepository{base}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	query := `
		INSERT INTO notifications (employee_id, title, message, type, reference_id, read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		notification.EmployeeID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.ReferenceID,
		notification.Read,
	).Scan(&notification.ID, &notification.CreatedAt, &notification.UpdatedAt)
	if err != nil {
		return wrapError("create notification", err)
	}
	return nil
}

func (r *notificationRepository) ListRecent(ctx context.Context, employeeID int64, limit int) ([]*model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE employee_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	notifications := []*model.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, employeeID, limit); err != nil {
		return nil, wrapError("list notifications", err)
	}
	return notifications, nil
}

func (r *notificationRepository) ListSince(ctx context.Context, employeeID int64, since time.Time) ([]*model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE employee_id = $1 AND created_at > $2
		ORDER BY created_at DESC, id DESC
	`
	notifications := []*model.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, employeeID, since); err != nil {
		return nil, wrapError("list new notifications", err)
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, employeeID int64) (int64, error) {
	query := `
		UPDATE notifications
		SET read = TRUE, updated_at = NOW()
		WHERE employee_id = $1 AND read = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, employeeID)
	if err != nil {
		return 0, wrapError("mark notifications read", err)
	}
	return result.RowsAffected()
}

func (r *notificationRepository) MarkRead(ctx context.Context, employeeID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := `
		UPDATE notifications
		SET read = TRUE, updated_at = NOW()
		WHERE employee_id = $1 AND id = ANY($2) AND read = FALSE
	`
	result, err := r.db.ExecContext(ctx, query, employeeID, pq.Array(ids))
	if err != nil {
		return 0, wrapError("mark notifications read", err)
	}
	return result.RowsAffected()
}

func (r *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE read = TRUE AND created_at < $1`, cutoff)
	if err != nil {
		return 0, wrapError("purge notifications", err)
	}
	return result.RowsAffected()
}
