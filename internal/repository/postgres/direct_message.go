package postgres

import (
	"context"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
)

const directMessageColumns = `id, sender_id, receiver_id, message, created_at`

type directMessageRepository struct {
	BaseRepository
}

func NewDirectMessageRepository(base BaseRepository) repository.DirectMessageRepository {
	return &directMessageRepository{base}
}

func (r *directMessageRepository) Create(ctx context.Context, message *model.DirectMessage) error {
	query := `
		INSERT INTO direct_messages (sender_id, receiver_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, message.SenderID, message.ReceiverID, message.Message).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return wrapError("create direct message", err)
	}
	return nil
}

func (r *directMessageRepository) ListBetween(ctx context.Context, employeeID, otherEmployeeID int64) ([]*model.DirectMessage, error) {
	query := `
		SELECT ` + directMessageColumns + `
		FROM direct_messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC
	`
	messages := []*model.DirectMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, employeeID, otherEmployeeID); err != nil {
		return nil, wrapError("list conversation", err)
	}
	return messages, nil
}

func (r *directMessageRepository) ListInvolving(ctx context.Context, employeeID int64) ([]*model.DirectMessage, error) {
	query := `
		SELECT ` + directMessageColumns + `
		FROM direct_messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at ASC, id ASC
	`
	messages := []*model.DirectMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, employeeID); err != nil {
		return nil, wrapError("list direct messages", err)
	}
	return messages, nil
}
