package postgres

import (
	"context"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
)

const messageSelect = `
	SELECT m.id, m.employee_id, m.title, m.description, m.created_at, m.updated_at,
		e.first_name AS author_first_name, e.last_name AS author_last_name
	FROM messages m
	JOIN employees e ON e.id = m.employee_id
`

// messageRow carries the joined author columns alongside the message.
type messageRow struct {
	model.Message
	AuthorFirstName string `db:"author_first_name"`
	AuthorLastName  string `db:"author_last_name"`
}

func (r messageRow) toModel() *model.Message {
	msg := r.Message
	msg.Employee = &model.Employee{
		ID:        msg.EmployeeID,
		FirstName: r.AuthorFirstName,
		LastName:  r.AuthorLastName,
	}
	return &msg
}

type messageRepository struct {
	BaseRepository
}

func NewMessageRepository(base BaseRepository) repository.MessageRepository {
	return &messageRepository{base}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (employee_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, message.EmployeeID, message.Title, message.Description).
		Scan(&message.ID, &message.CreatedAt, &message.UpdatedAt)
	if err != nil {
		return wrapError("create message", err)
	}
	return nil
}

func (r *messageRepository) Get(ctx context.Context, id int64) (*model.Message, error) {
	var row messageRow
	if err := r.db.GetContext(ctx, &row, messageSelect+` WHERE m.id = $1`, id); err != nil {
		return nil, wrapError("get message", err)
	}
	return row.toModel(), nil
}

func (r *messageRepository) Update(ctx context.Context, message *model.Message) error {
	query := `
		UPDATE messages
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING employee_id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, message.Title, message.Description, message.ID).
		Scan(&message.EmployeeID, &message.CreatedAt, &message.UpdatedAt)
	if err != nil {
		return wrapError("update message", err)
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return wrapError("delete message", err)
	}
	return expectAffected("delete message", result)
}

func (r *messageRepository) List(ctx context.Context) ([]*model.Message, error) {
	return r.list(ctx, "list messages", messageSelect+` ORDER BY m.created_at DESC, m.id DESC`)
}

func (r *messageRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*model.Message, error) {
	return r.list(ctx, "list employee messages",
		messageSelect+` WHERE m.employee_id = $1 ORDER BY m.created_at DESC, m.id DESC`, employeeID)
}

func (r *messageRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]*model.Message, error) {
	var rows []messageRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapError(op, err)
	}

	messages := make([]*model.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toModel())
	}
	return messages, nil
}
