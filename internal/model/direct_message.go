package model

import "time"

// DirectMessage is an immutable private message between two employees
type DirectMessage struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CounterpartOf returns the other participant relative to employeeID
func (m *DirectMessage) CounterpartOf(employeeID int64) int64 {
	if m.SenderID == employeeID {
		return m.ReceiverID
	}
	return m.SenderID
}

// ConversationSummary is the latest message exchanged with one counterpart
type ConversationSummary struct {
	DirectMessage
	OtherEmployeeID int64 `json:"other_employee_id" db:"other_employee_id"`
}

type SendDirectMessageRequest struct {
	SenderID   int64  `json:"sender_id" binding:"required,gt=0"`
	ReceiverID int64  `json:"receiver_id" binding:"required,gt=0"`
	Message    string `json:"message" binding:"required,notblank"`
}
