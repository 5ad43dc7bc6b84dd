package model

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypePost    NotificationType = "post"
	NotificationTypeMessage NotificationType = "message"
)

// Notification is a passive, per-employee notice. Read only ever goes false to true.
type Notification struct {
	ID          int64            `json:"id" db:"id"`
	EmployeeID  int64            `json:"employee_id" db:"employee_id"`
	Title       string           `json:"title" db:"title"`
	Message     string           `json:"message" db:"message"`
	Type        NotificationType `json:"type" db:"type"`
	ReferenceID *int64           `json:"reference_id" db:"reference_id"`
	Read        bool             `json:"read" db:"read"`
	Timestamps
}

// MarkReadRequest is the body of POST /notifications/mark-read.
// EmployeeID may be omitted when an acting employee token is sent.
type MarkReadRequest struct {
	EmployeeID      int64   `json:"employee_id" binding:"omitempty,gt=0"`
	NotificationIDs []int64 `json:"notification_ids" binding:"omitempty,dive,gt=0"`
	All             bool    `json:"all"`
}

type MarkReadResult struct {
	Updated int64 `json:"updated"`
}
