package model

// Message is a broadcast post authored by one employee and visible to all
type Message struct {
	ID          int64     `json:"id" db:"id"`
	EmployeeID  int64     `json:"employee_id" db:"employee_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Employee    *Employee `json:"employee,omitempty" db:"-"`
	Timestamps
}

type CreateMessageRequest struct {
	EmployeeID  int64  `json:"employee_id" binding:"required,gt=0"`
	Title       string `json:"title" binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"required,notblank"`
}

// UpdateMessageRequest has no employee_id: authorship is fixed at creation
type UpdateMessageRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"required,notblank"`
}
