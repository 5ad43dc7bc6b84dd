package model

// Employee is the identity record every message and notification points at
type Employee struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Timestamps
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required,notblank,max=255"`
	LastName  string `json:"last_name" binding:"required,notblank,max=255"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

// SelectEmployeeRequest picks the acting employee by name, case-insensitively
type SelectEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required,notblank"`
	LastName  string `json:"last_name" binding:"required,notblank"`
}

type SelectEmployeeResponse struct {
	Employee  *Employee `json:"employee"`
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expires_at"`
}
