// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
)

var (
	_ repository.EmployeeRepository      = (*EmployeeRepository)(nil)
	_ repository.MessageRepository       = (*MessageRepository)(nil)
	_ repository.DirectMessageRepository = (*DirectMessageRepository)(nil)
	_ repository.NotificationRepository  = (*NotificationRepository)(nil)
)

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeRepository) Get(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*model.Employee)
	return employee, args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *EmployeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeRepository) ListExcept(ctx context.Context, id int64) ([]*model.Employee, error) {
	args := m.Called(ctx, id)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeRepository) FindByName(ctx context.Context, firstName, lastName string) (*model.Employee, error) {
	args := m.Called(ctx, firstName, lastName)
	employee, _ := args.Get(0).(*model.Employee)
	return employee, args.Error(1)
}

func (m *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MessageRepository) Get(ctx context.Context, id int64) (*model.Message, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*model.Message)
	return message, args.Error(1)
}

func (m *MessageRepository) Update(ctx context.Context, message *model.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MessageRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	args := m.Called(ctx)
	messages, _ := args.Get(0).([]*model.Message)
	return messages, args.Error(1)
}

func (m *MessageRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*model.Message, error) {
	args := m.Called(ctx, employeeID)
	messages, _ := args.Get(0).([]*model.Message)
	return messages, args.Error(1)
}

type DirectMessageRepository struct {
	mock.Mock
}

func (m *DirectMessageRepository) Create(ctx context.Context, message *model.DirectMessage) error {
	return m.Called(ctx, message).Error(0)
}

func (m *DirectMessageRepository) ListBetween(ctx context.Context, employeeID, otherEmployeeID int64) ([]*model.DirectMessage, error) {
	args := m.Called(ctx, employeeID, otherEmployeeID)
	messages, _ := args.Get(0).([]*model.DirectMessage)
	return messages, args.Error(1)
}

func (m *DirectMessageRepository) ListInvolving(ctx context.Context, employeeID int64) ([]*model.DirectMessage, error) {
	args := m.Called(ctx, employeeID)
	messages, _ := args.Get(0).([]*model.DirectMessage)
	return messages, args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *NotificationRepository) ListRecent(ctx context.Context, employeeID int64, limit int) ([]*model.Notification, error) {
	args := m.Called(ctx, employeeID, limit)
	notifications, _ := args.Get(0).([]*model.Notification)
	return notifications, args.Error(1)
}

func (m *NotificationRepository) ListSince(ctx context.Context, employeeID int64, since time.Time) ([]*model.Notification, error) {
	args := m.Called(ctx, employeeID, since)
	notifications, _ := args.Get(0).([]*model.Notification)
	return notifications, args.Error(1)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, employeeID int64) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, employeeID int64, ids []int64) (int64, error) {
	args := m.Called(ctx, employeeID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Publisher records published broker messages.
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return m.Called(ctx, channel, message).Error(0)
}
