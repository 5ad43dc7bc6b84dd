// Package mocks holds testify mocks of the service interfaces used by handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/service/conversation"
	"github.com/jwalitptl/staff-directory/internal/service/employee"
	"github.com/jwalitptl/staff-directory/internal/service/message"
	"github.com/jwalitptl/staff-directory/internal/service/notification"
)

var (
	_ employee.EmployeeServicer         = (*EmployeeService)(nil)
	_ message.MessageServicer           = (*MessageService)(nil)
	_ conversation.ConversationServicer = (*ConversationService)(nil)
	_ notification.NotificationServicer = (*NotificationService)(nil)
)

type EmployeeService struct {
	mock.Mock
}

func (m *EmployeeService) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeService) GetEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	args := m.Called(ctx, id)
	employee, _ := args.Get(0).(*model.Employee)
	return employee, args.Error(1)
}

func (m *EmployeeService) ListOtherEmployees(ctx context.Context, id int64) ([]*model.Employee, error) {
	args := m.Called(ctx, id)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeService) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeService) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeService) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *EmployeeService) SelectActing(ctx context.Context, firstName, lastName string) (*model.SelectEmployeeResponse, error) {
	args := m.Called(ctx, firstName, lastName)
	resp, _ := args.Get(0).(*model.SelectEmployeeResponse)
	return resp, args.Error(1)
}

type MessageService struct {
	mock.Mock
}

func (m *MessageService) ListMessages(ctx context.Context) ([]*model.Message, error) {
	args := m.Called(ctx)
	messages, _ := args.Get(0).([]*model.Message)
	return messages, args.Error(1)
}

func (m *MessageService) GetMessage(ctx context.Context, id int64) (*model.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*model.Message)
	return msg, args.Error(1)
}

func (m *MessageService) ListByEmployee(ctx context.Context, employeeID int64) ([]*model.Message, error) {
	args := m.Called(ctx, employeeID)
	messages, _ := args.Get(0).([]*model.Message)
	return messages, args.Error(1)
}

func (m *MessageService) CreateMessage(ctx context.Context, msg *model.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MessageService) UpdateMessage(ctx context.Context, msg *model.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MessageService) DeleteMessage(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type ConversationService struct {
	mock.Mock
}

func (m *ConversationService) SendMessage(ctx context.Context, senderID, receiverID int64, text string) (*model.DirectMessage, error) {
	args := m.Called(ctx, senderID, receiverID, text)
	msg, _ := args.Get(0).(*model.DirectMessage)
	return msg, args.Error(1)
}

func (m *ConversationService) GetConversation(ctx context.Context, employeeID, otherEmployeeID int64) ([]*model.DirectMessage, error) {
	args := m.Called(ctx, employeeID, otherEmployeeID)
	messages, _ := args.Get(0).([]*model.DirectMessage)
	return messages, args.Error(1)
}

func (m *ConversationService) GetLatestConversations(ctx context.Context, employeeID int64) ([]*model.ConversationSummary, error) {
	args := m.Called(ctx, employeeID)
	summaries, _ := args.Get(0).([]*model.ConversationSummary)
	return summaries, args.Error(1)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) GetEmployeeNotifications(ctx context.Context, employeeID int64) ([]*model.Notification, error) {
	args := m.Called(ctx, employeeID)
	notifications, _ := args.Get(0).([]*model.Notification)
	return notifications, args.Error(1)
}

func (m *NotificationService) GetNewNotifications(ctx context.Context, employeeID int64, since string) ([]*model.Notification, error) {
	args := m.Called(ctx, employeeID, since)
	notifications, _ := args.Get(0).([]*model.Notification)
	return notifications, args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, employeeID int64, all bool, ids []int64) (*model.MarkReadResult, error) {
	args := m.Called(ctx, employeeID, all, ids)
	result, _ := args.Get(0).(*model.MarkReadResult)
	return result, args.Error(1)
}
