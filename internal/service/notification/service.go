package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
	"github.com/jwalitptl/staff-directory/internal/service/employee"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/messaging"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

const (
	DefaultListLimit = 20

	postTitle = "New Post"
)

// cursorLayouts are tried in order when parsing the since cursor.
// Zone-less layouts are read as UTC.
var cursorLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type NotificationServicer interface {
	GetEmployeeNotifications(ctx context.Context, employeeID int64) ([]*model.Notification, error)
	GetNewNotifications(ctx context.Context, employeeID int64, since string) ([]*model.Notification, error)
	MarkAsRead(ctx context.Context, employeeID int64, all bool, ids []int64) (*model.MarkReadResult, error)
}

type Service struct {
	repo      repository.NotificationRepository
	employees employee.Directory
	publisher messaging.Publisher
	metrics   *metrics.Metrics
	logger    *logger.Logger
	listLimit int
}

func NewService(
	repo repository.NotificationRepository,
	employees employee.Directory,
	publisher messaging.Publisher,
	m *metrics.Metrics,
	log *logger.Logger,
	listLimit int,
) *Service {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	if publisher == nil {
		publisher = messaging.NopBroker{}
	}
	return &Service{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		metrics:   m,
		logger:    log,
		listLimit: listLimit,
	}
}

type postNotifiedEvent struct {
	MessageID  int64 `json:"message_id"`
	AuthorID   int64 `json:"author_id"`
	Recipients int   `json:"recipients"`
}

// PostText renders the notification body for a broadcast message.
func PostText(author *model.Employee, title string) string {
	return fmt.Sprintf("%s %s posted \"%s\"", author.FirstName, author.LastName, title)
}

// OnPostCreated lets the service be registered as a message hook.
func (s *Service) OnPostCreated(ctx context.Context, message *model.Message) bool {
	return s.FanOut(ctx, message)
}

// FanOut creates one post notification for every employee except the author.
// It stops at the first failed insert and reports false; rows already written stay.
func (s *Service) FanOut(ctx context.Context, message *model.Message) bool {
	log := s.logger.WithFields(map[string]interface{}{
		"message_id": message.ID,
		"author_id":  message.EmployeeID,
	})

	author, err := s.employees.GetEmployee(ctx, message.EmployeeID)
	if err != nil {
		log.Error(err, "fan-out: failed to resolve author")
		s.recordFanOut(metrics.ResultFailure)
		return false
	}

	recipients, err := s.employees.ListOtherEmployees(ctx, message.EmployeeID)
	if err != nil {
		log.Error(err, "fan-out: failed to list recipients")
		s.recordFanOut(metrics.ResultFailure)
		return false
	}

	text := PostText(author, message.Title)
	referenceID := message.ID
	for i, recipient := range recipients {
		notification := &model.Notification{
			EmployeeID:  recipient.ID,
			Title:       postTitle,
			Message:     text,
			Type:        model.NotificationTypePost,
			ReferenceID: &referenceID,
		}
		if err := s.repo.Create(ctx, notification); err != nil {
			log.Error(err, "fan-out: failed to create notification",
				"recipient_id", recipient.ID, "created", i)
			s.recordCreated(i)
			s.recordFanOut(metrics.ResultFailure)
			return false
		}
	}

	s.recordCreated(len(recipients))
	s.recordFanOut(metrics.ResultSuccess)
	log.Debug("fan-out complete", "recipients", len(recipients))

	s.publish(ctx, messaging.ChannelNotifications, messaging.EventPostNotified, postNotifiedEvent{
		MessageID:  message.ID,
		AuthorID:   message.EmployeeID,
		Recipients: len(recipients),
	})
	return true
}

func (s *Service) GetEmployeeNotifications(ctx context.Context, employeeID int64) ([]*model.Notification, error) {
	notifications, err := s.repo.ListRecent(ctx, employeeID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

func (s *Service) GetNewNotifications(ctx context.Context, employeeID int64, since string) ([]*model.Notification, error) {
	cursor, err := ParseCursor(since)
	if err != nil {
		return nil, err
	}

	notifications, err := s.repo.ListSince(ctx, employeeID, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to get new notifications: %w", err)
	}
	return notifications, nil
}

// ParseCursor reads the since value clients send when polling.
func ParseCursor(since string) (time.Time, error) {
	since = strings.TrimSpace(since)
	if since == "" {
		return time.Time{}, apperrors.BadRequest("Missing since parameter", nil)
	}

	for _, layout := range cursorLayouts {
		if t, err := time.ParseInLocation(layout, since, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.BadRequest("Invalid since parameter", fmt.Errorf("unrecognised timestamp %q", since))
}

// MarkAsRead marks every notification of the employee when all is set,
// otherwise only the listed ids the employee owns.
func (s *Service) MarkAsRead(ctx context.Context, employeeID int64, all bool, ids []int64) (*model.MarkReadResult, error) {
	if employeeID <= 0 {
		return nil, apperrors.BadRequest("employee_id is required", nil)
	}

	exists, err := s.employees.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Referential("employee", nil)
	}

	var updated int64
	switch {
	case all:
		updated, err = s.repo.MarkAllRead(ctx, employeeID)
	case len(ids) == 0:
		return &model.MarkReadResult{}, nil
	default:
		updated, err = s.repo.MarkRead(ctx, employeeID, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return &model.MarkReadResult{Updated: updated}, nil
}

func (s *Service) publish(ctx context.Context, channel, eventType string, payload interface{}) {
	result := metrics.ResultSuccess
	if err := s.publisher.Publish(ctx, channel, messaging.NewMessage(eventType, payload)); err != nil {
		result = metrics.ResultFailure
		s.logger.Warn("failed to publish event", "channel", channel, "type", eventType, "error", err.Error())
	}
	if s.metrics != nil {
		s.metrics.BrokerPublishTotal.WithLabelValues(channel, result).Inc()
	}
}

func (s *Service) recordFanOut(result string) {
	if s.metrics != nil {
		s.metrics.FanOutTotal.WithLabelValues(result).Inc()
	}
}

func (s *Service) recordCreated(n int) {
	if s.metrics != nil && n > 0 {
		s.metrics.NotificationsCreated.Add(float64(n))
	}
}
