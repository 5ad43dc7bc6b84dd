package conversation

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jwalitptl/staff-directory/internal/model"
	"github.com/jwalitptl/staff-directory/internal/repository"
	"github.com/jwalitptl/staff-directory/internal/service/employee"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/messaging"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

type ConversationServicer interface {
	SendMessage(ctx context.Context, senderID, receiverID int64, text string) (*model.DirectMessage, error)
	GetConversation(ctx context.Context, employeeID, otherEmployeeID int64) ([]*model.DirectMessage, error)
	GetLatestConversations(ctx context.Context, employeeID int64) ([]*model.ConversationSummary, error)
}

type Service struct {
	repo      repository.DirectMessageRepository
	employees employee.Directory
	publisher messaging.Publisher
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func NewService(
	repo repository.DirectMessageRepository,
	employees employee.Directory,
	publisher messaging.Publisher,
	m *metrics.Metrics,
	log *logger.Logger,
) *Service {
	if publisher == nil {
		publisher = messaging.NopBroker{}
	}
	return &Service{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

type directMessageSentEvent struct {
	ID         int64 `json:"id"`
	SenderID   int64 `json:"sender_id"`
	ReceiverID int64 `json:"receiver_id"`
}

func (s *Service) SendMessage(ctx context.Context, senderID, receiverID int64, text string) (*model.DirectMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.BadRequest("message is required", nil)
	}
	if err := s.requireEmployee(ctx, senderID, "sender"); err != nil {
		return nil, err
	}
	if err := s.requireEmployee(ctx, receiverID, "receiver"); err != nil {
		return nil, err
	}

	message := &model.DirectMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperrors.Referential("employee", err)
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if s.metrics != nil {
		s.metrics.DirectMessagesSent.Inc()
	}
	s.publish(ctx, message)
	return message, nil
}

func (s *Service) GetConversation(ctx context.Context, employeeID, otherEmployeeID int64) ([]*model.DirectMessage, error) {
	messages, err := s.repo.ListBetween(ctx, employeeID, otherEmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return messages, nil
}

func (s *Service) GetLatestConversations(ctx context.Context, employeeID int64) ([]*model.ConversationSummary, error) {
	messages, err := s.repo.ListInvolving(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest conversations: %w", err)
	}
	return LatestPerCounterpart(employeeID, messages), nil
}

// LatestPerCounterpart keeps the newest message exchanged with each counterpart
// and orders the result newest first. On equal timestamps the row seen first wins.
func LatestPerCounterpart(employeeID int64, messages []*model.DirectMessage) []*model.ConversationSummary {
	latest := make(map[int64]*model.ConversationSummary)
	for _, m := range messages {
		other := m.CounterpartOf(employeeID)
		if current, ok := latest[other]; ok && !m.CreatedAt.After(current.CreatedAt) {
			continue
		}
		latest[other] = &model.ConversationSummary{
			DirectMessage:   *m,
			OtherEmployeeID: other,
		}
	}

	summaries := make([]*model.ConversationSummary, 0, len(latest))
	for _, summary := range latest {
		summaries = append(summaries, summary)
	}
	slices.SortStableFunc(summaries, func(a, b *model.ConversationSummary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return summaries
}

func (s *Service) requireEmployee(ctx context.Context, id int64, role string) error {
	if id <= 0 {
		return apperrors.BadRequest(role+"_id is required", nil)
	}
	exists, err := s.employees.EmployeeExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.Referential(role, nil)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, message *model.DirectMessage) {
	event := messaging.NewMessage(messaging.EventDirectMessageSent, directMessageSentEvent{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
	})

	result := metrics.ResultSuccess
	if err := s.publisher.Publish(ctx, messaging.ChannelDirectMessages, event); err != nil {
		result = metrics.ResultFailure
		s.logger.Warn("failed to publish event", "channel", messaging.ChannelDirectMessages, "error", err.Error())
	}
	if s.metrics != nil {
		s.metrics.BrokerPublishTotal.WithLabelValues(messaging.ChannelDirectMessages, result).Inc()
	}
}
