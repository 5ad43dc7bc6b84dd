package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/repository/mocks"
	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

func TestPurgeUsesRetentionCutoff(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	m := metrics.New("test")
	w := NewNotificationRetention(repo, RetentionConfig{RetentionDays: 30, Schedule: "@daily"}, logger.NewNop(), m)
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	repo.On("DeleteReadBefore", mock.Anything, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Return(int64(7), nil)

	rows, err := w.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), rows)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.NotificationsPurged))
	repo.AssertExpectations(t)
}

func TestPurgeError(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	w := NewNotificationRetention(repo, RetentionConfig{RetentionDays: 1}, logger.NewNop(), nil)
	repo.On("DeleteReadBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	_, err := w.Purge(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestDisabledRetentionDoesNothing(t *testing.T) {
	repo := new(mocks.NotificationRepository)
	w := NewNotificationRetention(repo, RetentionConfig{RetentionDays: 0, Schedule: "@daily"}, logger.NewNop(), nil)

	rows, err := w.Purge(context.Background())
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NoError(t, w.Start(context.Background()))
	repo.AssertNotCalled(t, "DeleteReadBefore", mock.Anything, mock.Anything)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	w := NewNotificationRetention(new(mocks.NotificationRepository), RetentionConfig{RetentionDays: 1, Schedule: "every tuesday"}, logger.NewNop(), nil)

	assert.Error(t, w.Start(context.Background()))
}

func TestStartStopsWithContext(t *testing.T) {
	w := NewNotificationRetention(new(mocks.NotificationRepository), RetentionConfig{RetentionDays: 1, Schedule: "@hourly"}, logger.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("retention worker did not stop")
	}
}
