package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

const purgeTimeout = 4 * time.Minute

// NotificationPurger deletes read notifications created before cutoff.
type NotificationPurger interface {
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type RetentionConfig struct {
	// RetentionDays <= 0 disables the worker.
	RetentionDays int
	// Schedule is a standard cron expression or descriptor such as "@daily".
	Schedule string
}

// NotificationRetention periodically removes read notifications older than the
// retention window. Unread notifications are never touched.
type NotificationRetention struct {
	repo    NotificationPurger
	config  RetentionConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewNotificationRetention(repo NotificationPurger, config RetentionConfig, log *logger.Logger, m *metrics.Metrics) *NotificationRetention {
	return &NotificationRetention{
		repo:    repo,
		config:  config,
		logger:  log,
		metrics: m,
		now:     time.Now,
	}
}

func (w *NotificationRetention) Enabled() bool {
	return w.config.RetentionDays > 0
}

// Purge runs one cleanup pass and returns the number of rows removed.
func (w *NotificationRetention) Purge(ctx context.Context) (int64, error) {
	if !w.Enabled() {
		return 0, nil
	}

	cutoff := w.now().UTC().AddDate(0, 0, -w.config.RetentionDays)
	rows, err := w.repo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge read notifications: %w", err)
	}

	if w.metrics != nil {
		w.metrics.NotificationsPurged.Add(float64(rows))
	}
	w.logger.Info("Purged read notifications", "rows", rows, "cutoff", cutoff.Format(time.RFC3339))
	return rows, nil
}

// Start schedules Purge and blocks until ctx is done. Overlapping runs are skipped.
func (w *NotificationRetention) Start(ctx context.Context) error {
	if !w.Enabled() {
		w.logger.Info("Notification retention disabled")
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(w.config.Schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, purgeTimeout)
		defer cancel()
		if _, err := w.Purge(runCtx); err != nil {
			w.logger.Error(err, "Notification retention run failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid retention schedule %q: %w", w.config.Schedule, err)
	}

	w.logger.Info("Notification retention started",
		"schedule", w.config.Schedule,
		"retention_days", w.config.RetentionDays,
	)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	w.logger.Info("Notification retention stopped")
	return nil
}
