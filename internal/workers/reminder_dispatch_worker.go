package workers

import (
	"context"
	"time"

	"fundforge/platform/internal/common"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/metrics"
	"fundforge/platform/internal/models/entities"
)

// DueReminderSource lists due reminder memberships and removes them once
// dispatched. ReminderRepository is the production implementation.
type DueReminderSource interface {
	ListDue(ctx context.Context, cutoff time.Time, limit int) ([]entities.ReminderQueueEntry, error)
	Remove(ctx context.Context, userID, projectID int64) error
}

// ReminderDispatchWorker drains due reminder memberships onto the mail
// stream. Reminders are one-time: a dispatched membership is deleted, so a
// crash between enqueue and delete can at worst duplicate an email, never
// drop one.
type ReminderDispatchWorker struct {
	source     DueReminderSource
	mailQueue  *common.MailQueueService
	metricsReg *metrics.MetricsRegistry
	interval   time.Duration
	batchSize  int
}

func NewReminderDispatchWorker(
	source DueReminderSource,
	mailQueue *common.MailQueueService,
	metricsReg *metrics.MetricsRegistry,
	interval time.Duration,
	batchSize int,
) *ReminderDispatchWorker {
	return &ReminderDispatchWorker{
		source:     source,
		mailQueue:  mailQueue,
		metricsReg: metricsReg,
		interval:   interval,
		batchSize:  batchSize,
	}
}

// Start runs the dispatch loop until the context is cancelled.
func (w *ReminderDispatchWorker) Start(ctx context.Context) {
	logging.Info("reminder dispatch worker starting",
		"interval", w.interval.String(),
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("reminder dispatch worker stopping")
			return
		case <-ticker.C:
			if err := w.dispatchDue(ctx); err != nil {
				logging.Error("reminder dispatch pass failed", "error", err.Error())
			}
		}
	}
}

func (w *ReminderDispatchWorker) dispatchDue(ctx context.Context) error {
	due, err := w.source.ListDue(ctx, time.Now(), w.batchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	items := make([]*common.ReminderEmailItem, 0, len(due))
	for _, entry := range due {
		items = append(items, &common.ReminderEmailItem{
			UserID:    entry.UserID,
			ProjectID: entry.ProjectID,
			QueuedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}

	if err := w.mailQueue.EnqueueReminderEmailBatch(ctx, items); err != nil {
		return err
	}

	for _, entry := range due {
		if err := w.source.Remove(ctx, entry.UserID, entry.ProjectID); err != nil {
			logging.Error("failed to remove dispatched reminder",
				"user_id", entry.UserID,
				"project_id", entry.ProjectID,
				"error", err.Error(),
			)
		}
	}

	if w.metricsReg != nil {
		w.metricsReg.ReminderEmailsQueued.Add(float64(len(items)))
	}

	logging.Info("reminder emails dispatched", "count", len(items))
	return nil
}
