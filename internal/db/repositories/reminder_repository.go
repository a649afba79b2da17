package repositories

import (
	"context"
	"fmt"
	"time"

	"fundforge/platform/internal/constants"
	"fundforge/platform/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ReminderRepository stores reminder-queue memberships. The settings flow is
// removal-only; Enqueue exists for the project-page opt-in and for the
// dispatch worker's tests.
type ReminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) *ReminderRepository {
	return &ReminderRepository{db}
}

func (r *ReminderRepository) Enqueue(ctx context.Context, userID, projectID int64) error {
	if _, err := r.db.ExecContext(ctx, constants.InsertReminder, userID, projectID); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Remove deletes the membership; removing an absent one is a no-op.
func (r *ReminderRepository) Remove(ctx context.Context, userID, projectID int64) error {
	if _, err := r.db.ExecContext(ctx, constants.DeleteReminder, userID, projectID); err != nil {
		return fmt.Errorf("failed to remove reminder: %w", err)
	}
	return nil
}

// ListQueuedProjects returns the project IDs the user is queued for.
func (r *ReminderRepository) ListQueuedProjects(ctx context.Context, userID int64) ([]int64, error) {
	var entries []entities.ReminderQueueEntry
	if err := r.db.SelectContext(ctx, &entries, constants.SelectRemindersByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProjectID)
	}
	return ids, nil
}

// ListDue returns memberships whose project went online at or before the
// cutoff, oldest first. Used by the dispatch worker.
func (r *ReminderRepository) ListDue(ctx context.Context, cutoff time.Time, limit int) ([]entities.ReminderQueueEntry, error) {
	var entries []entities.ReminderQueueEntry
	if err := r.db.SelectContext(ctx, &entries, constants.SelectDueReminders, cutoff, limit); err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	return entries, nil
}
