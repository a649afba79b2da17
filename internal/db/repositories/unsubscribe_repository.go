package repositories

import (
	"context"
	"fmt"

	"fundforge/platform/internal/constants"
	"fundforge/platform/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// UnsubscribeRepository stores exclusion records. All writes are idempotent:
// duplicate creates hit ON CONFLICT DO NOTHING and deletes of absent rows are
// no-ops, so two identical concurrent requests converge without error.
type UnsubscribeRepository struct {
	db *sqlx.DB
}

func NewUnsubscribeRepository(db *sqlx.DB) *UnsubscribeRepository {
	return &UnsubscribeRepository{db}
}

// EnsureExclusion creates an exclusion record for (user, project) if one does
// not already exist. A nil projectID is the unsubscribed-from-all record.
func (r *UnsubscribeRepository) EnsureExclusion(ctx context.Context, userID int64, projectID *int64) error {
	var err error
	if projectID == nil {
		_, err = r.db.ExecContext(ctx, constants.InsertGlobalUnsubscribe, userID)
	} else {
		_, err = r.db.ExecContext(ctx, constants.InsertProjectUnsubscribe, userID, *projectID)
	}
	if err != nil {
		return fmt.Errorf("failed to ensure exclusion: %w", err)
	}
	return nil
}

// DropExclusion removes the exclusion record for (user, project); nil
// projectID drops the global record. Absent rows are not an error.
func (r *UnsubscribeRepository) DropExclusion(ctx context.Context, userID int64, projectID *int64) error {
	var err error
	if projectID == nil {
		_, err = r.db.ExecContext(ctx, constants.DeleteGlobalUnsubscribe, userID)
	} else {
		_, err = r.db.ExecContext(ctx, constants.DeleteProjectUnsubscribe, userID, *projectID)
	}
	if err != nil {
		return fmt.Errorf("failed to drop exclusion: %w", err)
	}
	return nil
}

// ListExclusions returns every exclusion record for the user in insertion order.
func (r *UnsubscribeRepository) ListExclusions(ctx context.Context, userID int64) ([]entities.ProjectUnsubscribe, error) {
	var records []entities.ProjectUnsubscribe
	if err := r.db.SelectContext(ctx, &records, constants.SelectUnsubscribesByUser, userID); err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}
	return records, nil
}
