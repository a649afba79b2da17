package services

import (
	"context"
	"fmt"
	"time"

	"fundforge/platform/internal/common"
	"fundforge/platform/internal/constants"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/models/dtos"
)

// ReminderStore persists reminder-queue memberships. The reconciler only ever
// removes; membership creation happens elsewhere (project pages, launches).
type ReminderStore interface {
	ListQueuedProjects(ctx context.Context, userID int64) ([]int64, error)
	Remove(ctx context.Context, userID, projectID int64) error
}

// ReminderService reconciles a user's reminder queue against the submitted
// keep list. Removal-only: the final queue is never larger than the initial
// one.
type ReminderService struct {
	store ReminderStore
	cache common.CacheInterface
}

func NewReminderService(store ReminderStore, cache common.CacheInterface) *ReminderService {
	return &ReminderService{store: store, cache: cache}
}

func reminderCacheKey(userID int64) string {
	return fmt.Sprintf("%s%d", constants.CachePrefixReminderQueue, userID)
}

// Reconcile removes every queued membership not named in the keep list. An
// unsubmitted section (input.Submitted == false) empties the whole queue —
// the form renders one checkbox per queued project, so absence of the section
// means none were left checked.
func (s *ReminderService) Reconcile(ctx context.Context, userID int64, input dtos.ReminderInput) error {
	queued, err := s.store.ListQueuedProjects(ctx, userID)
	if err != nil {
		return fmt.Errorf("list reminder queue for user %d: %w", userID, err)
	}

	keep := map[int64]struct{}{}
	if input.Submitted {
		keep = common.Int64Set(input.Keep)
	}

	removed := 0
	for _, projectID := range queued {
		if _, ok := keep[projectID]; ok {
			continue
		}
		if err := s.store.Remove(ctx, userID, projectID); err != nil {
			return fmt.Errorf("remove reminder (user %d, project %d): %w", userID, projectID, err)
		}
		removed++
	}

	if removed > 0 && s.cache != nil {
		s.cache.Delete(reminderCacheKey(userID))
	}

	logging.Debug("reminder reconcile complete",
		"user_id", userID,
		"queued", len(queued),
		"kept", len(queued)-removed,
		"removed", removed,
	)
	return nil
}

// QueuedProjects returns the user's queued project IDs, cached briefly since
// the settings page reads it on every render.
func (s *ReminderService) QueuedProjects(ctx context.Context, userID int64) ([]int64, error) {
	key := reminderCacheKey(userID)
	if s.cache != nil {
		if val, found := s.cache.Get(key); found {
			if ids, ok := val.([]int64); ok {
				return ids, nil
			}
		}
	}

	ids, err := s.store.ListQueuedProjects(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, ids, 30*time.Second)
	}
	return ids, nil
}
