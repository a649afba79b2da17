package services

import (
	"context"
	"fmt"

	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/models/dtos"
	"fundforge/platform/internal/models/entities"
)

// ExclusionStore persists exclusion records. Implementations must be
// idempotent: a duplicate create counts as already-satisfied and deleting an
// absent record is a no-op. UnsubscribeRepository is the production
// implementation.
type ExclusionStore interface {
	EnsureExclusion(ctx context.Context, userID int64, projectID *int64) error
	DropExclusion(ctx context.Context, userID int64, projectID *int64) error
	ListExclusions(ctx context.Context, userID int64) ([]entities.ProjectUnsubscribe, error)
}

// SubscriptionService reconciles a user's exclusion records against the
// submitted toggle state. The result depends only on the input: this is a set
// operation, not a toggle, so replaying the same request converges.
type SubscriptionService struct {
	store ExclusionStore
}

func NewSubscriptionService(store ExclusionStore) *SubscriptionService {
	return &SubscriptionService{store: store}
}

// Reconcile brings the stored exclusion set to the state the input describes.
// The global flag and the per-project toggles are independent; per-project
// operations commute, so processing order never changes the final state.
func (s *SubscriptionService) Reconcile(ctx context.Context, userID int64, input dtos.SubscriptionInput) error {
	if input.UnsubscribedFromAll {
		if err := s.store.EnsureExclusion(ctx, userID, nil); err != nil {
			return fmt.Errorf("global unsubscribe for user %d: %w", userID, err)
		}
	} else {
		if err := s.store.DropExclusion(ctx, userID, nil); err != nil {
			return fmt.Errorf("drop global unsubscribe for user %d: %w", userID, err)
		}
	}

	for projectID, subscribed := range input.ProjectToggles {
		pid := projectID
		if subscribed {
			if err := s.store.DropExclusion(ctx, userID, &pid); err != nil {
				return fmt.Errorf("resubscribe user %d to project %d: %w", userID, projectID, err)
			}
		} else {
			if err := s.store.EnsureExclusion(ctx, userID, &pid); err != nil {
				return fmt.Errorf("unsubscribe user %d from project %d: %w", userID, projectID, err)
			}
		}
	}

	logging.Debug("subscription reconcile complete",
		"user_id", userID,
		"global_unsubscribe", input.UnsubscribedFromAll,
		"toggles", len(input.ProjectToggles),
	)
	return nil
}

// CurrentState reads the stored exclusions back into form-friendly shape.
func (s *SubscriptionService) CurrentState(ctx context.Context, userID int64) (global bool, projectIDs []int64, err error) {
	records, err := s.store.ListExclusions(ctx, userID)
	if err != nil {
		return false, nil, err
	}

	projectIDs = make([]int64, 0, len(records))
	for _, rec := range records {
		if rec.Global() {
			global = true
			continue
		}
		projectIDs = append(projectIDs, *rec.ProjectID)
	}
	return global, projectIDs, nil
}
