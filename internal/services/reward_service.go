package services

import (
	"context"
	"errors"
	"fmt"

	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/models/entities"
)

// ErrNotOwner rejects a reorder from anyone but the project owner.
var ErrNotOwner = errors.New("reward does not belong to the caller")

// RewardService persists dashboard drag-and-drop moves. One drop event means
// one position write; siblings are never renumbered, since the dashboard
// re-sorts on position at render time. Concurrent drops on the same card are
// last-writer-wins and colliding positions are tolerated, with ID as the
// stable tiebreak.
type RewardService struct {
	repo *repositories.RewardRepository
}

func NewRewardService(repo *repositories.RewardRepository) *RewardService {
	return &RewardService{repo: repo}
}

// Reorder writes the dropped card's new position. The position is the
// zero-based index the client computed from the display order at drop time.
func (s *RewardService) Reorder(ctx context.Context, actorUserID, rewardID int64, position int) error {
	if position < 0 {
		return fmt.Errorf("invalid position %d", position)
	}

	ownerID, err := s.repo.GetProjectOwner(ctx, rewardID)
	if err != nil {
		return err
	}
	if ownerID != actorUserID {
		return ErrNotOwner
	}

	if err := s.repo.SetPosition(ctx, rewardID, position); err != nil {
		return err
	}

	logging.Info("reward reordered",
		"reward_id", rewardID,
		"position", position,
		"user_id", actorUserID,
	)
	return nil
}

// ListForProject returns rewards in display order.
func (s *RewardService) ListForProject(ctx context.Context, projectID int64) ([]entities.Reward, error) {
	return s.repo.ListByProject(ctx, projectID)
}
