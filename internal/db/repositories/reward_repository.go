package repositories

import (
	"context"
	"errors"
	"fmt"

	"fundforge/platform/internal/models/entities"

	"gorm.io/gorm"
)

var ErrRewardNotFound = errors.New("reward not found")

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) GetByID(ctx context.Context, rewardID int64) (*entities.Reward, error) {
	var reward entities.Reward

	err := r.db.WithContext(ctx).First(&reward, rewardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to fetch reward: %w", err)
	}

	return &reward, nil
}

// GetProjectOwner returns the owning user of the reward's project.
func (r *RewardRepository) GetProjectOwner(ctx context.Context, rewardID int64) (int64, error) {
	reward, err := r.GetByID(ctx, rewardID)
	if err != nil {
		return 0, err
	}

	var project entities.Project
	err = r.db.WithContext(ctx).First(&project, reward.ProjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("project %d not found for reward %d", reward.ProjectID, rewardID)
		}
		return 0, fmt.Errorf("failed to fetch project: %w", err)
	}

	return project.UserID, nil
}

// SetPosition writes only the position column of the moved reward. Siblings
// are never renumbered; the display order is re-derived by sorting at read
// time, so colliding positions resolve to last-writer-wins.
func (r *RewardRepository) SetPosition(ctx context.Context, rewardID int64, position int) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Reward{}).
		Where("id = ?", rewardID).
		UpdateColumn("position", position)
	if res.Error != nil {
		return fmt.Errorf("failed to set reward position: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRewardNotFound
	}
	return nil
}

// ListByProject returns the project's rewards in display order: ascending
// position, ties broken by ID.
func (r *RewardRepository) ListByProject(ctx context.Context, projectID int64) ([]entities.Reward, error) {
	var rewards []entities.Reward

	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position asc, id asc").
		Find(&rewards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	return rewards, nil
}
