package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundforge/platform/internal/models/entities"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepositoryGORM struct {
	db *gorm.DB
}

// NewUserRepositoryGORM creates a new GORM-based user repository
func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

// GetByID retrieves a user regardless of activation state.
func (r *UserRepositoryGORM) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// GetActiveByID retrieves a user that has not been deactivated.
func (r *UserRepositoryGORM) GetActiveByID(ctx context.Context, userID int64) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).
		Where("deactivated_at IS NULL").
		First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// UpdateFields applies a partial attribute update and returns the fresh row.
func (r *UserRepositoryGORM) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) (*entities.User, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&entities.User{}).
			Where("id = ?", userID).
			Updates(fields).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return r.GetByID(ctx, userID)
}

// Deactivate soft-deletes the account and stores the reactivation token the
// user needs to come back.
func (r *UserRepositoryGORM) Deactivate(ctx context.Context, userID int64, reactivateToken string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"deactivated_at":   &now,
			"reactivate_token": reactivateToken,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

// FindByReactivateToken looks up a deactivated user by token.
func (r *UserRepositoryGORM) FindByReactivateToken(ctx context.Context, token string) (*entities.User, error) {
	var user entities.User

	err := r.db.WithContext(ctx).
		Where("reactivate_token = ?", token).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by token: %w", err)
	}

	return &user, nil
}

// Reactivate clears the deactivation marker and the one-time token.
func (r *UserRepositoryGORM) Reactivate(ctx context.Context, userID int64) error {
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"deactivated_at":   nil,
			"reactivate_token": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to reactivate user: %w", err)
	}
	return nil
}

// ClearCategoryFollowers drops every category follow for the user. The form
// submits a full replacement set, so a wholesale clear precedes the rewrite.
func (r *UserRepositoryGORM) ClearCategoryFollowers(ctx context.Context, userID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.CategoryFollower{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear category followers: %w", err)
	}
	return nil
}
