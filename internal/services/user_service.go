package services

import (
	"context"
	"fmt"
	"strings"

	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/models/dtos"
	"fundforge/platform/internal/models/entities"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// UserStore is the slice of user persistence the coordinator needs.
// UserRepositoryGORM is the production implementation.
type UserStore interface {
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) (*entities.User, error)
	ClearCategoryFollowers(ctx context.Context, userID int64) error
}

// UserService coordinates one logical "update user" operation: subscription
// and reminder reconciliation, category-follow clearing, then the profile
// field update. Reconciliation commits first and stays committed even when
// the profile update fails validation; the two steps are deliberately
// independent rather than wrapped in one transaction.
type UserService struct {
	users         UserStore
	subscriptions *SubscriptionService
	reminders     *ReminderService
}

func NewUserService(users UserStore, subscriptions *SubscriptionService, reminders *ReminderService) *UserService {
	return &UserService{
		users:         users,
		subscriptions: subscriptions,
		reminders:     reminders,
	}
}

// UpdateUser runs the full settings-form update. On validation failure it
// returns a *ValidationErrors; any reconciliation side effects that already
// ran are not rolled back.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, input *dtos.UpdateUserInput) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The two reconcilers touch disjoint tables and commute, so they can
	// fan out. Both run before the profile update is even attempted.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.subscriptions.Reconcile(gctx, userID, input.Subscriptions)
	})
	g.Go(func() error {
		return s.reminders.Reconcile(gctx, userID, input.Reminders)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preference reconciliation: %w", err)
	}

	if input.ClearCategoryFollows {
		if err := s.users.ClearCategoryFollowers(ctx, userID); err != nil {
			return nil, err
		}
	}

	fields, verr := s.buildProfileUpdate(user, input)
	if verr.Any() {
		return nil, verr
	}

	updated, err := s.users.UpdateFields(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	logging.Info("user updated",
		"user_id", userID,
		"password_changed", input.Password != nil,
	)
	return updated, nil
}

// buildProfileUpdate validates the profile section and assembles the column
// map. A present password pair routes through the credential-verified path.
func (s *UserService) buildProfileUpdate(user *entities.User, input *dtos.UpdateUserInput) (map[string]interface{}, *ValidationErrors) {
	verr := NewValidationErrors()
	fields := make(map[string]interface{})

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			verr.Add("name", "can't be blank")
		} else {
			fields["name"] = strings.TrimSpace(*input.Name)
		}
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !validEmail(email) {
			verr.Add("email", "is invalid")
		} else {
			fields["email"] = email
		}
	}

	if input.About != nil {
		fields["about"] = *input.About
	}

	if input.Password != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(input.Password.CurrentPassword)); err != nil {
			verr.Add("current_password", "is incorrect")
		}
		if len(input.Password.NewPassword) < 8 {
			verr.Add("password", "is too short (minimum is 8 characters)")
		}
		if !verr.Any() {
			digest, err := bcrypt.GenerateFromPassword([]byte(input.Password.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				verr.Add("password", "could not be processed")
			} else {
				fields["password_digest"] = string(digest)
			}
		}
	}

	return fields, verr
}

// Settings assembles the account-settings view: profile plus subscription and
// reminder state.
func (s *UserService) Settings(ctx context.Context, userID int64) (*dtos.UserSettingsResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	global, excluded, err := s.subscriptions.CurrentState(ctx, userID)
	if err != nil {
		return nil, err
	}

	reminders, err := s.reminders.QueuedProjects(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dtos.UserSettingsResponse{
		User:                user,
		UnsubscribedFromAll: global,
		UnsubscribedFrom:    excluded,
		RemindersFor:        reminders,
	}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}
