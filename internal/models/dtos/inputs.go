package dtos

import (
	"fmt"
	"strconv"
)

// SubscriptionInput is the typed, normalized form of the subscription section.
// The final exclusion-record set is fully determined by this value; prior
// state never changes the outcome.
type SubscriptionInput struct {
	UnsubscribedFromAll bool
	// project ID -> desired subscribed state (true = receive updates)
	ProjectToggles map[int64]bool
}

// ReminderInput is the typed reminder keep list. Submitted == false means the
// form section was absent, which empties the user's entire queue.
type ReminderInput struct {
	Submitted bool
	Keep      []int64
}

// PasswordChange is the optional password pair. Any present value routes the
// profile update through the credential-verified path.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
}

// UpdateUserInput is what the coordinator consumes after boundary parsing.
type UpdateUserInput struct {
	Name  *string
	Email *string
	About *string

	Password *PasswordChange

	Subscriptions SubscriptionInput
	Reminders     ReminderInput

	ClearCategoryFollows bool
}

// ParseUpdateUserInput converts the wire request into its canonical typed
// form, rejecting malformed project IDs before any reconciliation runs.
func ParseUpdateUserInput(req *UpdateUserRequest) (*UpdateUserInput, error) {
	input := &UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		About: req.About,
		Subscriptions: SubscriptionInput{
			UnsubscribedFromAll: req.UnsubscribedFromAll,
		},
		ClearCategoryFollows: req.CategoryFollowsSubmitted,
	}

	if req.Unsubscribes != nil {
		input.Subscriptions.ProjectToggles = make(map[int64]bool, len(req.Unsubscribes))
		for raw, subscribed := range req.Unsubscribes {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid project id %q in unsubscribes: %w", raw, err)
			}
			input.Subscriptions.ProjectToggles[id] = subscribed
		}
	}

	if req.Reminders != nil {
		input.Reminders.Submitted = true
		input.Reminders.Keep = make([]int64, 0, len(req.Reminders))
		for _, raw := range req.Reminders {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid project id %q in reminders: %w", raw, err)
			}
			input.Reminders.Keep = append(input.Reminders.Keep, id)
		}
	}

	if present(req.CurrentPassword) || present(req.Password) {
		input.Password = &PasswordChange{
			CurrentPassword: deref(req.CurrentPassword),
			NewPassword:     deref(req.Password),
		}
	}

	return input, nil
}

func present(s *string) bool { return s != nil && *s != "" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
