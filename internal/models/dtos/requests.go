package dtos

// UpdateUserRequest is the account-settings form as it arrives on the wire.
// The toggle map and keep list carry string project IDs (the form is built
// from loosely typed markup); ParseUpdateUserInput normalizes them before the
// reconcilers run.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	About *string `json:"about,omitempty"`

	CurrentPassword *string `json:"current_password,omitempty"`
	Password        *string `json:"password,omitempty"`

	// Absence of "subscribed" on the original form meant unsubscribe-all, an
	// artifact of unchecked checkboxes not being submitted. The JSON surface
	// makes the flag explicit instead.
	UnsubscribedFromAll bool `json:"unsubscribed_from_all"`

	// project ID -> desired subscribed state
	Unsubscribes map[string]bool `json:"unsubscribes,omitempty"`

	// Projects the user still wants reminder emails for. A nil list (section
	// not submitted) empties the whole queue.
	Reminders []string `json:"reminders,omitempty"`

	// True when the form carried the category-follow section, which submits a
	// full replacement set and therefore clears existing follows first.
	CategoryFollowsSubmitted bool `json:"category_follows_submitted,omitempty"`
}

// ReorderRewardRequest carries the zero-based index the card was dropped at,
// computed client-side from the display order at drop time.
type ReorderRewardRequest struct {
	Position *int `json:"position"`
}

type ReactivateRequest struct {
	Token string `json:"token"`
}
