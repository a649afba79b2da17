package dtos

import "fundforge/platform/internal/models/entities"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// UserSettingsResponse backs the account-settings form: the profile plus the
// current exclusion and reminder state.
type UserSettingsResponse struct {
	User                *entities.User `json:"user"`
	UnsubscribedFromAll bool           `json:"unsubscribed_from_all"`
	UnsubscribedFrom    []int64        `json:"unsubscribed_from"`
	RemindersFor        []int64        `json:"reminders_for"`
}

// ReorderAck acknowledges a single drag-and-drop position write.
type ReorderAck struct {
	RewardID int64 `json:"reward_id"`
	Position int   `json:"position"`
}

// ValidationErrorResponse carries field-level messages for form re-display.
// PreferencesApplied tells the client whether subscription and reminder
// changes landed even though the profile update was rejected.
type ValidationErrorResponse struct {
	Errors             map[string][]string `json:"errors"`
	PreferencesApplied bool                `json:"preferences_applied"`
}
