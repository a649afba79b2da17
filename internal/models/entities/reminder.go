package entities

import "time"

// ReminderQueueEntry marks a user as waiting for a one-time reminder email
// about a project. Entries are created when the user asks to be notified
// (project page, project launch); the settings flow only ever removes them.
type ReminderQueueEntry struct {
	UserID    int64     `db:"user_id"`
	ProjectID int64     `db:"project_id"`
	CreatedAt time.Time `db:"created_at"`
}
