package entities

import "time"

// ProjectUnsubscribe is an exclusion record: its presence means the user opted
// out of update notifications for one project, or for every project when
// ProjectID is NULL. Absence means subscribed (default opt-in). At most one
// row exists per (user, project) pair.
type ProjectUnsubscribe struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ProjectID *int64    `db:"project_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Global reports whether this is the unsubscribed-from-everything record.
func (p *ProjectUnsubscribe) Global() bool { return p.ProjectID == nil }
