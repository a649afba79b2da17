package entities

import "time"

// Project carries just enough shape to anchor reward ownership checks and
// reminder dispatch. The full project lifecycle is managed by another service.
type Project struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	UserID     int64      `gorm:"index;not null" json:"user_id"`
	Name       string     `json:"name"`
	OnlineDate *time.Time `json:"online_date,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
