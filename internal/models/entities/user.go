package entities

import "time"

// User is the platform account. Profile fields are the subset the account
// settings form can touch; everything else (contributions, projects, bank
// accounts) lives elsewhere.
type User struct {
	ID              int64      `db:"id" gorm:"primaryKey" json:"id"`
	Name            string     `db:"name" json:"name"`
	Email           string     `db:"email" gorm:"uniqueIndex" json:"email"`
	About           string     `db:"about" json:"about"`
	Permalink       *string    `db:"permalink" json:"permalink,omitempty"`
	PasswordDigest  string     `db:"password_digest" json:"-"`
	DeactivatedAt   *time.Time `db:"deactivated_at" json:"deactivated_at,omitempty"`
	ReactivateToken *string    `db:"reactivate_token" json:"-"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Active reports whether the account has not been soft-deactivated.
func (u *User) Active() bool { return u.DeactivatedAt == nil }
