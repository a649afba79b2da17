package entities

import "time"

// CategoryFollower subscribes a user to a whole project category. The
// settings form submits a replacement set, so the update flow clears the
// existing rows wholesale before the new ones are written.
type CategoryFollower struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"index:idx_category_follower,unique;not null" json:"user_id"`
	CategoryID int64     `gorm:"index:idx_category_follower,unique;not null" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CategoryFollower) TableName() string { return "category_followers" }
