package entities

import "time"

// Reward is a pledge tier on a project's dashboard. Position drives display
// order; it is not required to be contiguous or unique, and the renderer
// breaks ties by ID.
type Reward struct {
	ID                   int64     `gorm:"primaryKey" json:"id"`
	ProjectID            int64     `gorm:"index;not null" json:"project_id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	MinimumValue         float64   `json:"minimum_value"`
	MaximumContributions *int64    `json:"maximum_contributions,omitempty"`
	Position             int       `gorm:"not null;default:0" json:"position"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (Reward) TableName() string { return "rewards" }
