package models

import "time"

// Report is a free-text incident or activity record, optionally tied to a
// user and a location. Append-only.
type Report struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`
	LocationID  *uint     `gorm:"index" json:"location_id,omitempty"`
	Type        string    `gorm:"type:varchar(100);not null" json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
