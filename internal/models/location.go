package models

import "time"

// Location is a physical checkpoint. Its QR code encodes the canonical
// payload "location:<id>:<name>".
type Location struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
