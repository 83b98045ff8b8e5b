package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	IsBlocked    bool       `gorm:"not null;default:false" json:"is_blocked"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	ActiveDays   int        `gorm:"not null;default:0" json:"active_days"`

	TOTPSecret  string `json:"-"`
	TOTPEnabled bool   `gorm:"not null;default:false" json:"totp_enabled"`

	CreatedAt time.Time `json:"created_at"`
}
