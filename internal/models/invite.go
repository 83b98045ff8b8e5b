package models

import "time"

type InviteStatus string

const (
	InviteUnused  InviteStatus = "UNUSED"
	InviteUsed    InviteStatus = "USED"
	InviteExpired InviteStatus = "EXPIRED"
)

// InviteToken pre-provisions a guard account: an admin hands out the token,
// registration with it inherits the invite's active-days window.
type InviteToken struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Token      string       `gorm:"uniqueIndex;not null" json:"token"`
	Name       string       `json:"name"`
	Email      string       `gorm:"index" json:"email"`
	ActiveDays int          `gorm:"not null;default:0" json:"active_days"`
	Status     InviteStatus `gorm:"type:varchar(20);not null" json:"status"`
	ExpiresAt  time.Time    `gorm:"index;not null" json:"expires_at"`
	CreatedBy  uint         `gorm:"index;not null" json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
}
