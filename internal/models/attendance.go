package models

import "time"

type AttendanceType string

const (
	CheckIn  AttendanceType = "CheckIn"
	CheckOut AttendanceType = "CheckOut"
)

// Attendance is an immutable fact: the user was at the location at the
// given instant, entering or leaving. Rows are only ever inserted.
type Attendance struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index:idx_att_user_loc;not null" json:"user_id"`
	LocationID uint           `gorm:"index:idx_att_user_loc;not null" json:"location_id"`
	Type       AttendanceType `gorm:"type:varchar(20);not null" json:"type"`
	Timestamp  time.Time      `gorm:"index;not null" json:"timestamp"`
	QRData     string         `json:"qr_data,omitempty"`
}
