package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/utils"
)

// AttendanceService turns QR scans into check-in/check-out events. Whether a
// scan is an entry or an exit is never sent by the client; it is inferred
// from the most recent prior event for the same (user, location) pair.
type AttendanceService struct {
	DB    *gorm.DB
	locks *keyedLocks
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, locks: newKeyedLocks()}
}

// ScanResult is what the guard's app shows after a successful scan.
type ScanResult struct {
	Event        models.Attendance
	LocationName string
	UserName     string
}

// RecordScan classifies and persists one scan event. Callers must have
// passed the lifecycle gate already; this method does not re-check it.
//
// The read of the latest event and the insert of the new one run under a
// per-(user, location) mutex and a single transaction so concurrent scans
// cannot both observe the same predecessor.
func (s *AttendanceService) RecordScan(user *models.User, rawPayload string, now time.Time) (*ScanResult, error) {
	locationID, ok := utils.DecodeLocationPayload(rawPayload)
	if !ok {
		return nil, ErrInvalidPayload
	}

	var location models.Location
	if err := s.DB.First(&location, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	lock := s.locks.get(user.ID, locationID)
	lock.Lock()
	defer lock.Unlock()

	var event models.Attendance
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var last models.Attendance
		kind := models.CheckIn
		err := tx.Where("user_id = ? AND location_id = ?", user.ID, locationID).
			Order("timestamp desc").
			First(&last).Error
		switch {
		case err == nil:
			if last.Type == models.CheckIn {
				kind = models.CheckOut
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first scan at this location, stays CheckIn
		default:
			return err
		}

		event = models.Attendance{
			UserID:     user.ID,
			LocationID: locationID,
			Type:       kind,
			Timestamp:  now,
			QRData:     rawPayload,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}

	return &ScanResult{Event: event, LocationName: location.Name, UserName: user.Name}, nil
}

// ListAll returns events newest first, paginated.
func (s *AttendanceService) ListAll(page, perPage int) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := s.DB.Order("timestamp desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	return rows, err
}

// ListByUser returns one account's events newest first, paginated.
func (s *AttendanceService) ListByUser(userID uint, page, perPage int) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := s.DB.Where("user_id = ?", userID).
		Order("timestamp desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	return rows, err
}
