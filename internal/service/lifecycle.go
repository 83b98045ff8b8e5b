package service

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
)

// Decision is the outcome of the lifecycle gate applied before sensitive
// actions for an authenticated account.
type Decision int

const (
	Allowed Decision = iota
	Blocked
	Expired
)

// UserService owns account lifecycle: creation, blocking, the expiry gate
// and the expiry sweep.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{DB: db} }

// Authorize gates sensitive actions. The blocked flag wins; otherwise an
// elapsed expiry counts as blocked even if the sweep has not flagged the
// row yet, so correctness never depends on AutoBlockExpired having run.
func Authorize(u *models.User, now time.Time) Decision {
	if u.IsBlocked {
		return Blocked
	}
	if u.ExpiryDate != nil && u.ExpiryDate.Before(now) {
		return Expired
	}
	return Allowed
}

// AuthorizeErr is Authorize mapped onto the error taxonomy, for call sites
// that just want to fail the request.
func AuthorizeErr(u *models.User, now time.Time) error {
	switch Authorize(u, now) {
	case Blocked:
		return ErrBlocked
	case Expired:
		return ErrExpired
	}
	return nil
}

type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	ActiveDays int
}

// Create registers an account. Expiry is now + ActiveDays days; zero means
// the account expires immediately, which is accepted as-is.
func (s *UserService) Create(in CreateUserInput, now time.Time) (*models.User, error) {
	expiry := now.AddDate(0, 0, in.ActiveDays)
	u := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        NormalizeEmail(in.Email),
		PasswordHash: in.Password,
		ActiveDays:   in.ActiveDays,
		ExpiryDate:   &expiry,
		IsBlocked:    false,
	}
	if err := s.DB.Create(&u).Error; err != nil {
		if IsDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// GetByID loads a single account. The read path performs no writes; expiry
// is evaluated on the fly by Authorize.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("email = ?", NormalizeEmail(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserService) List() ([]models.User, error) {
	var rows []models.User
	if err := s.DB.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetBlocked is the administrative override. Expiry is left untouched.
func (s *UserService) SetBlocked(id uint, blocked bool) error {
	res := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_blocked", blocked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AutoBlockExpired flags every unblocked account whose expiry has elapsed
// and reports how many rows changed. Idempotent; called explicitly from the
// maintenance endpoint, never as a side effect of reads.
func (s *UserService) AutoBlockExpired(now time.Time) (int64, error) {
	res := s.DB.Model(&models.User{}).
		Where("is_blocked = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", false, now).
		Update("is_blocked", true)
	return res.RowsAffected, res.Error
}

func (s *UserService) Save(u *models.User) error {
	return s.DB.Save(u).Error
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsDuplicateKey detects a unique violation (Postgres SQLSTATE 23505, or
// the driver's message when the error is not translated).
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
