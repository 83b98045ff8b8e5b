package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/utils"
)

const totpIssuer = "GuardCore"

type AuthHandler struct {
	DB    *gorm.DB
	Users *service.UserService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db, Users: service.NewUserService(db)}
}

type RegisterReq struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	InviteToken string `json:"invite_token"`
}

// Register creates an account. Without an invite the account gets a one-year
// window; with an invite the window comes from the invite's active days and
// the token is consumed in the same transaction.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	email := service.NormalizeEmail(req.Email)
	name := req.Name
	if name == "" {
		name = email
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	now := time.Now().UTC()

	var user *models.User
	if req.InviteToken != "" {
		user, err = h.registerWithInvite(req.InviteToken, name, email, hash, now)
	} else {
		// open registration: one year of access, ActiveDays stays 0
		expiry := now.AddDate(1, 0, 0)
		u := models.User{Name: name, Email: email, PasswordHash: hash, ExpiryDate: &expiry}
		err = h.DB.Create(&u).Error
		if err != nil && service.IsDuplicateKey(err) {
			err = service.ErrDuplicateEmail
		}
		user = &u
	}
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) registerWithInvite(token, name, email, hash string, now time.Time) (*models.User, error) {
	var user models.User
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var inv models.InviteToken
		if err := tx.Where("token = ?", token).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrInviteInvalid
			}
			return err
		}
		if inv.Status != models.InviteUnused {
			return service.ErrInviteInvalid
		}
		if now.After(inv.ExpiresAt) {
			return service.ErrInviteExpired
		}

		expiry := now.AddDate(0, 0, inv.ActiveDays)
		user = models.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			ActiveDays:   inv.ActiveDays,
			ExpiryDate:   &expiry,
		}
		if err := tx.Create(&user).Error; err != nil {
			if service.IsDuplicateKey(err) {
				return service.ErrDuplicateEmail
			}
			return err
		}

		inv.Status = models.InviteUsed
		return tx.Save(&inv).Error
	})
	if errors.Is(err, service.ErrInviteExpired) {
		// the rejection rolled the transaction back; flag the stale token
		// in its own write so later lookups see EXPIRED
		if e := h.DB.Model(&models.InviteToken{}).
			Where("token = ? AND status = ?", token, models.InviteUnused).
			Update("status", models.InviteExpired).Error; e != nil {
			log.Printf("mark invite expired: %v", e)
		}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	u, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			err = service.ErrBadCredentials
		}
		helpers.ServiceError(c, err)
		return
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		helpers.ServiceError(c, service.ErrBadCredentials)
		return
	}

	if err := service.AuthorizeErr(u, time.Now().UTC()); err != nil {
		helpers.ServiceError(c, err)
		return
	}

	if u.TOTPEnabled {
		if req.TOTPCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "totp code required"})
			return
		}
		if !utils.VerifyTOTP(req.TOTPCode, u.TOTPSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid totp"})
			return
		}
	}

	signed, err := mintToken(u)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
		},
	})
}

func mintToken(u *models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SetupTOTP provisions a two-factor secret for the authenticated account and
// returns the otpauth URL for the authenticator app. Two-factor only takes
// effect after VerifyTOTP confirms the app produces valid codes.
func (h *AuthHandler) SetupTOTP(c *gin.Context) {
	u, ok := currentUser(c, h.Users)
	if !ok {
		return
	}

	secret, otpauth, err := utils.GenerateTOTPSecret(totpIssuer, u.Email)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	u.TOTPSecret = secret
	u.TOTPEnabled = false
	if err := h.Users.Save(u); err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"otpauth": otpauth})
}

type VerifyTOTPReq struct {
	Code string `json:"code" binding:"required"`
}

func (h *AuthHandler) VerifyTOTP(c *gin.Context) {
	var req VerifyTOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	u, ok := currentUser(c, h.Users)
	if !ok {
		return
	}
	if u.TOTPSecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "totp not initialized"})
		return
	}
	if !utils.VerifyTOTP(req.Code, u.TOTPSecret) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid totp"})
		return
	}

	u.TOTPEnabled = true
	if err := h.Users.Save(u); err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "totp enabled"})
}
