package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
)

type InviteHandler struct {
	DB *gorm.DB
}

func NewInviteHandler(db *gorm.DB) *InviteHandler { return &InviteHandler{DB: db} }

type CreateInviteReq struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"required,email"`
	ActiveDays   int    `json:"active_days"`
	MinutesValid int    `json:"minutes_valid"`
}

// Create issues an invite token for onboarding a guard. The redeemed
// account inherits ActiveDays; the token itself expires after MinutesValid
// (default one hour).
func (h *InviteHandler) Create(c *gin.Context) {
	var req CreateInviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}
	if req.MinutesValid <= 0 {
		req.MinutesValid = 60
	}

	inv := models.InviteToken{
		Token:      uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		ActiveDays: req.ActiveDays,
		Status:     models.InviteUnused,
		ExpiresAt:  time.Now().Add(time.Duration(req.MinutesValid) * time.Minute),
		CreatedBy:  c.GetUint("user_id"),
	}
	if err := h.DB.Create(&inv).Error; err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": inv.Token, "expires_at": inv.ExpiresAt})
}

func (h *InviteHandler) List(c *gin.Context) {
	var rows []models.InviteToken
	if err := h.DB.Order("created_at desc").Find(&rows).Error; err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
