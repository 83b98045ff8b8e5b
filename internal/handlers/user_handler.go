package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/utils"
)

type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{Users: service.NewUserService(db)}
}

type CreateUserReq struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	ActiveDays int    `json:"active_days"`
}

// Create provisions a guard account from the back office. ActiveDays of zero
// means the account expires immediately.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	u, err := h.Users.Create(service.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		ActiveDays: req.ActiveDays,
	}, time.Now().UTC())
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// List returns every account. A plain read: the expiry sweep is a separate
// endpoint, never a side effect here.
func (h *UserHandler) List(c *gin.Context) {
	rows, err := h.Users.List()
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.Users.GetByID(id)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Me(c *gin.Context) {
	u, ok := currentUser(c, h.Users)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"is_blocked":  u.IsBlocked,
		"expiry_date": u.ExpiryDate,
	})
}

type ResetPasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ResetPassword changes the caller's own password. Lifecycle-gated: a
// blocked or expired account cannot rotate its credential.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	u, ok := currentUser(c, h.Users)
	if !ok {
		return
	}

	if err := service.AuthorizeErr(u, time.Now().UTC()); err != nil {
		helpers.ServiceError(c, err)
		return
	}

	if !utils.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	u.PasswordHash = hash
	if err := h.Users.Save(u); err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

func (h *UserHandler) Block(c *gin.Context) {
	h.setBlocked(c, true)
}

func (h *UserHandler) Unblock(c *gin.Context) {
	h.setBlocked(c, false)
}

func (h *UserHandler) setBlocked(c *gin.Context, blocked bool) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Users.SetBlocked(id, blocked); err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SweepExpired runs the explicit maintenance pass that reconciles the
// blocked flag with elapsed expiries.
func (h *UserHandler) SweepExpired(c *gin.Context) {
	n, err := h.Users.AutoBlockExpired(time.Now().UTC())
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": n})
}
