package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/utils"
)

type LocationHandler struct {
	DB *gorm.DB
}

func NewLocationHandler(db *gorm.DB) *LocationHandler { return &LocationHandler{DB: db} }

type CreateLocationReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	loc := models.Location{Name: req.Name, Description: req.Description}
	if err := h.DB.Create(&loc).Error; err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loc)
}

func (h *LocationHandler) List(c *gin.Context) {
	var rows []models.Location
	if err := h.DB.Order("created_at desc").Find(&rows).Error; err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *LocationHandler) GetByID(c *gin.Context) {
	loc, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, loc)
}

// QRCode renders the checkpoint's printable QR as a PNG. The encoded
// payload is the same canonical string the scan endpoint accepts.
func (h *LocationHandler) QRCode(c *gin.Context) {
	loc, ok := h.load(c)
	if !ok {
		return
	}

	png, err := utils.LocationQRPNG(loc.ID, loc.Name, 512)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *LocationHandler) load(c *gin.Context) (*models.Location, bool) {
	id, ok := idParam(c)
	if !ok {
		return nil, false
	}
	var loc models.Location
	if err := h.DB.First(&loc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.ServiceError(c, service.ErrLocationNotFound)
		} else {
			helpers.ServiceError(c, err)
		}
		return nil, false
	}
	return &loc, true
}
