package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
)

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler { return &ReportHandler{DB: db} }

type CreateReportReq struct {
	UserID      *uint  `json:"user_id"`
	LocationID  *uint  `json:"location_id"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req CreateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	r := models.Report{
		UserID:      req.UserID,
		LocationID:  req.LocationID,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := h.DB.Create(&r).Error; err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ReportHandler) List(c *gin.Context) {
	page, perPage := helpers.Pagination(c)
	var rows []models.Report
	err := h.DB.Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var r models.Report
	if err := h.DB.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			helpers.ServiceError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, r)
}
