package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
)

type AttendanceHandler struct {
	Users      *service.UserService
	Attendance *service.AttendanceService
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{
		Users:      service.NewUserService(db),
		Attendance: service.NewAttendanceService(db),
	}
}

type ScanReq struct {
	QRData string `json:"qr_data" binding:"required"`
}

// RecordScan is the guard-app scan endpoint. Lifecycle gate first, then the
// inference engine decides check-in versus check-out.
func (h *AttendanceHandler) RecordScan(c *gin.Context) {
	var req ScanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.BindError(c, err)
		return
	}

	u, ok := currentUser(c, h.Users)
	if !ok {
		return
	}

	now := time.Now().UTC()
	if err := service.AuthorizeErr(u, now); err != nil {
		helpers.ServiceError(c, err)
		return
	}

	res, err := h.Attendance.RecordScan(u, req.QRData, now)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   string(res.Event.Type) + " recorded successfully at " + res.LocationName,
		"type":      res.Event.Type,
		"location":  res.LocationName,
		"timestamp": res.Event.Timestamp,
		"user":      res.UserName,
	})
}

func (h *AttendanceHandler) List(c *gin.Context) {
	page, perPage := helpers.Pagination(c)
	rows, err := h.Attendance.ListAll(page, perPage)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AttendanceHandler) ListByUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, perPage := helpers.Pagination(c)
	rows, err := h.Attendance.ListByUser(id, page, perPage)
	if err != nil {
		helpers.ServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
