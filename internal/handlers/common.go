package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/helpers"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/models"
	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
)

// currentUser resolves the authenticated account set by the auth middleware.
// Writes the error response itself when resolution fails.
func currentUser(c *gin.Context, users *service.UserService) (*models.User, bool) {
	id := c.GetUint("user_id")
	if id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}
	u, err := users.GetByID(id)
	if err != nil {
		helpers.ServiceError(c, err)
		return nil, false
	}
	return u, true
}

func idParam(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
