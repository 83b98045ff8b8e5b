package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SaqibAbdulkarim1981/guardcore-api/internal/service"
)

// BindError reports a failed JSON bind. Field-level validator errors are
// broken out per field so the mobile client can highlight inputs.
func BindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
}

// ServiceError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are logged server-side and reported generically so storage
// diagnostics never reach the client.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid QR code"})
	case errors.Is(err, service.ErrBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your access has been blocked"})
	case errors.Is(err, service.ErrExpired):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your access has expired"})
	case errors.Is(err, service.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
	case errors.Is(err, service.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, service.ErrInviteInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invite token invalid"})
	case errors.Is(err, service.ErrInviteExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invite token expired"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
