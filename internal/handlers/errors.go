package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

// writeDomainError translates records errors into the HTTP taxonomy:
// 401 bad credentials, 404 missing entity, 400 validation with field-level
// messages (unique-name collisions and the cross-company assignment rule
// included), 500 otherwise.
func writeDomainError(c *gin.Context, err error) {
	var validation *records.ValidationError
	switch {
	case errors.Is(err, records.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, records.ErrInvalidAssignment):
		c.JSON(http.StatusBadRequest, gin.H{"error": records.ErrInvalidAssignment.Error()})
	case errors.Is(err, records.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, records.ErrNoActiveSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no active session found"})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validation.Fields})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
