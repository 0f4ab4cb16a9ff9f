package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/authz"
	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// AuthRequired resolves the Bearer token against the session table and loads
// the owning user so downstream handlers get an explicit identity and role.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization"})
			return
		}

		var session models.SessionToken
		if err := db.Where("token = ?", parts[1]).First(&session).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", session.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, user.ID.String())
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}

// RequirePermission gates a route on the role/action policy.
func RequirePermission(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		if !authz.Allowed(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func CurrentRole(c *gin.Context) (models.Role, bool) {
	value, ok := c.Get(ContextRole)
	if !ok {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}

func CurrentUserID(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}
