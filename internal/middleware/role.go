package middleware

import (
	"net/http"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group behind a minimum staff role. This is the
// permission boundary; the core services only receive the caller's ID for
// audit fields.
func RequireRole(required domain.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		roleStr, ok := GetUserRoleFromCtx(c.Request.Context())
		if !ok {
			logger.Warn("Role missing from authenticated request")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		if !domain.StaffRole(roleStr).Satisfies(required) {
			logger.Warn("Role check failed", "role", roleStr, "required", string(required))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
