package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gympro/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for capability middleware
type PermissionConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when the capability check fails (optional)
	OnDenied func(c *gin.Context, capability identity.Capability)
}

// RequireCapability creates middleware that gates a route on a role capability.
// The role comes from the JWT claims set by the auth middleware.
func RequireCapability(capability identity.Capability) gin.HandlerFunc {
	return RequireCapabilityWithConfig(capability, PermissionConfig{})
}

// RequireCapabilityWithConfig creates capability middleware with custom config
func RequireCapabilityWithConfig(capability identity.Capability, cfg PermissionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handleCapabilityDenied(c, cfg, capability, http.StatusUnauthorized,
				"UNAUTHORIZED", "Authentication required")
			return
		}

		role := identity.Role(claims.Role)
		if !role.Can(capability) {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Capability check failed",
					zap.String("user_id", claims.UserID),
					zap.String("role", claims.Role),
					zap.String("capability", string(capability)),
				)
			}
			handleCapabilityDenied(c, cfg, capability, http.StatusForbidden,
				"FORBIDDEN", "Your role does not allow this action")
			return
		}

		c.Next()
	}
}

// RequireAdmin creates middleware that only admits the admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		if !identity.Role(claims.Role).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Administrator access required",
				},
			})
			return
		}

		c.Next()
	}
}

func handleCapabilityDenied(c *gin.Context, cfg PermissionConfig, capability identity.Capability, status int, code, message string) {
	if cfg.OnDenied != nil {
		cfg.OnDenied(c, capability)
		return
	}

	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
