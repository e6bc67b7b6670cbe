package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smreview/smreview-backend/internal/errors"
	"github.com/smreview/smreview-backend/pkg/util"
)

// Context keys for admin information
const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
)

// AuthMiddleware guards the admin surface with bearer tokens
type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates the admin JWT (required)
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "admin login required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrTokenExpired {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "session expired, log in again")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "invalid token")
			}
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzAdminOnly, "admin access only")
			c.Abort()
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)

		log.Debug("Admin authenticated", map[string]interface{}{
			"admin_id": claims.AdminID,
			"email":    claims.Email,
		})

		c.Next()
	}
}

// GetAdminID extracts the admin id from context
func GetAdminID(c *gin.Context) (uint, bool) {
	adminID, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}
	return adminID.(uint), true
}

// GetAdminEmail extracts the admin email from context
func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(AdminEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
