package middleware

import (
	"net/http"
	"strings"

	"facility-hub/internal/config"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "userID"
	EmailKey     = "email"
	SuperuserKey = "isSuperuser"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization required")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Set(SuperuserKey, claims.Superuser)

		c.Next()
	}
}

// extractToken reads the bearer token from the Authorization header, falling
// back to the auth cookie the browser pages use.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}

	return ""
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// IsSuperuser reports whether the authenticated user is a superuser.
func IsSuperuser(c *gin.Context) bool {
	v, exists := c.Get(SuperuserKey)
	if !exists {
		return false
	}
	flag, ok := v.(bool)
	return ok && flag
}
