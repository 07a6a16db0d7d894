package middleware

import (
	"net/http"

	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SuperuserOnly rejects requests from non-superuser accounts.
func SuperuserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsSuperuser(c) {
			utils.ErrorResponse(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}

		c.Next()
	}
}
