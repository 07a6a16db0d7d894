package handler

import (
	"net/http"

	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/middleware"
	"facility-hub/internal/usecase/user"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

// currentUser resolves the authenticated account to its full domain entity.
// Visibility rules depend on LocationID, which the token does not carry.
func currentUser(c *gin.Context, userService *user.Service) (*domainUser.User, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	actor, err := userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unknown user")
		return nil, false
	}

	return actor, true
}
