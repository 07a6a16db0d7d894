package handler

import (
	"errors"
	"net/http"

	domainLocation "facility-hub/internal/domain/location"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/middleware"
	"facility-hub/internal/usecase/user"
	appErrors "facility-hub/pkg/errors"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}

func (h *UserHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/auth/revoke", h.Revoke)
}

func (h *UserHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/users", h.ListUsers)
	router.POST("/assign_user_location", h.AssignUserLocation)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserAlreadyExists) {
			utils.ErrorResponse(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	setAuthCookie(c, resp.AccessToken)
	utils.OKResponse(c, http.StatusCreated, gin.H{"auth": resp})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, appErrors.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	setAuthCookie(c, resp.AccessToken)
	utils.OKResponse(c, http.StatusOK, gin.H{"auth": resp})
}

func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	setAuthCookie(c, resp.AccessToken)
	utils.OKResponse(c, http.StatusOK, gin.H{"auth": resp})
}

func (h *UserHandler) Revoke(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.RevokeAll(c.Request.Context(), userID); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to revoke tokens")
		return
	}

	clearAuthCookie(c)
	utils.OKResponse(c, http.StatusOK, nil)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	utils.OKResponse(c, http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) AssignUserLocation(c *gin.Context) {
	var req user.AssignLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.AssignLocation(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) || errors.Is(err, domainLocation.ErrLocationNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User or Location not found")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.OKResponse(c, http.StatusOK, nil)
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, 24*3600, "/", "", false, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
}
