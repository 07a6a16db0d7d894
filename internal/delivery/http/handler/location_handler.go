package handler

import (
	"net/http"

	"facility-hub/internal/usecase/location"
	"facility-hub/internal/usecase/user"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	service     *location.Service
	userService *user.Service
}

func NewLocationHandler(service *location.Service, userService *user.Service) *LocationHandler {
	return &LocationHandler{service: service, userService: userService}
}

func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/locations", h.ListLocations)
}

func (h *LocationHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/create_location", h.CreateLocation)
}

// ListLocations returns the locations visible to the caller as a bare array,
// each with its device count.
func (h *LocationHandler) ListLocations(c *gin.Context) {
	actor, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	locations, err := h.service.ListFor(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list locations")
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req location.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing fields")
		return
	}

	loc, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.OKResponse(c, http.StatusOK, gin.H{"location_id": loc.ID})
}
