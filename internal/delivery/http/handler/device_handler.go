package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainDevice "facility-hub/internal/domain/device"
	domainLocation "facility-hub/internal/domain/location"
	"facility-hub/internal/usecase/device"
	"facility-hub/internal/usecase/user"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	service     *device.Service
	userService *user.Service
}

func NewDeviceHandler(service *device.Service, userService *user.Service) *DeviceHandler {
	return &DeviceHandler{service: service, userService: userService}
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/devices", h.ListDevices)
	router.POST("/device/:id/toggle", h.ToggleDevice)
}

func (h *DeviceHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/create_device", h.CreateDevice)
}

// ListDevices returns the devices visible to the caller as a bare array.
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	actor, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	devices, err := h.service.ListFor(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to list devices")
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (h *DeviceHandler) ToggleDevice(c *gin.Context) {
	actor, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	deviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device ID")
		return
	}

	resp, err := h.service.Toggle(c.Request.Context(), actor, deviceID)
	if err != nil {
		switch {
		case errors.Is(err, domainDevice.ErrDeviceNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Device not found")
		case errors.Is(err, domainDevice.ErrForbidden):
			utils.ErrorResponse(c, http.StatusForbidden, "Forbidden")
		case errors.Is(err, domainDevice.ErrCommandFailed):
			utils.ErrorResponse(c, http.StatusBadGateway, "IoT send failed")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.OKResponse(c, http.StatusOK, gin.H{"device_id": resp.DeviceID, "is_on": resp.IsOn})
}

func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req device.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing fields")
		return
	}

	dev, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domainLocation.ErrLocationNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Location not found")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.OKResponse(c, http.StatusOK, gin.H{"device_id": dev.ID})
}
