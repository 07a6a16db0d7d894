package handler

import (
	"errors"
	"net/http"

	"facility-hub/internal/usecase/support"
	appErrors "facility-hub/pkg/errors"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	service *support.Service
}

func NewSupportHandler(service *support.Service) *SupportHandler {
	return &SupportHandler{service: service}
}

func (h *SupportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/support", h.Ask)
}

type askRequest struct {
	Message string `json:"message"`
}

func (h *SupportHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, appErrors.ErrEmptyMessage) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Empty message")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.OKResponse(c, http.StatusOK, gin.H{"answer": answer})
}
