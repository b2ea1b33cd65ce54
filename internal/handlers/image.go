package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/services"
)

type ImageHandler struct {
	log          *logger.Logger
	imageService services.ImageService
}

func NewImageHandler(log *logger.Logger, imageService services.ImageService) *ImageHandler {
	handlerLog := log.With("handler", "ImageHandler")
	return &ImageHandler{log: handlerLog, imageService: imageService}
}

type uploadImageRequest struct {
	Image string `json:"image" binding:"required"`
}

func (h *ImageHandler) Upload(c *gin.Context) {
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "an image payload is required", "INVALID_INPUT")
		return
	}
	url, err := h.imageService.Upload(c.Request.Context(), CurrentUserID(c), req.Image)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, gin.H{"url": url})
}
