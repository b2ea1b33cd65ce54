package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/services"
)

type ClothingHandler struct {
	log             *logger.Logger
	clothingService services.ClothingService
}

func NewClothingHandler(log *logger.Logger, clothingService services.ClothingService) *ClothingHandler {
	handlerLog := log.With("handler", "ClothingHandler")
	return &ClothingHandler{log: handlerLog, clothingService: clothingService}
}

type createClothingRequest struct {
	OutfitID string   `json:"outfit_id" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Brand    string   `json:"brand" binding:"required"`
	Price    *float64 `json:"price"`
	Link     string   `json:"link" binding:"required"`
}

func (h *ClothingHandler) Create(c *gin.Context) {
	var req createClothingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "outfit_id, type, brand and link are required", "INVALID_INPUT")
		return
	}
	outfitID, err := uuid.Parse(req.OutfitID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid outfit id", "INVALID_INPUT")
		return
	}
	clothing, err := h.clothingService.Create(c.Request.Context(), CurrentUserID(c), outfitID, req.Type, req.Brand, req.Price, req.Link)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, gin.H{"clothing": clothing})
}
