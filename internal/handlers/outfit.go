package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/services"
)

type OutfitHandler struct {
	log           *logger.Logger
	outfitService services.OutfitService
	ratingService services.RatingService
}

func NewOutfitHandler(log *logger.Logger, outfitService services.OutfitService, ratingService services.RatingService) *OutfitHandler {
	handlerLog := log.With("handler", "OutfitHandler")
	return &OutfitHandler{log: handlerLog, outfitService: outfitService, ratingService: ratingService}
}

type createOutfitRequest struct {
	CelebrityName string `json:"celebrity_name" binding:"required"`
	Image         string `json:"image" binding:"required"`
	Description   string `json:"description"`
	Source        string `json:"source"`
}

func (h *OutfitHandler) Create(c *gin.Context) {
	var req createOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "celebrity_name and image are required", "INVALID_INPUT")
		return
	}
	outfit, err := h.outfitService.Create(c.Request.Context(), CurrentUserID(c), req.CelebrityName, req.Image, req.Description, req.Source)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, gin.H{"outfit": outfit})
}

func (h *OutfitHandler) Delete(c *gin.Context) {
	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid outfit id", "INVALID_INPUT")
		return
	}
	if err := h.outfitService.Delete(c.Request.Context(), CurrentUserID(c), outfitID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (h *OutfitHandler) GetRecent(c *gin.Context) {
	outfits, err := h.outfitService.GetRecent(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"outfits": outfits})
}

func (h *OutfitHandler) ListMine(c *gin.Context) {
	outfits, err := h.outfitService.ListMine(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"outfits": outfits})
}

func (h *OutfitHandler) GetByID(c *gin.Context) {
	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid outfit id", "INVALID_INPUT")
		return
	}
	detail, err := h.outfitService.GetByID(c.Request.Context(), outfitID, CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, detail)
}

type submitRatingRequest struct {
	Value int `json:"value" binding:"required"`
}

func (h *OutfitHandler) SubmitRating(c *gin.Context) {
	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid outfit id", "INVALID_INPUT")
		return
	}
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "a rating value is required", "INVALID_INPUT")
		return
	}
	rating, err := h.ratingService.SubmitRating(c.Request.Context(), CurrentUserID(c), outfitID, req.Value)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, gin.H{"rating": rating})
}
