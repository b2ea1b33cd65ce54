package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/services"
)

type CelebrityHandler struct {
	log              *logger.Logger
	celebrityService services.CelebrityService
}

func NewCelebrityHandler(log *logger.Logger, celebrityService services.CelebrityService) *CelebrityHandler {
	handlerLog := log.With("handler", "CelebrityHandler")
	return &CelebrityHandler{log: handlerLog, celebrityService: celebrityService}
}

func (h *CelebrityHandler) GetByID(c *gin.Context) {
	celebrityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid celebrity id", "INVALID_INPUT")
		return
	}
	detail, err := h.celebrityService.GetByID(c.Request.Context(), celebrityID, CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, detail)
}

func (h *CelebrityHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	summaries, err := h.celebrityService.Search(c.Request.Context(), query)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"results": summaries})
}

func (h *CelebrityHandler) Follow(c *gin.Context) {
	celebrityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid celebrity id", "INVALID_INPUT")
		return
	}
	edge, err := h.celebrityService.Follow(c.Request.Context(), CurrentUserID(c), celebrityID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"follow": edge})
}

func (h *CelebrityHandler) Unfollow(c *gin.Context) {
	celebrityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid celebrity id", "INVALID_INPUT")
		return
	}
	if err := h.celebrityService.Unfollow(c.Request.Context(), CurrentUserID(c), celebrityID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"status": "unfollowed"})
}

func (h *CelebrityHandler) Following(c *gin.Context) {
	feed, err := h.celebrityService.Following(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, feed)
}
