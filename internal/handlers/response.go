package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: message, Code: code}})
}

func RespondOK(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// RespondServiceError maps a service-layer error onto the wire. Errors
// outside the apierr taxonomy surface as a generic 500 so internals
// never leak.
func RespondServiceError(c *gin.Context, err error) {
	apiError := apierr.From(err)
	if apiError.Status >= http.StatusInternalServerError {
		RespondError(c, apiError.Status, "internal server error", apiError.Code)
		return
	}
	RespondError(c, apiError.Status, apiError.Err.Error(), apiError.Code)
}
