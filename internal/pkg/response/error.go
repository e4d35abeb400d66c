package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response. If the error is an AppError the
// status code comes from it; anything else becomes a 500 so that
// internal details never leak to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
