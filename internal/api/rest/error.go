package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/vtopia/nft-assistant/internal/api/shared/errors"
	"github.com/vtopia/nft-assistant/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends err in the error envelope, using the status of its code
func respondWithError(c *gin.Context, err *apierrors.APIError) {
	c.JSON(err.HTTPStatus(), errorResponse{Error: err})
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, apierrors.NewValidationError(details))
}

// respondError converts an executor error and sends it; server side failures are logged
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	apiErr := apierrors.FromError(err, message)
	if apiErr.HTTPStatus() >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	}
	respondWithError(c, apiErr)
}
