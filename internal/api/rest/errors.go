package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/api/shared/errors"
	"github.com/feral-file/power-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

// respondError maps err onto the error taxonomy. Server side failures are logged.
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	status, apiErr := errors.FromDomain(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("message", message))...)
	}
	c.JSON(status, apiErr)
}
