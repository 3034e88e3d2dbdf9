package handlers

import (
	"log/slog"
	"net/http"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the error payload for err. Internal failures are logged
// with their cause and answered with the generic message only.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Status:  status,
		Error:   apperrors.Label(err),
		Message: apperrors.PublicMessage(err),
		Path:    c.Request.URL.Path,
	})
}

// respondBindingError answers a request whose body or query could not be bound.
func respondBindingError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Status:  http.StatusBadRequest,
		Error:   apperrors.Label(apperrors.ErrValidation),
		Message: "Invalid request format",
		Path:    c.Request.URL.Path,
		Details: err.Error(),
	})
}
