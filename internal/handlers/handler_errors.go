package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body returned by every handler.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps a service error to its HTTP status. fallback is the
// message used for unexpected failures so internals never leak to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrValidation.Error(), Fields: apperrors.FieldErrors(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Access forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Resource conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Conflict"})
	case errors.Is(err, apperrors.ErrExportInProgress):
		logger.Warn("Export already running")
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrExternal):
		logger.Error("External collaborator failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: fallback})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// requireActor fetches the signed-in employee or answers 401.
func requireActor(c *gin.Context, logger *slog.Logger) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

func bindError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Warn("Failed to bind JSON for "+op, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
