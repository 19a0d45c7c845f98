package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner checks that a record owned by employeeID is visible to the actor.
func (s *BaseService) AuthorizeOwner(ctx context.Context, actor domain.Actor, employeeID string) error {
	if actor.CanSee(employeeID) {
		return nil
	}
	s.LogDebug(ctx, "Record belongs to another employee",
		slog.String("actor_id", actor.ID),
		slog.String("owner_id", employeeID))
	return fmt.Errorf("%w: record belongs to another employee", apperrors.ErrForbidden)
}

// AuthorizeAdmin checks that the actor has the admin role.
func (s *BaseService) AuthorizeAdmin(ctx context.Context, actor domain.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	s.LogDebug(ctx, "Admin role required", slog.String("actor_id", actor.ID))
	return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
}
