package services

import (
	"context"
	"log/slog"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	RoleAuthorizer portssvc.RoleAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user holds at least the required staff role
func (s *BaseService) AuthorizeUser(ctx context.Context, userID string, requiredRole domain.StaffRole) error {
	if s.RoleAuthorizer != nil {
		return s.RoleAuthorizer.AuthorizeUserAction(ctx, userID, requiredRole)
	}
	s.LogDebug(ctx, "No role authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
