package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/utils"
	"github.com/SscSPs/printshop_pos/internal/utils/validation"
	"github.com/go-playground/validator/v10"
)

// SessionSettings configures token signing and admin sign-in.
type SessionSettings struct {
	JWTSecret    string
	JWTExpiry    time.Duration
	JWTIssuer    string
	AdminPINHash string // bcrypt hash; empty disables admin sign-in
}

type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
	settings    SessionSettings
	validate    *validator.Validate
	now         Clock
}

// SessionServiceOption is a function that configures a sessionService
type SessionServiceOption func(*sessionService)

// WithSessionClock replaces the clock used for token issue times.
func WithSessionClock(now Clock) SessionServiceOption {
	return func(s *sessionService) {
		s.now = now
	}
}

func NewSessionService(repo portsrepo.SessionRepositoryFacade, settings SessionSettings, options ...SessionServiceOption) portssvc.SessionSvcFacade {
	svc := &sessionService{
		sessionRepo: repo,
		settings:    settings,
		validate:    validation.New(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ToAppError(s.validate.Struct(req)); err != nil {
		return nil, err
	}

	if req.Role == domain.RoleAdmin {
		if s.settings.AdminPINHash == "" || !utils.CheckPasswordHash(req.PIN, s.settings.AdminPINHash) {
			s.LogInfo(ctx, "Admin sign-in rejected", slog.String("employee_id", req.EmployeeID))
			return nil, fmt.Errorf("%w: invalid admin PIN", apperrors.ErrUnauthorized)
		}
	}

	now := s.now()
	actor := domain.Actor{ID: req.EmployeeID, Name: req.Name, Role: req.Role}
	token, expiresAt, err := utils.GenerateJWT(actor, s.settings.JWTSecret, s.settings.JWTExpiry, s.settings.JWTIssuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("employee_id", actor.ID))
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	session := domain.Session{Actor: actor, SignedInAt: now.UTC().Round(0)}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to persist session", slog.String("employee_id", actor.ID))
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.LogInfo(ctx, "Employee signed in", slog.String("employee_id", actor.ID), slog.String("role", string(actor.Role)))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Session: session}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.ClearSession(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear session")
		return err
	}
	s.LogInfo(ctx, "Session cleared")
	return nil
}

func (s *sessionService) Current(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessionRepo.LoadSession(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load session")
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: no active session", apperrors.ErrNotFound)
	}
	return session, nil
}
