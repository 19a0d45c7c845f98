package services

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/dto"
)

// SessionSvcFacade manages the signed-in employee.
type SessionSvcFacade interface {
	// Login starts a session and returns a signed access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Logout forgets the persisted session.
	Logout(ctx context.Context) error

	// Current returns the persisted session, or apperrors.ErrNotFound.
	Current(ctx context.Context) (*domain.Session, error)
}
