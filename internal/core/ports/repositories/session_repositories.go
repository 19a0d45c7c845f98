package repositories

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// SessionRepositoryFacade stores the last signed-in employee.
type SessionRepositoryFacade interface {
	// LoadSession returns the stored session, or nil when none is stored or it cannot be decoded.
	LoadSession(ctx context.Context) (*domain.Session, error)

	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session domain.Session) error

	// ClearSession removes the stored session.
	ClearSession(ctx context.Context) error
}
