package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// SessionRepository persists the last signed-in employee under a single key.
type SessionRepository struct {
	kv     portsrepo.KeyValueRepositoryFacade
	logger *slog.Logger
}

// NewSessionRepository creates a session repository on top of kv.
func NewSessionRepository(kv portsrepo.KeyValueRepositoryFacade, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{kv: kv, logger: logger}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

// LoadSession returns the stored session. An undecodable blob counts as no session.
func (r *SessionRepository) LoadSession(ctx context.Context) (*domain.Session, error) {
	blob, found, err := r.kv.Load(ctx, portsrepo.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return nil, nil
	}
	var s domain.Session
	if err := json.Unmarshal(blob, &s); err != nil || s.ID == "" {
		r.logger.Warn("Persisted session could not be decoded, ignoring it", slog.Int("bytes", len(blob)))
		return nil, nil
	}
	return &s, nil
}

// SaveSession replaces the stored session.
func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.kv.Save(ctx, portsrepo.KeySession, blob)
}

// ClearSession removes the stored session.
func (r *SessionRepository) ClearSession(ctx context.Context) error {
	return r.kv.Delete(ctx, portsrepo.KeySession)
}
