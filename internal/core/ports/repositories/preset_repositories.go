package repositories

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// PresetRepositoryFacade stores the preset service list.
type PresetRepositoryFacade interface {
	// ListPresets returns the presets in display order.
	ListPresets(ctx context.Context) ([]domain.PresetService, error)

	// AppendPreset adds a preset at the end of the list.
	AppendPreset(ctx context.Context, preset domain.PresetService) error
}
