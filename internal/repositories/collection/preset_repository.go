package collection

import (
	"context"
	"log/slog"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// PresetRepository holds the preset service list in display order.
type PresetRepository struct {
	presets *collection[domain.PresetService]
}

// NewPresetRepository loads the preset list from kv, falling back to the default
// price list when nothing usable is stored.
func NewPresetRepository(ctx context.Context, kv portsrepo.KeyValueRepositoryFacade, logger *slog.Logger) (*PresetRepository, error) {
	c, loaded, err := loadCollection(ctx, kv, portsrepo.KeyPresets, domain.PresetService.Clone, logger)
	if err != nil {
		return nil, err
	}
	if !loaded {
		c.items = domain.DefaultPresetServices()
	}
	return &PresetRepository{presets: c}, nil
}

var _ portsrepo.PresetRepositoryFacade = (*PresetRepository)(nil)

// ListPresets returns copies of the presets in display order.
func (r *PresetRepository) ListPresets(_ context.Context) ([]domain.PresetService, error) {
	return r.presets.snapshot(), nil
}

// AppendPreset adds a preset at the end of the list.
func (r *PresetRepository) AppendPreset(ctx context.Context, preset domain.PresetService) error {
	return r.presets.appendItem(ctx, preset)
}
