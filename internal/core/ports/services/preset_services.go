package services

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/dto"
)

// PresetSvcFacade defines operations on the preset service price list.
type PresetSvcFacade interface {
	ListPresets(ctx context.Context) ([]domain.PresetService, error)

	// CreatePreset adds a preset. Only admins may change the price list.
	CreatePreset(ctx context.Context, req dto.CreatePresetRequest, actor domain.Actor) (*domain.PresetService, error)
}
