package dto

import (
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePresetRequest defines the data needed to add a preset service.
type CreatePresetRequest struct {
	Name         string          `json:"name" validate:"required"`
	DefaultPrice decimal.Decimal `json:"defaultPrice" validate:"gte=0,whole"`
	Category     string          `json:"category"`
}

// ListPresetsResponse wraps the preset list.
type ListPresetsResponse struct {
	Presets []domain.PresetService `json:"presets"`
}
