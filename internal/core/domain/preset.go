package domain

import "github.com/shopspring/decimal"

// PresetService is a named, priced service template used to prefill order lines.
type PresetService struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	Category     string          `json:"category"`
}

// Clone returns a copy of the preset.
func (p PresetService) Clone() PresetService { return p }

// ToLineItem builds an order line from the preset.
func (p PresetService) ToLineItem(quantity int) OrderItem {
	if quantity < 1 {
		quantity = 1
	}
	return OrderItem{
		Service:   p.Name,
		Quantity:  quantity,
		UnitPrice: p.DefaultPrice,
	}
}

// DefaultPresetServices is the shop's standard price list, used when no presets are persisted.
func DefaultPresetServices() []PresetService {
	return []PresetService{
		{ID: "preset-photo-a4", Name: "Photocopy A4", DefaultPrice: decimal.NewFromInt(500), Category: "Photocopy"},
		{ID: "preset-bw-a4", Name: "In đen trắng A4", DefaultPrice: decimal.NewFromInt(1000), Category: "In ấn"},
		{ID: "preset-color-a4", Name: "In màu A4", DefaultPrice: decimal.NewFromInt(5000), Category: "In ấn"},
		{ID: "preset-laminate", Name: "Ép nhựa", DefaultPrice: decimal.NewFromInt(5000), Category: "Gia công"},
		{ID: "preset-spiral", Name: "Đóng gáy xoắn", DefaultPrice: decimal.NewFromInt(15000), Category: "Gia công"},
		{ID: "preset-decal", Name: "In decal", DefaultPrice: decimal.NewFromInt(10000), Category: "In ấn"},
	}
}
