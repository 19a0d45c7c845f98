package domain

import "github.com/shopspring/decimal"

// ParsedItem is a candidate order line suggested by the natural-language parser.
type ParsedItem struct {
	Service   string          `json:"service"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Note      string          `json:"note"`
}

// Normalize clamps the quantity to at least 1 and the price to at least 0.
func (p ParsedItem) Normalize() ParsedItem {
	if p.Quantity < 1 {
		p.Quantity = 1
	}
	if p.UnitPrice.IsNegative() {
		p.UnitPrice = decimal.Zero
	}
	return p
}
