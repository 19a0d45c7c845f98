package dto

import "github.com/SscSPs/printshop_pos/internal/core/domain"

// ParseOrderRequest carries typed or transcribed text describing an order.
type ParseOrderRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseOrderResponse lists the suggested line items. It is empty when nothing could be parsed.
type ParseOrderResponse struct {
	Items []domain.ParsedItem `json:"items"`
}
