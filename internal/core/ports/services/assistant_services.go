package services

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// AssistantSvc turns free text into suggested order lines.
type AssistantSvc interface {
	// ParseItems never fails: parser errors yield an empty slice.
	ParseItems(ctx context.Context, text string) []domain.ParsedItem
}
