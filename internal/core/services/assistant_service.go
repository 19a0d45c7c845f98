package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/metrics"
)

type assistantService struct {
	BaseService
	parser  gateways.OrderTextParser
	metrics *metrics.Metrics
}

// AssistantServiceOption is a function that configures an assistantService
type AssistantServiceOption func(*assistantService)

// WithAssistantMetrics records parse outcomes.
func WithAssistantMetrics(m *metrics.Metrics) AssistantServiceOption {
	return func(s *assistantService) {
		s.metrics = m
	}
}

// NewAssistantService wraps a text parser. A nil parser disables the assistant.
func NewAssistantService(parser gateways.OrderTextParser, options ...AssistantServiceOption) portssvc.AssistantSvc {
	svc := &assistantService{parser: parser}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AssistantSvc = (*assistantService)(nil)

func (s *assistantService) ParseItems(ctx context.Context, text string) []domain.ParsedItem {
	text = strings.TrimSpace(text)
	if text == "" {
		s.metrics.AssistantParse("empty")
		return []domain.ParsedItem{}
	}
	if s.parser == nil {
		s.LogDebug(ctx, "Order assistant is not configured")
		s.metrics.AssistantParse("disabled")
		return []domain.ParsedItem{}
	}

	parsed, err := s.parser.Parse(ctx, text)
	if err != nil {
		s.LogError(ctx, err, "Order text parsing failed", slog.Int("text_length", len(text)))
		s.metrics.AssistantParse("error")
		return []domain.ParsedItem{}
	}

	items := make([]domain.ParsedItem, 0, len(parsed))
	for _, p := range parsed {
		p.Service = strings.TrimSpace(p.Service)
		if p.Service == "" {
			continue
		}
		items = append(items, p.Normalize())
	}
	s.metrics.AssistantParse("ok")
	s.LogInfo(ctx, "Order text parsed", slog.Int("items", len(items)))
	return items
}
