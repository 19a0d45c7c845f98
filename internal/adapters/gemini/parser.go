// Package gemini turns spoken or typed order descriptions into order lines
// using the Gemini generative language API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	"github.com/SscSPs/printshop_pos/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// contentGenerator is the part of *genai.Models the parser calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// PresetLister supplies the shop's price list for the prompt.
type PresetLister interface {
	ListPresets(ctx context.Context) ([]domain.PresetService, error)
}

// Parser implements gateways.OrderTextParser.
type Parser struct {
	models  contentGenerator
	model   string
	presets PresetLister
	limiter *rate.Limiter
}

// Option configures a Parser.
type Option func(*Parser)

// WithModel selects the Gemini model.
func WithModel(model string) Option {
	return func(p *Parser) {
		if model != "" {
			p.model = model
		}
	}
}

// WithPresets includes the current preset prices in the prompt.
func WithPresets(presets PresetLister) Option {
	return func(p *Parser) {
		p.presets = presets
	}
}

// WithRateLimit caps outgoing requests per second with the given burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(p *Parser) {
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewParser creates a Gemini API client for apiKey.
func NewParser(ctx context.Context, apiKey string, opts ...Option) (*Parser, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newParser(client.Models, opts...), nil
}

func newParser(models contentGenerator, opts ...Option) *Parser {
	p := &Parser{
		models:  models,
		model:   DefaultModel,
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ gateways.OrderTextParser = (*Parser)(nil)

// Parse asks the model for a JSON list of order lines.
func (p *Parser) Parse(ctx context.Context, text string) ([]domain.ParsedItem, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: gemini rate limit: %v", apperrors.ErrExternal, err)
	}

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(p.prompt(ctx, text)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   itemsSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gemini generate: %v", apperrors.ErrExternal, err)
	}
	return DecodeItems(resp.Text())
}

var itemsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"service":   {Type: genai.TypeString, Description: "Tên dịch vụ chi tiết"},
			"quantity":  {Type: genai.TypeNumber, Description: "Số lượng (số nguyên)"},
			"unitPrice": {Type: genai.TypeNumber, Description: "Đơn giá (VNĐ)"},
			"note":      {Type: genai.TypeString, Description: "Ghi chú kỹ thuật hoặc yêu cầu riêng"},
		},
		Required: []string{"service", "quantity", "unitPrice"},
	},
}

func (p *Parser) prompt(ctx context.Context, input string) string {
	presets := domain.DefaultPresetServices()
	if p.presets != nil {
		if list, err := p.presets.ListPresets(ctx); err == nil && len(list) > 0 {
			presets = list
		}
	}

	var prices strings.Builder
	for _, ps := range presets {
		fmt.Fprintf(&prices, "       - %s: %s\n", ps.Name, utils.FormatVND(ps.DefaultPrice))
	}

	return `Bạn là một trợ lý ảo chuyên nghiệp cho cửa hàng photocopy và in ấn.
    Nhiệm vụ: Phân tích đoạn văn bản từ giọng nói và trích xuất danh sách các dịch vụ chi tiết.

    Quy tắc nghiệp vụ:
    1. Nhận diện các dịch vụ phổ biến: Photocopy, In màu, In đen trắng, Đóng tập, Ép nhựa, In decal, Khổ giấy (A0, A1, A2, A3, A4, A5).
    2. Nếu khách nói "một trăm tờ" -> quantity = 100.
    3. Nếu không có đơn giá trong lời nói, hãy tự động gán giá theo bảng giá của cửa hàng:
` + prices.String() + `    4. Phân tách rõ ràng nếu có nhiều dịch vụ trong một câu (ví dụ: "in 10 tờ màu A4 và photo 50 bản 2 mặt").
    5. Trích xuất ghi chú như "in 2 mặt", "giấy dày", "lấy gấp".

    Đầu vào: "` + input + `"`
}

type rawItem struct {
	Service   string  `json:"service"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Note      string  `json:"note"`
}

// DecodeItems parses the model's JSON answer. Blank or "null" answers yield no items.
func DecodeItems(raw string) ([]domain.ParsedItem, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []domain.ParsedItem{}, nil
	}

	var items []rawItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: gemini response: %v", apperrors.ErrDecode, err)
	}

	out := make([]domain.ParsedItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.ParsedItem{
			Service:   strings.TrimSpace(it.Service),
			Quantity:  quantityFromModel(it.Quantity),
			UnitPrice: decimal.NewFromFloat(it.UnitPrice).Round(0),
			Note:      strings.TrimSpace(it.Note),
		})
	}
	return out, nil
}

// quantityFromModel rounds q and caps it at math.MaxInt32. NaN and values below 1
// become 0, which ParsedItem.Normalize turns into 1.
func quantityFromModel(q float64) int {
	q = math.Round(q)
	switch {
	case math.IsNaN(q) || q < 1:
		return 0
	case q > math.MaxInt32:
		return math.MaxInt32
	}
	return int(q)
}
