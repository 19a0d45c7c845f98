// Package vietqr builds VietQR payment image links and downloads the images.
package vietqr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public VietQR image endpoint.
const DefaultBaseURL = "https://img.vietqr.io"

const maxImageBytes = 2 << 20

// Generator implements gateways.PaymentQRGenerator and gateways.QRImageFetcher.
type Generator struct {
	account domain.BankAccount
	baseURL string
	client  *http.Client
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseURL points the generator at another image host.
func WithBaseURL(base string) Option {
	return func(g *Generator) {
		g.baseURL = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient replaces the client used by FetchImage.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Generator) {
		g.client = c
	}
}

func New(account domain.BankAccount, opts ...Option) *Generator {
	if account.Template == "" {
		account.Template = "compact"
	}
	g := &Generator{
		account: account,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var (
	_ gateways.PaymentQRGenerator = (*Generator)(nil)
	_ gateways.QRImageFetcher     = (*Generator)(nil)
)

// PaymentURL returns the QR image link for paying amount with description as the transfer note.
func (g *Generator) PaymentURL(amount decimal.Decimal, description string) string {
	var b strings.Builder
	b.WriteString(g.baseURL)
	b.WriteString("/image/")
	b.WriteString(url.PathEscape(g.account.BankID + "-" + g.account.AccountNo + "-" + g.account.Template))
	b.WriteString(".png?amount=")
	b.WriteString(amount.Round(0).String())
	b.WriteString("&addInfo=")
	b.WriteString(escapeComponent(description))
	b.WriteString("&accountName=")
	b.WriteString(escapeComponent(g.account.AccountName))
	return b.String()
}

// escapeComponent escapes like encodeURIComponent: spaces become %20, not '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FetchImage downloads the QR image at imageURL.
func (g *Generator) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build QR request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch QR image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch QR image: unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("fetch QR image: unexpected content type %q", ct)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read QR image: %w", err)
	}
	return body, nil
}
