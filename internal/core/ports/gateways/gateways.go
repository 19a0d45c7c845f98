// Package gateways declares the outbound collaborators of the core: invoice
// rendering, file storage, the natural-language order parser and the payment QR
// provider.
package gateways

import (
	"context"
	"io"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceRenderer turns an invoice view into a page-formatted document.
type InvoiceRenderer interface {
	Render(ctx context.Context, invoice domain.Invoice) ([]byte, error)
}

// FileStore writes exported files and returns their location.
type FileStore interface {
	Put(ctx context.Context, name string, r io.Reader) (location string, err error)
}

// OrderTextParser extracts candidate line items from free text.
type OrderTextParser interface {
	Parse(ctx context.Context, text string) ([]domain.ParsedItem, error)
}

// PaymentQRGenerator builds the URL of a payable QR image for the configured beneficiary.
type PaymentQRGenerator interface {
	PaymentURL(amount decimal.Decimal, description string) string
}

// QRImageFetcher downloads a QR image so it can be embedded in a document.
type QRImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}
