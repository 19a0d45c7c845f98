package services

import (
	"context"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// ExportSvcFacade exports invoices and builds payment QR links.
type ExportSvcFacade interface {
	// ExportInvoice renders the order's invoice and writes it to the file store.
	// It fails with apperrors.ErrExportInProgress while another export runs.
	ExportInvoice(ctx context.Context, orderID string, actor domain.Actor) (*domain.ExportResult, error)

	// ScheduleExport exports the invoice once after the configured delay,
	// replacing any pending schedule for the same order.
	ScheduleExport(ctx context.Context, orderID string, actor domain.Actor) (time.Duration, error)

	// CancelScheduledExport stops a pending export. It reports whether one was pending.
	CancelScheduledExport(orderID string) bool

	// PaymentQRURL returns the QR image URL for paying the order total.
	PaymentQRURL(ctx context.Context, orderID string, actor domain.Actor) (string, *domain.Order, error)

	// Close cancels every pending scheduled export.
	Close()
}
