package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/metrics"
)

// DefaultExportDelay is how long a scheduled export waits before running.
const DefaultExportDelay = 300 * time.Millisecond

const (
	exportTriggerManual    = "manual"
	exportTriggerScheduled = "scheduled"
)

type exportService struct {
	BaseService
	orderRepo portsrepo.OrderReader
	renderer  gateways.InvoiceRenderer
	files     gateways.FileStore
	qr        gateways.PaymentQRGenerator
	qrImages  gateways.QRImageFetcher
	store     domain.StoreInfo
	delay     time.Duration
	metrics   *metrics.Metrics

	running atomic.Bool

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

// ExportServiceOption is a function that configures an exportService
type ExportServiceOption func(*exportService)

// WithExportDelay sets the wait before a scheduled export runs.
func WithExportDelay(d time.Duration) ExportServiceOption {
	return func(s *exportService) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithStoreInfo sets the shop header printed on invoices.
func WithStoreInfo(info domain.StoreInfo) ExportServiceOption {
	return func(s *exportService) {
		s.store = info
	}
}

// WithQRImageFetcher embeds fetched QR images in transfer invoices.
func WithQRImageFetcher(f gateways.QRImageFetcher) ExportServiceOption {
	return func(s *exportService) {
		s.qrImages = f
	}
}

// WithExportMetrics records export counters.
func WithExportMetrics(m *metrics.Metrics) ExportServiceOption {
	return func(s *exportService) {
		s.metrics = m
	}
}

func NewExportService(orders portsrepo.OrderReader, renderer gateways.InvoiceRenderer, files gateways.FileStore, qr gateways.PaymentQRGenerator, options ...ExportServiceOption) portssvc.ExportSvcFacade {
	svc := &exportService{
		orderRepo: orders,
		renderer:  renderer,
		files:     files,
		qr:        qr,
		delay:     DefaultExportDelay,
		pending:   make(map[string]*time.Timer),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) ExportInvoice(ctx context.Context, orderID string, actor domain.Actor) (*domain.ExportResult, error) {
	order, err := s.visibleOrder(ctx, orderID, actor)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, order, actor, exportTriggerManual)
}

func (s *exportService) export(ctx context.Context, order *domain.Order, actor domain.Actor, trigger string) (*domain.ExportResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		s.metrics.Export(trigger, "busy")
		return nil, apperrors.ErrExportInProgress
	}
	defer s.running.Store(false)

	invoice := s.buildInvoice(ctx, *order, actor)
	pdf, err := s.renderer.Render(ctx, invoice)
	if err != nil {
		s.metrics.Export(trigger, "error")
		s.LogError(ctx, err, "Failed to render invoice", slog.String("order_id", order.ID))
		return nil, fmt.Errorf("%w: render invoice: %v", apperrors.ErrExternal, err)
	}

	name := domain.InvoiceFileName(order.ID)
	location, err := s.files.Put(ctx, name, bytes.NewReader(pdf))
	if err != nil {
		s.metrics.Export(trigger, "error")
		s.LogError(ctx, err, "Failed to store invoice", slog.String("order_id", order.ID), slog.String("file", name))
		return nil, fmt.Errorf("%w: store invoice: %v", apperrors.ErrExternal, err)
	}

	s.metrics.Export(trigger, "ok")
	s.LogInfo(ctx, "Invoice exported",
		slog.String("order_id", order.ID),
		slog.String("location", location),
		slog.Int("bytes", len(pdf)))
	return &domain.ExportResult{OrderID: order.ID, FileName: name, Location: location, Size: len(pdf)}, nil
}

func (s *exportService) buildInvoice(ctx context.Context, order domain.Order, actor domain.Actor) domain.Invoice {
	invoice := domain.Invoice{
		Store:        s.store,
		Order:        order,
		EmployeeName: order.EmployeeID,
	}
	if actor.ID == order.EmployeeID && actor.Name != "" {
		invoice.EmployeeName = actor.Name
	}
	if order.PaymentMethod != domain.PaymentTransfer || s.qr == nil {
		return invoice
	}

	invoice.PaymentQRURL = s.qr.PaymentURL(order.Total, order.ID)
	if s.qrImages != nil {
		img, err := s.qrImages.FetchImage(ctx, invoice.PaymentQRURL)
		if err != nil {
			// The URL is printed instead.
			s.GetLogger(ctx).Warn("Payment QR image unavailable", slog.String("order_id", order.ID), slog.String("error", err.Error()))
		} else {
			invoice.PaymentQR = img
		}
	}
	return invoice
}

func (s *exportService) ScheduleExport(ctx context.Context, orderID string, actor domain.Actor) (time.Duration, error) {
	if _, err := s.visibleOrder(ctx, orderID, actor); err != nil {
		return 0, err
	}

	// Keep the request logger but not the request deadline.
	runCtx := context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errors.New("export service is closed")
	}
	if prev, ok := s.pending[orderID]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		if s.pending[orderID] == timer {
			delete(s.pending, orderID)
		}
		s.mu.Unlock()
		s.runScheduled(runCtx, orderID, actor)
	})
	s.pending[orderID] = timer

	s.LogDebug(ctx, "Invoice export scheduled", slog.String("order_id", orderID), slog.Duration("delay", s.delay))
	return s.delay, nil
}

// runScheduled exports the order's current snapshot. Failures are logged only.
func (s *exportService) runScheduled(ctx context.Context, orderID string, actor domain.Actor) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		s.LogError(ctx, err, "Scheduled export could not load order", slog.String("order_id", orderID))
		return
	}
	if _, err := s.export(ctx, order, actor, exportTriggerScheduled); err != nil {
		s.LogError(ctx, err, "Scheduled export failed", slog.String("order_id", orderID))
	}
}

func (s *exportService) CancelScheduledExport(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.pending[orderID]
	if !ok {
		return false
	}
	delete(s.pending, orderID)
	return timer.Stop()
}

func (s *exportService) PaymentQRURL(ctx context.Context, orderID string, actor domain.Actor) (string, *domain.Order, error) {
	order, err := s.visibleOrder(ctx, orderID, actor)
	if err != nil {
		return "", nil, err
	}
	if s.qr == nil {
		return "", order, nil
	}
	return s.qr.PaymentURL(order.Total, order.ID), order, nil
}

func (s *exportService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}

func (s *exportService) visibleOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actor, order.EmployeeID); err != nil {
		return nil, err
	}
	return order, nil
}
