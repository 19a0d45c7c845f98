package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/SscSPs/printshop_pos/internal/platform/config"
	"github.com/SscSPs/printshop_pos/internal/utils"
)

// Gateways bundles the outbound collaborators used by the services.
// QR, QRImages and Parser may be nil; the features they back are then disabled.
type Gateways struct {
	Renderer gateways.InvoiceRenderer
	Files    gateways.FileStore
	QR       gateways.PaymentQRGenerator
	QRImages gateways.QRImageFetcher
	Parser   gateways.OrderTextParser
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gw Gateways, m *metrics.Metrics) (*portssvc.ServiceContainer, error) {
	adminPINHash := ""
	if cfg.AdminPIN != "" {
		hash, err := utils.HashPassword(cfg.AdminPIN)
		if err != nil {
			return nil, fmt.Errorf("hash admin PIN: %w", err)
		}
		adminPINHash = hash
	}

	container := &portssvc.ServiceContainer{}

	container.Order = NewOrderService(repos.OrderRepo, WithOrderMetrics(m))
	container.Expense = NewExpenseService(repos.ExpenseRepo, WithExpenseMetrics(m))
	container.Preset = NewPresetService(repos.PresetRepo)
	container.Session = NewSessionService(repos.SessionRepo, SessionSettings{
		JWTSecret:    cfg.JWTSecret,
		JWTExpiry:    cfg.JWTExpiryDuration,
		JWTIssuer:    cfg.JWTIssuer,
		AdminPINHash: adminPINHash,
	})
	container.Reporting = NewReportingService(repos.OrderRepo, repos.ExpenseRepo, WithReportingLocation(time.Local))

	exportOpts := []ExportServiceOption{
		WithExportDelay(cfg.ExportDelay),
		WithStoreInfo(domain.StoreInfo{Name: cfg.StoreName, Address: cfg.StoreAddress, Hotline: cfg.StoreHotline}),
		WithExportMetrics(m),
	}
	if gw.QRImages != nil {
		exportOpts = append(exportOpts, WithQRImageFetcher(gw.QRImages))
	}
	container.Export = NewExportService(repos.OrderRepo, gw.Renderer, gw.Files, gw.QR, exportOpts...)
	container.Assistant = NewAssistantService(gw.Parser, WithAssistantMetrics(m))

	return container, nil
}
