package services

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// ReportingService defines the dashboard reports. Staff see figures for their
// own orders and expenses only; admins see the whole shop.
type ReportingService interface {
	// Dashboard builds the full dashboard for the bucket selector.
	Dashboard(ctx context.Context, actor domain.Actor, bucket domain.Bucket) (*domain.DashboardReport, error)

	// TimeSeries returns the bucketed revenue/expense series.
	TimeSeries(ctx context.Context, actor domain.Actor, bucket domain.Bucket) ([]domain.SeriesPoint, error)

	// EmployeeRanking ranks employees by paid revenue.
	EmployeeRanking(ctx context.Context, actor domain.Actor) ([]domain.EmployeeRevenue, error)
}
