package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/utils/aggregation"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	orderRepo   portsrepo.OrderReader
	expenseRepo portsrepo.ExpenseReader
	now         Clock
	location    *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the clock reports are computed against.
func WithReportingClock(now Clock) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// WithReportingLocation sets the time zone that defines "today" and "this month".
func WithReportingLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(orders portsrepo.OrderReader, expenses portsrepo.ExpenseReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		orderRepo:   orders,
		expenseRepo: expenses,
		now:         time.Now,
		location:    time.Local,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot loads the records visible to the actor and the reference time.
func (s *reportingService) snapshot(ctx context.Context, actor domain.Actor) ([]domain.Order, []domain.Expense, time.Time, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load orders for report")
		return nil, nil, time.Time{}, fmt.Errorf("failed to load orders: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for report")
		return nil, nil, time.Time{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	return VisibleOrders(orders, actor), VisibleExpenses(expenses, actor), s.now().In(s.location), nil
}

func (s *reportingService) Dashboard(ctx context.Context, actor domain.Actor, bucket domain.Bucket) (*domain.DashboardReport, error) {
	orders, expenses, now, err := s.snapshot(ctx, actor)
	if err != nil {
		return nil, err
	}

	series, err := aggregation.TimeSeries(orders, expenses, bucket, now)
	if err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{
		Today:      aggregation.Summarize(orders, expenses, domain.PeriodToday, now),
		Month:      aggregation.Summarize(orders, expenses, domain.PeriodMonth, now),
		ByMethod:   aggregation.RevenueByPaymentMethod(orders),
		Bucket:     bucket,
		Series:     series,
		Employees:  aggregation.RevenueByEmployee(orders),
		OrderCount: len(orders),
	}
	for _, o := range orders {
		switch o.PaymentStatus {
		case domain.PaymentPaid:
			report.PaidOrderCount++
		case domain.PaymentPending:
			report.PendingOrderCount++
		}
	}

	s.LogDebug(ctx, "Dashboard computed",
		slog.String("actor_id", actor.ID),
		slog.String("bucket", string(bucket)),
		slog.Int("orders", len(orders)),
		slog.Int("expenses", len(expenses)))
	return report, nil
}

func (s *reportingService) TimeSeries(ctx context.Context, actor domain.Actor, bucket domain.Bucket) ([]domain.SeriesPoint, error) {
	orders, expenses, now, err := s.snapshot(ctx, actor)
	if err != nil {
		return nil, err
	}
	return aggregation.TimeSeries(orders, expenses, bucket, now)
}

func (s *reportingService) EmployeeRanking(ctx context.Context, actor domain.Actor) ([]domain.EmployeeRevenue, error) {
	orders, _, _, err := s.snapshot(ctx, actor)
	if err != nil {
		return nil, err
	}
	return aggregation.RevenueByEmployee(orders), nil
}
