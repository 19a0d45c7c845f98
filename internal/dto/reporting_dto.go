package dto

import (
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/utils/aggregation"
	"github.com/shopspring/decimal"
)

// SeriesPointResponse is one bar of a chart. The scale fields are in [0, 1]
// relative to the largest revenue or expense in the series.
type SeriesPointResponse struct {
	Label        string          `json:"label"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expense      decimal.Decimal `json:"expense"`
	Profit       decimal.Decimal `json:"profit"`
	RevenueScale float64         `json:"revenueScale"`
	ExpenseScale float64         `json:"expenseScale"`
}

// TimeSeriesResponse represents a bucketed revenue/expense chart
type TimeSeriesResponse struct {
	Bucket string                `json:"bucket"`
	Points []SeriesPointResponse `json:"points"`
}

// EmployeeRevenueResponse is one row of the employee ranking.
type EmployeeRevenueResponse struct {
	Rank       int             `json:"rank"`
	EmployeeID string          `json:"employeeId"`
	Revenue    decimal.Decimal `json:"revenue"`
	Scale      float64         `json:"scale"` // relative to the top earner
}

// EmployeeRankingResponse represents the revenue ranking report response
type EmployeeRankingResponse struct {
	Employees []EmployeeRevenueResponse `json:"employees"`
}

// DashboardResponse represents the dashboard report response
type DashboardResponse struct {
	Today             domain.PeriodSummary       `json:"today"`
	Month             domain.PeriodSummary       `json:"month"`
	ByPaymentMethod   domain.PaymentMethodTotals `json:"byPaymentMethod"`
	Chart             TimeSeriesResponse         `json:"chart"`
	Ranking           EmployeeRankingResponse    `json:"ranking"`
	OrderCount        int                        `json:"orderCount"`
	PaidOrderCount    int                        `json:"paidOrderCount"`
	PendingOrderCount int                        `json:"pendingOrderCount"`
}

// ToTimeSeriesResponse converts series points to a chart response
func ToTimeSeriesResponse(bucket domain.Bucket, points []domain.SeriesPoint) TimeSeriesResponse {
	peak := decimal.Zero
	for _, p := range points {
		peak = decimal.Max(peak, p.Revenue, p.Expense)
	}
	res := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		res[i] = SeriesPointResponse{
			Label:        p.Label,
			Revenue:      p.Revenue,
			Expense:      p.Expense,
			Profit:       p.Profit,
			RevenueScale: aggregation.ScaleToMax(p.Revenue, peak),
			ExpenseScale: aggregation.ScaleToMax(p.Expense, peak),
		}
	}
	return TimeSeriesResponse{Bucket: string(bucket), Points: res}
}

// ToEmployeeRankingResponse converts a ranking to its response DTO
func ToEmployeeRankingResponse(ranking []domain.EmployeeRevenue) EmployeeRankingResponse {
	peak := decimal.Zero
	if len(ranking) > 0 {
		peak = ranking[0].Revenue
	}
	res := make([]EmployeeRevenueResponse, len(ranking))
	for i, r := range ranking {
		res[i] = EmployeeRevenueResponse{
			Rank:       i + 1,
			EmployeeID: r.EmployeeID,
			Revenue:    r.Revenue,
			Scale:      aggregation.ScaleToMax(r.Revenue, peak),
		}
	}
	return EmployeeRankingResponse{Employees: res}
}

// ToDashboardResponse converts a domain.DashboardReport to its response DTO
func ToDashboardResponse(r *domain.DashboardReport) DashboardResponse {
	return DashboardResponse{
		Today:             r.Today,
		Month:             r.Month,
		ByPaymentMethod:   r.ByMethod,
		Chart:             ToTimeSeriesResponse(r.Bucket, r.Series),
		Ranking:           ToEmployeeRankingResponse(r.Employees),
		OrderCount:        r.OrderCount,
		PaidOrderCount:    r.PaidOrderCount,
		PendingOrderCount: r.PendingOrderCount,
	}
}
