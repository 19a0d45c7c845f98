package domain

import (
	"github.com/shopspring/decimal"
)

// Period names a calendar-aligned reporting window containing "now".
type Period string

const (
	PeriodToday Period = "today"
	PeriodMonth Period = "month"
)

// Bucket selects the granularity of a time series.
type Bucket string

const (
	BucketDay   Bucket = "day"   // trailing 7 days
	BucketMonth Bucket = "month" // trailing 6 months
)

// Valid reports whether b is a known bucket selector.
func (b Bucket) Valid() bool {
	return b == BucketDay || b == BucketMonth
}

// SeriesPoint is one bucket of a revenue/expense time series.
type SeriesPoint struct {
	Label   string          `json:"label"` // "02/01" for days, "T1" for months
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Day     int             `json:"day,omitempty"` // zero for month buckets
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// EmployeeRevenue is one row of the employee ranking.
type EmployeeRevenue struct {
	EmployeeID string          `json:"employeeId"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// PaymentMethodTotals splits paid revenue by how it was collected.
type PaymentMethodTotals struct {
	Cash     decimal.Decimal `json:"cash"`
	Transfer decimal.Decimal `json:"transfer"`
}

// PeriodSummary holds the monetary figures of one period.
type PeriodSummary struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// DashboardReport is the full dashboard view for an actor.
type DashboardReport struct {
	Today             PeriodSummary       `json:"today"`
	Month             PeriodSummary       `json:"month"`
	ByMethod          PaymentMethodTotals `json:"byPaymentMethod"`
	Bucket            Bucket              `json:"bucket"`
	Series            []SeriesPoint       `json:"series"`
	Employees         []EmployeeRevenue   `json:"employees"`
	OrderCount        int                 `json:"orderCount"`
	PaidOrderCount    int                 `json:"paidOrderCount"`
	PendingOrderCount int                 `json:"pendingOrderCount"`
}
