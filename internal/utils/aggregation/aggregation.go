// Package aggregation derives revenue, expense and profit figures from order and
// expense snapshots. Every function is pure: the result depends only on the
// arguments, and inputs are never modified.
//
// Calendar comparisons use the location of the reference instant, so a caller
// passing a local "now" gets local day and month boundaries.
package aggregation

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	dailyBuckets   = 7
	monthlyBuckets = 6
)

// FilterPaid returns the orders whose payment status is PAID, in input order.
func FilterPaid(orders []domain.Order) []domain.Order {
	paid := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsPaid() {
			paid = append(paid, o)
		}
	}
	return paid
}

// RevenueInPeriod sums the totals of paid orders created inside the period containing now.
func RevenueInPeriod(orders []domain.Order, period domain.Period, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.IsPaid() && inPeriod(o.CreatedAt, period, now) {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// ExpenseInPeriod sums the amounts of expenses dated inside the period containing now.
func ExpenseInPeriod(expenses []domain.Expense, period domain.Period, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		if inPeriod(e.Date, period, now) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// Profit is revenue minus expense for the period. It may be negative.
func Profit(orders []domain.Order, expenses []domain.Expense, period domain.Period, now time.Time) decimal.Decimal {
	return RevenueInPeriod(orders, period, now).Sub(ExpenseInPeriod(expenses, period, now))
}

// Summarize returns revenue, expense and profit for the period in one value.
func Summarize(orders []domain.Order, expenses []domain.Expense, period domain.Period, now time.Time) domain.PeriodSummary {
	revenue := RevenueInPeriod(orders, period, now)
	expense := ExpenseInPeriod(expenses, period, now)
	return domain.PeriodSummary{
		Revenue: revenue,
		Expense: expense,
		Profit:  revenue.Sub(expense),
	}
}

// TimeSeries buckets paid revenue and expenses over the trailing 7 days (BucketDay)
// or 6 months (BucketMonth). Buckets are oldest first; the last one contains now.
// Empty buckets are reported with zero values.
func TimeSeries(orders []domain.Order, expenses []domain.Expense, bucket domain.Bucket, now time.Time) ([]domain.SeriesPoint, error) {
	switch bucket {
	case domain.BucketDay:
		return dailySeries(orders, expenses, now), nil
	case domain.BucketMonth:
		return monthlySeries(orders, expenses, now), nil
	default:
		return nil, apperrors.NewValidationError(map[string]string{
			"bucket": fmt.Sprintf("unknown bucket %q, expected %q or %q", bucket, domain.BucketDay, domain.BucketMonth),
		})
	}
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

type monthKey struct {
	year  int
	month time.Month
}

func dailySeries(orders []domain.Order, expenses []domain.Expense, now time.Time) []domain.SeriesPoint {
	loc := now.Location()
	points := make([]domain.SeriesPoint, dailyBuckets)
	index := make(map[dayKey]int, dailyBuckets)
	for i := 0; i < dailyBuckets; i++ {
		d := time.Date(now.Year(), now.Month(), now.Day()-(dailyBuckets-1-i), 0, 0, 0, 0, loc)
		index[dayKey{d.Year(), d.Month(), d.Day()}] = i
		points[i] = domain.SeriesPoint{
			Label:   d.Format("02/01"),
			Year:    d.Year(),
			Month:   int(d.Month()),
			Day:     d.Day(),
			Revenue: decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		t := o.CreatedAt.In(loc)
		if i, ok := index[dayKey{t.Year(), t.Month(), t.Day()}]; ok {
			points[i].Revenue = points[i].Revenue.Add(o.Total)
		}
	}
	for _, e := range expenses {
		t := e.Date.In(loc)
		if i, ok := index[dayKey{t.Year(), t.Month(), t.Day()}]; ok {
			points[i].Expense = points[i].Expense.Add(e.Amount)
		}
	}
	return withProfit(points)
}

func monthlySeries(orders []domain.Order, expenses []domain.Expense, now time.Time) []domain.SeriesPoint {
	loc := now.Location()
	points := make([]domain.SeriesPoint, monthlyBuckets)
	index := make(map[monthKey]int, monthlyBuckets)
	for i := 0; i < monthlyBuckets; i++ {
		// Day 1 avoids the AddDate overflow on the 31st.
		m := time.Date(now.Year(), now.Month()-time.Month(monthlyBuckets-1-i), 1, 0, 0, 0, 0, loc)
		index[monthKey{m.Year(), m.Month()}] = i
		points[i] = domain.SeriesPoint{
			Label:   fmt.Sprintf("T%d", int(m.Month())),
			Year:    m.Year(),
			Month:   int(m.Month()),
			Revenue: decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		t := o.CreatedAt.In(loc)
		if i, ok := index[monthKey{t.Year(), t.Month()}]; ok {
			points[i].Revenue = points[i].Revenue.Add(o.Total)
		}
	}
	for _, e := range expenses {
		t := e.Date.In(loc)
		if i, ok := index[monthKey{t.Year(), t.Month()}]; ok {
			points[i].Expense = points[i].Expense.Add(e.Amount)
		}
	}
	return withProfit(points)
}

func withProfit(points []domain.SeriesPoint) []domain.SeriesPoint {
	for i := range points {
		points[i].Profit = points[i].Revenue.Sub(points[i].Expense)
	}
	return points
}

// RevenueByEmployee ranks employees by the summed totals of their paid orders,
// highest first. Ties keep the order in which employees first appear in orders.
func RevenueByEmployee(orders []domain.Order) []domain.EmployeeRevenue {
	totals := make(map[string]decimal.Decimal)
	ranking := make([]domain.EmployeeRevenue, 0)
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		if _, seen := totals[o.EmployeeID]; !seen {
			ranking = append(ranking, domain.EmployeeRevenue{EmployeeID: o.EmployeeID})
		}
		totals[o.EmployeeID] = totals[o.EmployeeID].Add(o.Total)
	}
	for i := range ranking {
		ranking[i].Revenue = totals[ranking[i].EmployeeID]
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
	})
	return ranking
}

// RevenueByPaymentMethod splits the totals of paid orders into cash and transfer.
func RevenueByPaymentMethod(orders []domain.Order) domain.PaymentMethodTotals {
	totals := domain.PaymentMethodTotals{Cash: decimal.Zero, Transfer: decimal.Zero}
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		switch o.PaymentMethod {
		case domain.PaymentCash:
			totals.Cash = totals.Cash.Add(o.Total)
		case domain.PaymentTransfer:
			totals.Transfer = totals.Transfer.Add(o.Total)
		}
	}
	return totals
}

// ScaleToMax normalises value against peak for display, clamped to [0, 1].
// A non-positive peak yields 0.
func ScaleToMax(value, peak decimal.Decimal) float64 {
	if !peak.IsPositive() || !value.IsPositive() {
		return 0
	}
	ratio, _ := value.Div(peak).Float64()
	if ratio > 1 {
		return 1
	}
	return ratio
}

func inPeriod(t time.Time, period domain.Period, now time.Time) bool {
	lt := t.In(now.Location())
	switch period {
	case domain.PeriodToday:
		y1, m1, d1 := lt.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case domain.PeriodMonth:
		return lt.Year() == now.Year() && lt.Month() == now.Month()
	default:
		return false
	}
}
