package aggregation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/utils/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hcm = time.FixedZone("ICT", 7*60*60)

// 2026-03-15 10:00 local
var now = time.Date(2026, time.March, 15, 10, 0, 0, 0, hcm)

func order(id, employee string, total int64, status domain.PaymentStatus, at time.Time) domain.Order {
	return domain.Order{
		ID:            id,
		CreatedAt:     at.UTC(),
		SubTotal:      decimal.NewFromInt(total),
		VAT:           decimal.Zero,
		Total:         decimal.NewFromInt(total),
		PaymentStatus: status,
		WorkStatus:    domain.WorkNotStarted,
		PaymentMethod: domain.PaymentTransfer,
		EmployeeID:    employee,
	}
}

func expense(amount int64, at time.Time) domain.Expense {
	return domain.Expense{ID: "x", Date: at.UTC(), Category: "Giấy in", Amount: decimal.NewFromInt(amount), EmployeeID: "E1"}
}

func decEq(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got)
}

func TestFilterPaid(t *testing.T) {
	orders := []domain.Order{
		order("A", "E1", 100, domain.PaymentPaid, now),
		order("B", "E1", 200, domain.PaymentPending, now),
		order("C", "E2", 300, domain.PaymentCancelled, now),
		order("D", "E2", 400, domain.PaymentPaid, now),
	}
	paid := aggregation.FilterPaid(orders)
	require.Len(t, paid, 2)
	assert.Equal(t, "A", paid[0].ID)
	assert.Equal(t, "D", paid[1].ID)
	assert.Empty(t, aggregation.FilterPaid(nil))
}

func TestRevenueInPeriod(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := time.Date(2026, time.February, 28, 12, 0, 0, 0, hcm)
	orders := []domain.Order{
		order("A", "E1", 100000, domain.PaymentPaid, now),
		order("B", "E1", 50000, domain.PaymentPaid, yesterday),
		order("C", "E1", 70000, domain.PaymentPaid, lastMonth),
		order("D", "E1", 999999, domain.PaymentPending, now),
		order("E", "E1", 888888, domain.PaymentCancelled, now),
	}

	decEq(t, 100000, aggregation.RevenueInPeriod(orders, domain.PeriodToday, now))
	decEq(t, 150000, aggregation.RevenueInPeriod(orders, domain.PeriodMonth, now))
}

func TestRevenueInPeriod_OnlyUnpaidIsZero(t *testing.T) {
	orders := []domain.Order{
		order("A", "E1", 100000, domain.PaymentPending, now),
		order("B", "E2", 50000, domain.PaymentCancelled, now),
	}
	assert.True(t, aggregation.RevenueInPeriod(orders, domain.PeriodToday, now).IsZero())
	assert.True(t, aggregation.RevenueInPeriod(orders, domain.PeriodMonth, now).IsZero())
}

func TestRevenueInPeriod_UsesLocalCalendarDay(t *testing.T) {
	// 23:30 UTC on the 14th is 06:30 on the 15th in UTC+7.
	lateUTC := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC)
	orders := []domain.Order{order("A", "E1", 1000, domain.PaymentPaid, lateUTC)}

	decEq(t, 1000, aggregation.RevenueInPeriod(orders, domain.PeriodToday, now))
	// Seen from UTC, now is 03:00 on the 15th and the order belongs to the 14th.
	decEq(t, 0, aggregation.RevenueInPeriod(orders, domain.PeriodToday, now.In(time.UTC)))
}

func TestRevenueInPeriod_IsCalendarNotRolling(t *testing.T) {
	// 11 hours ago is still inside a rolling 24h window but on the previous calendar day.
	earlyNow := time.Date(2026, time.March, 15, 1, 0, 0, 0, hcm)
	orders := []domain.Order{order("A", "E1", 1000, domain.PaymentPaid, earlyNow.Add(-11*time.Hour))}
	decEq(t, 0, aggregation.RevenueInPeriod(orders, domain.PeriodToday, earlyNow))
}

func TestExpenseInPeriodAndProfit(t *testing.T) {
	orders := []domain.Order{order("A", "E1", 20000, domain.PaymentPaid, now)}
	expenses := []domain.Expense{
		expense(15000, now),
		expense(30000, now.AddDate(0, 0, -3)),
		expense(99000, now.AddDate(0, -1, 0)),
	}

	decEq(t, 15000, aggregation.ExpenseInPeriod(expenses, domain.PeriodToday, now))
	decEq(t, 45000, aggregation.ExpenseInPeriod(expenses, domain.PeriodMonth, now))
	decEq(t, 5000, aggregation.Profit(orders, expenses, domain.PeriodToday, now))
	decEq(t, -25000, aggregation.Profit(orders, expenses, domain.PeriodMonth, now))

	s := aggregation.Summarize(orders, expenses, domain.PeriodMonth, now)
	decEq(t, 20000, s.Revenue)
	decEq(t, 45000, s.Expense)
	decEq(t, -25000, s.Profit)
}

func TestEmptyInputsYieldZero(t *testing.T) {
	assert.True(t, aggregation.RevenueInPeriod(nil, domain.PeriodToday, now).IsZero())
	assert.True(t, aggregation.ExpenseInPeriod(nil, domain.PeriodMonth, now).IsZero())
	assert.True(t, aggregation.Profit(nil, nil, domain.PeriodMonth, now).IsZero())
	assert.Empty(t, aggregation.RevenueByEmployee(nil))

	for _, b := range []domain.Bucket{domain.BucketDay, domain.BucketMonth} {
		series, err := aggregation.TimeSeries(nil, nil, b, now)
		require.NoError(t, err)
		for _, p := range series {
			assert.True(t, p.Revenue.IsZero())
			assert.True(t, p.Expense.IsZero())
			assert.True(t, p.Profit.IsZero())
		}
	}
}

func TestTimeSeries_Day(t *testing.T) {
	orders := []domain.Order{
		order("A", "E1", 10000, domain.PaymentPaid, now),
		order("B", "E1", 20000, domain.PaymentPaid, now.AddDate(0, 0, -6)),
		order("C", "E1", 40000, domain.PaymentPaid, now.AddDate(0, 0, -7)), // outside the window
		order("D", "E1", 80000, domain.PaymentPending, now),
	}
	expenses := []domain.Expense{expense(3000, now.AddDate(0, 0, -2))}

	series, err := aggregation.TimeSeries(orders, expenses, domain.BucketDay, now)
	require.NoError(t, err)
	require.Len(t, series, 7)

	assert.Equal(t, "09/03", series[0].Label)
	assert.Equal(t, "15/03", series[6].Label)
	assert.Equal(t, 15, series[6].Day)
	assert.Equal(t, 3, series[6].Month)
	assert.Equal(t, 2026, series[6].Year)

	decEq(t, 20000, series[0].Revenue)
	decEq(t, 10000, series[6].Revenue)
	decEq(t, 3000, series[4].Expense)
	decEq(t, -3000, series[4].Profit)
	for i := 1; i < 6; i++ {
		decEq(t, 0, series[i].Revenue)
	}
}

func TestTimeSeries_DayAcrossMonthBoundary(t *testing.T) {
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, hcm)
	series, err := aggregation.TimeSeries(nil, nil, domain.BucketDay, start)
	require.NoError(t, err)
	require.Len(t, series, 7)
	assert.Equal(t, "24/02", series[0].Label)
	assert.Equal(t, "02/03", series[6].Label)
}

func TestTimeSeries_Month(t *testing.T) {
	orders := []domain.Order{
		order("A", "E1", 10000, domain.PaymentPaid, now),
		order("B", "E1", 20000, domain.PaymentPaid, time.Date(2025, time.October, 31, 8, 0, 0, 0, hcm)),
		order("C", "E1", 40000, domain.PaymentPaid, time.Date(2025, time.September, 30, 8, 0, 0, 0, hcm)),
		order("D", "E1", 50000, domain.PaymentPaid, time.Date(2025, time.March, 15, 8, 0, 0, 0, hcm)), // same month, previous year
	}
	expenses := []domain.Expense{expense(7000, time.Date(2026, time.January, 1, 0, 0, 0, 0, hcm))}

	series, err := aggregation.TimeSeries(orders, expenses, domain.BucketMonth, now)
	require.NoError(t, err)
	require.Len(t, series, 6)

	labels := make([]string, 0, len(series))
	for _, p := range series {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"T10", "T11", "T12", "T1", "T2", "T3"}, labels)
	assert.Equal(t, 2025, series[0].Year)
	assert.Equal(t, 2026, series[5].Year)

	decEq(t, 20000, series[0].Revenue)
	decEq(t, 10000, series[5].Revenue)
	decEq(t, 7000, series[3].Expense)
	decEq(t, 0, series[1].Revenue)
	decEq(t, 0, series[1].Expense)
}

func TestTimeSeries_MonthFromEndOfMonth(t *testing.T) {
	end := time.Date(2026, time.August, 31, 12, 0, 0, 0, hcm)
	series, err := aggregation.TimeSeries(nil, nil, domain.BucketMonth, end)
	require.NoError(t, err)
	require.Len(t, series, 6)
	assert.Equal(t, "T3", series[0].Label)
	assert.Equal(t, "T8", series[5].Label)
}

func TestTimeSeries_UnknownBucket(t *testing.T) {
	_, err := aggregation.TimeSeries(nil, nil, domain.Bucket("week"), now)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.FieldErrors(err), "bucket")
}

func TestRevenueByEmployee(t *testing.T) {
	orders := []domain.Order{
		order("A", "E2", 50000, domain.PaymentPaid, now),
		order("B", "E1", 100000, domain.PaymentPaid, now),
		order("C", "E3", 700000, domain.PaymentPending, now),
	}
	got := aggregation.RevenueByEmployee(orders)
	require.Len(t, got, 2)
	assert.Equal(t, "E1", got[0].EmployeeID)
	decEq(t, 100000, got[0].Revenue)
	assert.Equal(t, "E2", got[1].EmployeeID)
	decEq(t, 50000, got[1].Revenue)
}

func TestRevenueByEmployee_TiesKeepFirstSeen(t *testing.T) {
	orders := []domain.Order{
		order("A", "E9", 30000, domain.PaymentPaid, now),
		order("B", "E1", 10000, domain.PaymentPaid, now),
		order("C", "E1", 20000, domain.PaymentPaid, now),
		order("D", "E5", 30000, domain.PaymentPaid, now),
	}
	got := aggregation.RevenueByEmployee(orders)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"E9", "E1", "E5"}, []string{got[0].EmployeeID, got[1].EmployeeID, got[2].EmployeeID})
}

func TestRevenueByPaymentMethod(t *testing.T) {
	cash := order("A", "E1", 10000, domain.PaymentPaid, now)
	cash.PaymentMethod = domain.PaymentCash
	transfer := order("B", "E1", 25000, domain.PaymentPaid, now)
	unpaid := order("C", "E1", 90000, domain.PaymentPending, now)

	got := aggregation.RevenueByPaymentMethod([]domain.Order{cash, transfer, unpaid})
	decEq(t, 10000, got.Cash)
	decEq(t, 25000, got.Transfer)
}

func TestScaleToMax(t *testing.T) {
	assert.Equal(t, 0.0, aggregation.ScaleToMax(decimal.NewFromInt(10), decimal.Zero))
	assert.Equal(t, 0.0, aggregation.ScaleToMax(decimal.Zero, decimal.Zero))
	assert.Equal(t, 0.0, aggregation.ScaleToMax(decimal.NewFromInt(-5), decimal.NewFromInt(10)))
	assert.Equal(t, 0.5, aggregation.ScaleToMax(decimal.NewFromInt(5), decimal.NewFromInt(10)))
	assert.Equal(t, 1.0, aggregation.ScaleToMax(decimal.NewFromInt(20), decimal.NewFromInt(10)))
}

func TestAggregationIsIdempotentAndDoesNotMutate(t *testing.T) {
	orders := []domain.Order{
		order("A", "E1", 100000, domain.PaymentPaid, now),
		order("B", "E2", 50000, domain.PaymentPaid, now.AddDate(0, 0, -1)),
		order("C", "E2", 10000, domain.PaymentPending, now),
	}
	expenses := []domain.Expense{expense(5000, now)}
	ordersBefore := make([]domain.Order, len(orders))
	copy(ordersBefore, orders)

	first, err := aggregation.TimeSeries(orders, expenses, domain.BucketDay, now)
	require.NoError(t, err)
	second, err := aggregation.TimeSeries(orders, expenses, domain.BucketDay, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, aggregation.RevenueByEmployee(orders), aggregation.RevenueByEmployee(orders))
	assert.Equal(t, aggregation.Profit(orders, expenses, domain.PeriodMonth, now), aggregation.Profit(orders, expenses, domain.PeriodMonth, now))
	assert.Equal(t, ordersBefore, orders)
}
