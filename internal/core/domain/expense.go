package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SuggestedExpenseCategories is the short list offered when recording an expense.
// Category stays free text; these are only suggestions.
var SuggestedExpenseCategories = []string{
	"Giấy in",
	"Mực in",
	"Điện nước",
	"Mặt bằng",
	"Lương nhân viên",
	"Sửa chữa máy",
	"Khác",
}

// Expense is a discretionary cost entry.
type Expense struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"` // Always positive
	Note       string          `json:"note"`
	EmployeeID string          `json:"employeeId"`
}

// Clone returns a copy of the expense.
func (e Expense) Clone() Expense { return e }
