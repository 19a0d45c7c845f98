package dto

import (
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date     *time.Time      `json:"date"` // Defaults to now
	Category string          `json:"category" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"gt=0,whole"`
	Note     string          `json:"note"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	EmployeeID string          `json:"employeeId"`
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseCategoriesResponse lists the suggested categories.
type ExpenseCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		Date:       e.Date,
		Category:   e.Category,
		Amount:     e.Amount,
		Note:       e.Note,
		EmployeeID: e.EmployeeID,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to a ListExpensesResponse DTO
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: res}
}
