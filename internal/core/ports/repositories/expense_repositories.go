package repositories

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// ListExpenses returns all expenses, most recent first.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// PrependExpense stores a new expense at the head of the collection.
	PrependExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
