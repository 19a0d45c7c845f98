package collection

import (
	"context"
	"log/slog"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// ExpenseRepository holds expenses most recent first.
type ExpenseRepository struct {
	expenses *collection[domain.Expense]
}

// NewExpenseRepository loads the expense collection from kv.
func NewExpenseRepository(ctx context.Context, kv portsrepo.KeyValueRepositoryFacade, logger *slog.Logger) (*ExpenseRepository, error) {
	c, _, err := loadCollection(ctx, kv, portsrepo.KeyExpenses, domain.Expense.Clone, logger)
	if err != nil {
		return nil, err
	}
	return &ExpenseRepository{expenses: c}, nil
}

var _ portsrepo.ExpenseRepositoryFacade = (*ExpenseRepository)(nil)

// ListExpenses returns copies of all expenses, most recent first.
func (r *ExpenseRepository) ListExpenses(_ context.Context) ([]domain.Expense, error) {
	return r.expenses.snapshot(), nil
}

// PrependExpense stores a new expense at the head of the collection.
func (r *ExpenseRepository) PrependExpense(ctx context.Context, expense domain.Expense) error {
	return r.expenses.prepend(ctx, expense)
}
