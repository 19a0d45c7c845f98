package services

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/dto"
)

// ExpenseSvcFacade defines expense operations.
type ExpenseSvcFacade interface {
	// CreateExpense validates and records an expense owned by the actor.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error)

	// ListExpenses returns the actor's expenses (all expenses for admins).
	ListExpenses(ctx context.Context, actor domain.Actor) ([]domain.Expense, error)

	// Categories returns the suggested expense categories.
	Categories() []string
}
