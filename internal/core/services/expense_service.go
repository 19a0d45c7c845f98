package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/SscSPs/printshop_pos/internal/utils/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	validate    *validator.Validate
	now         Clock
	metrics     *metrics.Metrics
}

// ExpenseServiceOption is a function that configures an expenseService
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock replaces the clock used when no date is given.
func WithExpenseClock(now Clock) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// WithExpenseMetrics records expense counters.
func WithExpenseMetrics(m *metrics.Metrics) ExpenseServiceOption {
	return func(s *expenseService) {
		s.metrics = m
	}
}

func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: repo,
		validate:    validation.New(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	req.Category = strings.TrimSpace(req.Category)
	req.Note = strings.TrimSpace(req.Note)
	if err := validation.ToAppError(s.validate.Struct(req)); err != nil {
		s.LogDebug(ctx, "Expense request rejected", slog.String("error", err.Error()))
		return nil, err
	}

	date := s.now()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	expense := domain.Expense{
		ID:         uuid.NewString(),
		Date:       date.UTC().Round(0),
		Category:   req.Category,
		Amount:     req.Amount,
		Note:       req.Note,
		EmployeeID: actor.ID,
	}
	if err := s.expenseRepo.PrependExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.metrics.ExpenseCreated()
	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ID),
		slog.String("category", expense.Category),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, actor domain.Actor) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, err
	}
	return VisibleExpenses(expenses, actor), nil
}

// VisibleExpenses keeps the expenses the actor may see.
func VisibleExpenses(expenses []domain.Expense, actor domain.Actor) []domain.Expense {
	if actor.IsAdmin() {
		return expenses
	}
	out := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if actor.CanSee(e.EmployeeID) {
			out = append(out, e)
		}
	}
	return out
}

func (s *expenseService) Categories() []string {
	out := make([]string, len(domain.SuggestedExpenseCategories))
	copy(out, domain.SuggestedExpenseCategories)
	return out
}
