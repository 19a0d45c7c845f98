package collection

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// NewRepositoryProvider loads every collection from kv.
func NewRepositoryProvider(ctx context.Context, kv portsrepo.KeyValueRepositoryFacade, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	orderRepo, err := NewOrderRepository(ctx, kv, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	expenseRepo, err := NewExpenseRepository(ctx, kv, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	presetRepo, err := NewPresetRepository(ctx, kv, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}

	return portsrepo.RepositoryProvider{
		OrderRepo:   orderRepo,
		ExpenseRepo: expenseRepo,
		PresetRepo:  presetRepo,
		SessionRepo: NewSessionRepository(kv, logger),
	}, nil
}
