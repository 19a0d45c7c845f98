package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// OrderRepository holds orders most recent first.
type OrderRepository struct {
	orders *collection[domain.Order]
}

// NewOrderRepository loads the order collection from kv.
func NewOrderRepository(ctx context.Context, kv portsrepo.KeyValueRepositoryFacade, logger *slog.Logger) (*OrderRepository, error) {
	c, _, err := loadCollection(ctx, kv, portsrepo.KeyOrders, domain.Order.Clone, logger)
	if err != nil {
		return nil, err
	}
	return &OrderRepository{orders: c}, nil
}

var _ portsrepo.OrderRepositoryFacade = (*OrderRepository)(nil)

func byOrderID(id string) func(domain.Order) bool {
	return func(o domain.Order) bool { return o.ID == id }
}

// FindOrderByID retrieves a copy of the order with the id.
func (r *OrderRepository) FindOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	o, ok := r.orders.find(byOrderID(orderID))
	if !ok {
		return nil, fmt.Errorf("order %s: %w", orderID, apperrors.ErrNotFound)
	}
	return &o, nil
}

// ListOrders returns copies of all orders, most recent first.
func (r *OrderRepository) ListOrders(_ context.Context) ([]domain.Order, error) {
	return r.orders.snapshot(), nil
}

// OrderExists reports whether an order with the id is stored.
func (r *OrderRepository) OrderExists(_ context.Context, orderID string) bool {
	_, ok := r.orders.find(byOrderID(orderID))
	return ok
}

// PrependOrder stores a new order at the head of the collection.
// It returns apperrors.ErrConflict when the id is already taken.
func (r *OrderRepository) PrependOrder(ctx context.Context, order domain.Order) error {
	stored, err := r.orders.prependUnless(ctx, order, byOrderID(order.ID))
	if err != nil {
		return err
	}
	if !stored {
		return fmt.Errorf("order %s: %w", order.ID, apperrors.ErrConflict)
	}
	return nil
}

// UpdateOrder applies mutate to the stored order and persists the result.
func (r *OrderRepository) UpdateOrder(ctx context.Context, orderID string, mutate func(*domain.Order)) (*domain.Order, error) {
	updated, found, err := r.orders.update(ctx, byOrderID(orderID), mutate)
	if !found {
		return nil, fmt.Errorf("order %s: %w", orderID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int { return r.orders.size() }
