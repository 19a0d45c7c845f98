package repositories

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
)

// OrderReader defines read operations for order data.
// Returned orders are copies; changing them does not affect the store.
type OrderReader interface {
	// FindOrderByID retrieves an order by id, or apperrors.ErrNotFound.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders returns all orders, most recent first.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// OrderExists reports whether an order with the id is stored.
	OrderExists(ctx context.Context, orderID string) bool
}

// OrderWriter defines write operations for order data.
// Writes are persisted before they return; a failed write leaves the store unchanged.
type OrderWriter interface {
	// PrependOrder stores a new order at the head of the collection,
	// or returns apperrors.ErrConflict when the id is already taken.
	PrependOrder(ctx context.Context, order domain.Order) error

	// UpdateOrder applies mutate to the stored order and persists the result.
	// It returns apperrors.ErrNotFound when no order has the id.
	UpdateOrder(ctx context.Context, orderID string, mutate func(*domain.Order)) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
