package services

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/dto"
)

// OrderReaderSvc defines read operations for orders, scoped to the actor.
type OrderReaderSvc interface {
	// GetOrder retrieves an order visible to the actor.
	GetOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error)

	// ListOrders returns the actor's orders (all orders for admins), most recent first.
	ListOrders(ctx context.Context, actor domain.Actor) ([]domain.Order, error)
}

// OrderWriterSvc defines the order lifecycle operations.
//
// The Update methods report applied=false with a nil error when no order has
// the id. Any value of an axis may replace any other value.
type OrderWriterSvc interface {
	// CreateOrder validates the request, assigns id, timestamps and totals, and stores the order.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actor domain.Actor) (*domain.Order, error)

	UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, actor domain.Actor) (*domain.Order, bool, error)
	UpdateWorkStatus(ctx context.Context, orderID string, status domain.WorkStatus, actor domain.Actor) (*domain.Order, bool, error)
	UpdatePaymentMethod(ctx context.Context, orderID string, method domain.PaymentMethod, actor domain.Actor) (*domain.Order, bool, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
