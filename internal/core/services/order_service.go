package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/SscSPs/printshop_pos/internal/utils"
	"github.com/SscSPs/printshop_pos/internal/utils/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	orderIDPrefix = "NB-"
	// Collisions tolerated at one id width before another digit is added.
	orderIDAttemptsPerWidth = 20
)

// Clock returns the current time.
type Clock func() time.Time

// IDGenerator returns a candidate order id for the given digit width.
type IDGenerator func(digits int) (string, error)

// RandomOrderID returns "NB-" followed by a random number with the given digit count.
func RandomOrderID(digits int) (string, error) {
	lo := int64(1)
	for i := 1; i < digits; i++ {
		lo *= 10
	}
	n, err := utils.RandomIntInRange(lo, lo*10-1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", orderIDPrefix, n), nil
}

// orderService implements the OrderSvcFacade interface
type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	validate  *validator.Validate
	now       Clock
	newID     IDGenerator
	metrics   *metrics.Metrics
}

// OrderServiceOption is a function that configures an orderService
type OrderServiceOption func(*orderService)

// WithOrderClock replaces the wall clock used for createdAt.
func WithOrderClock(now Clock) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

// WithOrderIDGenerator replaces the random order id source.
func WithOrderIDGenerator(gen IDGenerator) OrderServiceOption {
	return func(s *orderService) {
		s.newID = gen
	}
}

// WithOrderMetrics records order counters.
func WithOrderMetrics(m *metrics.Metrics) OrderServiceOption {
	return func(s *orderService) {
		s.metrics = m
	}
}

// NewOrderService creates a new order service with the given options
func NewOrderService(repo portsrepo.OrderRepositoryFacade, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		orderRepo: repo,
		validate:  validation.New(),
		now:       time.Now,
		newID:     RandomOrderID,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder validates the request and stores a new PENDING / NOT_STARTED order.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actor domain.Actor) (*domain.Order, error) {
	req = normalizeOrderRequest(req)

	if err := s.validateOrderRequest(req); err != nil {
		s.LogDebug(ctx, "Order request rejected", slog.String("error", err.Error()))
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = domain.PaymentTransfer
	}

	order := domain.Order{
		CreatedAt: s.now().UTC().Round(0),
		Customer: domain.CustomerInfo{
			Name:           req.Customer.Name,
			Phone:          req.Customer.Phone,
			Address:        req.Customer.Address,
			SocialLink:     req.Customer.SocialLink,
			CompanyName:    req.Customer.CompanyName,
			TaxCode:        req.Customer.TaxCode,
			CompanyAddress: req.Customer.CompanyAddress,
			BuyerName:      req.Customer.BuyerName,
		},
		Items:         make([]domain.OrderItem, 0, len(req.Items)),
		HasVAT:        req.HasVAT,
		PaymentStatus: domain.PaymentPending,
		WorkStatus:    domain.WorkNotStarted,
		PaymentMethod: method,
		EmployeeID:    actor.ID,
	}
	for i, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ID:        uuid.NewString(),
			Position:  i + 1,
			Service:   item.Service,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Note:      item.Note,
		})
	}
	order.Recalculate()

	if err := s.storeWithNewID(ctx, &order); err != nil {
		return nil, err
	}

	s.metrics.OrderCreated(string(order.PaymentMethod), order.HasVAT)
	s.LogInfo(ctx, "Order created",
		slog.String("order_id", order.ID),
		slog.String("total", order.Total.String()),
		slog.Int("items", len(order.Items)))
	return &order, nil
}

// normalizeOrderRequest trims text fields and drops lines without a service name.
func normalizeOrderRequest(req dto.CreateOrderRequest) dto.CreateOrderRequest {
	c := &req.Customer
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.SocialLink = strings.TrimSpace(c.SocialLink)
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.TaxCode = strings.TrimSpace(c.TaxCode)
	c.CompanyAddress = strings.TrimSpace(c.CompanyAddress)
	c.BuyerName = strings.TrimSpace(c.BuyerName)

	items := make([]dto.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		item.Service = strings.TrimSpace(item.Service)
		if item.Service == "" {
			continue
		}
		item.Note = strings.TrimSpace(item.Note)
		items = append(items, item)
	}
	req.Items = items
	req.PaymentMethod = domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(req.PaymentMethod))))
	return req
}

func (s *orderService) validateOrderRequest(req dto.CreateOrderRequest) error {
	fields := map[string]string{}
	if err := validation.ToAppError(s.validate.Struct(req)); err != nil {
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for k, v := range verr.Fields {
			fields[k] = v
		}
	}
	if req.HasVAT {
		if req.Customer.CompanyName == "" {
			fields["customer.companyName"] = "is required for a VAT invoice"
		}
		if req.Customer.TaxCode == "" {
			fields["customer.taxCode"] = "is required for a VAT invoice"
		}
		if req.Customer.CompanyAddress == "" {
			fields["customer.companyAddress"] = "is required for a VAT invoice"
		}
	}
	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		fields["paymentMethod"] = "must be one of: CASH TRANSFER"
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

// storeWithNewID assigns an unused id to order and stores it. Ids are drawn until
// the store accepts one, widening the number after repeated collisions.
func (s *orderService) storeWithNewID(ctx context.Context, order *domain.Order) error {
	for digits := 4; digits <= 9; digits++ {
		for attempt := 0; attempt < orderIDAttemptsPerWidth; attempt++ {
			id, err := s.newID(digits)
			if err != nil {
				s.LogError(ctx, err, "Failed to generate order id")
				return err
			}
			if s.orderRepo.OrderExists(ctx, id) {
				continue
			}
			order.ID = id
			err = s.orderRepo.PrependOrder(ctx, *order)
			if errors.Is(err, apperrors.ErrConflict) {
				s.LogDebug(ctx, "Order id taken concurrently, drawing again", slog.String("order_id", id))
				continue
			}
			if err != nil {
				s.LogError(ctx, err, "Failed to save order", slog.String("order_id", id))
				return fmt.Errorf("failed to save order: %w", err)
			}
			return nil
		}
		s.LogDebug(ctx, "Order id space crowded, widening", slog.Int("digits", digits+1))
	}
	err := errors.New("could not find an unused order id")
	s.LogError(ctx, err, "Failed to generate order id")
	return err
}

// GetOrder retrieves an order visible to the actor.
func (s *orderService) GetOrder(ctx context.Context, orderID string, actor domain.Actor) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actor, order.EmployeeID); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the orders visible to the actor, most recent first.
func (s *orderService) ListOrders(ctx context.Context, actor domain.Actor) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, err
	}
	return VisibleOrders(orders, actor), nil
}

// VisibleOrders keeps the orders the actor may see.
func VisibleOrders(orders []domain.Order, actor domain.Actor) []domain.Order {
	if actor.IsAdmin() {
		return orders
	}
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if actor.CanSee(o.EmployeeID) {
			out = append(out, o)
		}
	}
	return out
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, actor domain.Actor) (*domain.Order, bool, error) {
	if !status.Valid() {
		return nil, false, apperrors.NewValidationError(map[string]string{"paymentStatus": "must be one of: PENDING PAID CANCELLED"})
	}
	return s.updateOrder(ctx, "payment_status", orderID, actor, func(o *domain.Order) {
		o.PaymentStatus = status
	})
}

func (s *orderService) UpdateWorkStatus(ctx context.Context, orderID string, status domain.WorkStatus, actor domain.Actor) (*domain.Order, bool, error) {
	if !status.Valid() {
		return nil, false, apperrors.NewValidationError(map[string]string{"workStatus": "must be one of: NOT_STARTED COMPLETED CANCELLED"})
	}
	return s.updateOrder(ctx, "work_status", orderID, actor, func(o *domain.Order) {
		o.WorkStatus = status
	})
}

func (s *orderService) UpdatePaymentMethod(ctx context.Context, orderID string, method domain.PaymentMethod, actor domain.Actor) (*domain.Order, bool, error) {
	if !method.Valid() {
		return nil, false, apperrors.NewValidationError(map[string]string{"paymentMethod": "must be one of: CASH TRANSFER"})
	}
	return s.updateOrder(ctx, "payment_method", orderID, actor, func(o *domain.Order) {
		o.PaymentMethod = method
	})
}

// updateOrder applies one field change. An unknown id is reported as not applied.
func (s *orderService) updateOrder(ctx context.Context, field, orderID string, actor domain.Actor, mutate func(*domain.Order)) (*domain.Order, bool, error) {
	current, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Status update ignored for unknown order", slog.String("order_id", orderID), slog.String("field", field))
		s.metrics.StatusUpdated(field, false)
		return nil, false, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find order", slog.String("order_id", orderID))
		return nil, false, err
	}
	if err := s.AuthorizeOwner(ctx, actor, current.EmployeeID); err != nil {
		return nil, false, err
	}

	updated, err := s.orderRepo.UpdateOrder(ctx, orderID, mutate)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.metrics.StatusUpdated(field, false)
		return nil, false, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update order", slog.String("order_id", orderID), slog.String("field", field))
		return nil, false, fmt.Errorf("failed to update order: %w", err)
	}

	s.metrics.StatusUpdated(field, true)
	s.LogInfo(ctx, "Order updated", slog.String("order_id", orderID), slog.String("field", field))
	return updated, true, nil
}
