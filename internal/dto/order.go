package dto

import (
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerRequest carries buyer details. Company fields are checked only when hasVat is set.
type CustomerRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address"`
	SocialLink     string `json:"socialLink"`
	CompanyName    string `json:"companyName"`
	TaxCode        string `json:"taxCode"`
	CompanyAddress string `json:"companyAddress"`
	BuyerName      string `json:"buyerName"`
}

// OrderItemRequest is one requested line. Lines with a blank service are ignored.
type OrderItemRequest struct {
	Service   string          `json:"service"`
	Quantity  int             `json:"quantity" validate:"gte=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"gte=0,whole"`
	Note      string          `json:"note"`
}

// CreateOrderRequest defines the data needed to create a new order.
type CreateOrderRequest struct {
	Customer      CustomerRequest      `json:"customer"`
	Items         []OrderItemRequest   `json:"items" validate:"min=1,dive"`
	HasVAT        bool                 `json:"hasVat"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod,omitempty"`
}

// UpdatePaymentStatusRequest changes the payment axis of an order.
type UpdatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required"`
}

// UpdateWorkStatusRequest changes the production axis of an order.
type UpdateWorkStatusRequest struct {
	WorkStatus domain.WorkStatus `json:"workStatus" binding:"required"`
}

// UpdatePaymentMethodRequest changes how an order is paid.
type UpdatePaymentMethodRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	Position  int             `json:"stt"`
	Service   string          `json:"service"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	Note      string          `json:"note"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	ID                 string              `json:"id"`
	CreatedAt          time.Time           `json:"createdAt"`
	Customer           domain.CustomerInfo `json:"customer"`
	Items              []OrderItemResponse `json:"items"`
	SubTotal           decimal.Decimal     `json:"subTotal"`
	VAT                decimal.Decimal     `json:"vat"`
	Total              decimal.Decimal     `json:"total"`
	HasVAT             bool                `json:"hasVat"`
	PaymentStatus      string              `json:"paymentStatus"`
	PaymentStatusLabel string              `json:"paymentStatusLabel"`
	WorkStatus         string              `json:"workStatus"`
	WorkStatusLabel    string              `json:"workStatusLabel"`
	PaymentMethod      string              `json:"paymentMethod"`
	PaymentMethodLabel string              `json:"paymentMethodLabel"`
	EmployeeID         string              `json:"employeeId"`
}

// ListOrdersResponse wraps a list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// StatusUpdateResponse reports whether a status mutation found its order.
type StatusUpdateResponse struct {
	Applied bool           `json:"applied"`
	Order   *OrderResponse `json:"order,omitempty"`
}

// PaymentQRResponse carries the payment QR image URL of an order.
type PaymentQRResponse struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	URL     string          `json:"url"`
}

// ToOrderResponse converts a domain.Order to an OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:        it.ID,
			Position:  it.Position,
			Service:   it.Service,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
			Note:      it.Note,
		}
	}
	return OrderResponse{
		ID:                 o.ID,
		CreatedAt:          o.CreatedAt,
		Customer:           o.Customer,
		Items:              items,
		SubTotal:           o.SubTotal,
		VAT:                o.VAT,
		Total:              o.Total,
		HasVAT:             o.HasVAT,
		PaymentStatus:      string(o.PaymentStatus),
		PaymentStatusLabel: o.PaymentStatus.Label(),
		WorkStatus:         string(o.WorkStatus),
		WorkStatusLabel:    o.WorkStatus.Label(),
		PaymentMethod:      string(o.PaymentMethod),
		PaymentMethodLabel: o.PaymentMethod.Label(),
		EmployeeID:         o.EmployeeID,
	}
}

// ToListOrdersResponse converts a slice of domain.Order to a ListOrdersResponse DTO
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: res}
}
