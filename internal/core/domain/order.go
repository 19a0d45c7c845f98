package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VATRate is the fixed value-added tax rate applied when an order requests a VAT invoice.
var VATRate = decimal.New(8, -2)

// PaymentStatus is the payment axis of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// WorkStatus is the production axis of an order, independent of PaymentStatus.
type WorkStatus string

const (
	WorkNotStarted WorkStatus = "NOT_STARTED"
	WorkCompleted  WorkStatus = "COMPLETED"
	WorkCancelled  WorkStatus = "CANCELLED"
)

// PaymentMethod decides whether the invoice carries a payment QR code.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentPending:   "CHỜ THANH TOÁN",
	PaymentPaid:      "ĐÃ THANH TOÁN",
	PaymentCancelled: "HỦY ĐƠN",
}

var workStatusLabels = map[WorkStatus]string{
	WorkNotStarted: "CHƯA HOÀN THÀNH",
	WorkCompleted:  "ĐÃ HOÀN THÀNH",
	WorkCancelled:  "HỦY",
}

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentCash:     "TIỀN MẶT",
	PaymentTransfer: "CHUYỂN KHOẢN",
}

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

// Label returns the display label printed on invoices.
func (s PaymentStatus) Label() string { return paymentStatusLabels[s] }

// Valid reports whether s is one of the known work statuses.
func (s WorkStatus) Valid() bool {
	_, ok := workStatusLabels[s]
	return ok
}

// Label returns the display label printed on invoices.
func (s WorkStatus) Label() string { return workStatusLabels[s] }

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label returns the display label printed on invoices.
func (m PaymentMethod) Label() string { return paymentMethodLabels[m] }

// CustomerInfo identifies the buyer. The company fields are only required for VAT invoices.
type CustomerInfo struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address,omitempty"`
	SocialLink     string `json:"socialLink,omitempty"` // Zalo/Facebook
	CompanyName    string `json:"companyName,omitempty"`
	TaxCode        string `json:"taxCode,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	BuyerName      string `json:"buyerName,omitempty"`
}

// OrderItem is one service line on an order.
type OrderItem struct {
	ID        string          `json:"id"`
	Position  int             `json:"stt"` // 1..N display order
	Service   string          `json:"service"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Note      string          `json:"note"`
}

// LineTotal returns quantity × unit price.
func (it OrderItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Order is one purchase transaction.
// SubTotal, VAT and Total are derived from Items and HasVAT; use Recalculate after changing items.
type Order struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	Customer      CustomerInfo    `json:"customer"`
	Items         []OrderItem     `json:"items"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	VAT           decimal.Decimal `json:"vat"`
	Total         decimal.Decimal `json:"total"`
	HasVAT        bool            `json:"hasVat"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	WorkStatus    WorkStatus      `json:"workStatus"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	EmployeeID    string          `json:"employeeId"`
}

// CalculateVAT returns round(subTotal × VATRate) when hasVAT, otherwise zero.
func CalculateVAT(subTotal decimal.Decimal, hasVAT bool) decimal.Decimal {
	if !hasVAT {
		return decimal.Zero
	}
	return subTotal.Mul(VATRate).Round(0)
}

// Recalculate recomputes SubTotal, VAT and Total from the items.
func (o *Order) Recalculate() {
	subTotal := decimal.Zero
	for _, it := range o.Items {
		subTotal = subTotal.Add(it.LineTotal())
	}
	o.SubTotal = subTotal
	o.VAT = CalculateVAT(subTotal, o.HasVAT)
	o.Total = subTotal.Add(o.VAT)
}

// IsPaid reports whether the order counts toward revenue.
func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentPaid
}

// Clone returns a deep copy so callers never share the Items backing array with the store.
func (o Order) Clone() Order {
	cp := o
	if o.Items != nil {
		cp.Items = make([]OrderItem, len(o.Items))
		copy(cp.Items, o.Items)
	}
	return cp
}
