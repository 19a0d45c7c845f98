package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	"github.com/SscSPs/printshop_pos/internal/repositories/collection"
	"github.com/SscSPs/printshop_pos/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	adminActor = domain.Actor{ID: "admin-1", Name: "Huy", Role: domain.RoleAdmin}
	staffAlice = domain.Actor{ID: "staff-a", Name: "Alice", Role: domain.RoleStaff}
	staffBob   = domain.Actor{ID: "staff-b", Name: "Bob", Role: domain.RoleStaff}
)

// newProvider builds collection repositories over an in-memory key/value store.
func newProvider(kv portsrepo.KeyValueRepositoryFacade) portsrepo.RepositoryProvider {
	repos, err := collection.NewRepositoryProvider(context.Background(), kv, discardLogger)
	if err != nil {
		panic(err)
	}
	return repos
}

func newMemoryProvider() (portsrepo.RepositoryProvider, *memory.KeyValueRepository) {
	kv := memory.NewKeyValueRepository()
	return newProvider(kv), kv
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func paidOrder(id, employeeID string, total int64, createdAt time.Time, method domain.PaymentMethod) domain.Order {
	o := domain.Order{
		ID:            id,
		CreatedAt:     createdAt,
		Customer:      domain.CustomerInfo{Name: "Khách", Phone: "0900"},
		Items:         []domain.OrderItem{{ID: id + "-1", Position: 1, Service: "In", Quantity: 1, UnitPrice: decimal.NewFromInt(total)}},
		PaymentStatus: domain.PaymentPaid,
		WorkStatus:    domain.WorkCompleted,
		PaymentMethod: method,
		EmployeeID:    employeeID,
	}
	o.Recalculate()
	return o
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) OrderExists(ctx context.Context, orderID string) bool {
	args := m.Called(ctx, orderID)
	return args.Bool(0)
}

func (m *MockOrderRepository) PrependOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, orderID string, mutate func(*domain.Order)) (*domain.Order, error) {
	args := m.Called(ctx, orderID, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// --- Mock KeyValueRepository ---
type MockKeyValueRepository struct {
	mock.Mock
}

func (m *MockKeyValueRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueRepository) Save(ctx context.Context, key string, blob []byte) error {
	args := m.Called(ctx, key, blob)
	return args.Error(0)
}

func (m *MockKeyValueRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Mock gateways ---
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(ctx context.Context, inv domain.Invoice) ([]byte, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}

type MockOrderTextParser struct {
	mock.Mock
}

func (m *MockOrderTextParser) Parse(ctx context.Context, text string) ([]domain.ParsedItem, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParsedItem), args.Error(1)
}

type MockQRImageFetcher struct {
	mock.Mock
}

func (m *MockQRImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// stubQR builds deterministic payment links.
type stubQR struct{}

func (stubQR) PaymentURL(amount decimal.Decimal, description string) string {
	return "qr://" + description + "/" + amount.String()
}
