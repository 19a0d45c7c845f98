package collection_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
	"github.com/SscSPs/printshop_pos/internal/repositories/collection"
	"github.com/SscSPs/printshop_pos/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

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

func sampleOrder(id string) domain.Order {
	o := domain.Order{
		ID:        id,
		CreatedAt: time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC),
		Customer:  domain.CustomerInfo{Name: "Nguyễn Văn A", Phone: "0900000000"},
		Items: []domain.OrderItem{
			{ID: "i1", Position: 1, Service: "In màu A4", Quantity: 10, UnitPrice: decimal.NewFromInt(5000)},
		},
		HasVAT:        true,
		PaymentStatus: domain.PaymentPending,
		WorkStatus:    domain.WorkNotStarted,
		PaymentMethod: domain.PaymentTransfer,
		EmployeeID:    "E1",
	}
	o.Recalculate()
	return o
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()

	repo, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1001")))
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1002")))

	reloaded, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)

	before, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	after, err := reloaded.ListOrders(ctx)
	require.NoError(t, err)

	require.Len(t, after, 2)
	assert.Equal(t, "NB-1002", after[0].ID, "most recent first")
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.True(t, before[i].CreatedAt.Equal(after[i].CreatedAt))
		assert.Equal(t, before[i].Customer, after[i].Customer)
		assert.True(t, before[i].Total.Equal(after[i].Total))
		assert.True(t, before[i].VAT.Equal(after[i].VAT))
		assert.True(t, before[i].SubTotal.Equal(after[i].SubTotal))
		assert.Equal(t, before[i].PaymentStatus, after[i].PaymentStatus)
		require.Len(t, after[i].Items, 1)
		assert.True(t, before[i].Items[0].UnitPrice.Equal(after[i].Items[0].UnitPrice))
	}
}

func TestOrderRepository_PrependRejectsTakenID(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	repo, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1001")))

	dup := sampleOrder("NB-1001")
	dup.EmployeeID = "E2"
	err = repo.PrependOrder(ctx, dup)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 1, repo.Len())
	stored, err := repo.FindOrderByID(ctx, "NB-1001")
	require.NoError(t, err)
	assert.Equal(t, "E1", stored.EmployeeID)

	reloaded, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
}

func TestOrderRepository_CorruptBlobLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	require.NoError(t, kv.Save(ctx, portsrepo.KeyOrders, []byte(`{not json`)))

	repo, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	backup, found, err := kv.Load(ctx, portsrepo.KeyOrders+".corrupt")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{not json`, string(backup))
}

func TestOrderRepository_NullBlobLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	require.NoError(t, kv.Save(ctx, portsrepo.KeyOrders, []byte(`null`)))

	repo, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)
	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderRepository_LoadErrorIsReturned(t *testing.T) {
	kv := new(MockKeyValueRepository)
	kv.On("Load", mock.Anything, portsrepo.KeyOrders).Return(nil, false, assert.AnError).Once()

	_, err := collection.NewOrderRepository(context.Background(), kv, discard)
	assert.ErrorIs(t, err, assert.AnError)
	kv.AssertExpectations(t)
}

func TestOrderRepository_FailedSaveRollsBack(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKeyValueRepository)
	kv.On("Load", mock.Anything, portsrepo.KeyOrders).Return(nil, false, nil).Once()
	kv.On("Save", mock.Anything, portsrepo.KeyOrders, mock.Anything).Return(nil).Once()

	repo, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1001")))

	kv.On("Save", mock.Anything, portsrepo.KeyOrders, mock.Anything).Return(assert.AnError)

	err = repo.PrependOrder(ctx, sampleOrder("NB-1002"))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, repo.Len())

	_, err = repo.UpdateOrder(ctx, "NB-1001", func(o *domain.Order) { o.PaymentStatus = domain.PaymentPaid })
	assert.ErrorIs(t, err, assert.AnError)

	stored, err := repo.FindOrderByID(ctx, "NB-1001")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, stored.PaymentStatus)
	kv.AssertExpectations(t)
}

func TestOrderRepository_UpdateUnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	kv := new(MockKeyValueRepository)
	kv.On("Load", mock.Anything, portsrepo.KeyOrders).Return(nil, false, nil).Once()

	repo, err := collection.NewOrderRepository(ctx, kv, discard)
	require.NoError(t, err)

	_, err = repo.UpdateOrder(ctx, "NB-0000", func(o *domain.Order) { o.PaymentStatus = domain.PaymentPaid })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	kv.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo, err := collection.NewOrderRepository(ctx, memory.NewKeyValueRepository(), discard)
	require.NoError(t, err)
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1001")))

	listed, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	listed[0].Items[0].Service = "changed"
	listed[0].PaymentStatus = domain.PaymentPaid

	found, err := repo.FindOrderByID(ctx, "NB-1001")
	require.NoError(t, err)
	assert.Equal(t, "In màu A4", found.Items[0].Service)
	assert.Equal(t, domain.PaymentPending, found.PaymentStatus)
	assert.True(t, repo.OrderExists(ctx, "NB-1001"))
	assert.False(t, repo.OrderExists(ctx, "NB-9999"))
}

func TestOrderRepository_UpdateChangesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	repo, err := collection.NewOrderRepository(ctx, memory.NewKeyValueRepository(), discard)
	require.NoError(t, err)
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1001")))
	require.NoError(t, repo.PrependOrder(ctx, sampleOrder("NB-1002")))

	updated, err := repo.UpdateOrder(ctx, "NB-1001", func(o *domain.Order) { o.WorkStatus = domain.WorkCompleted })
	require.NoError(t, err)
	assert.Equal(t, domain.WorkCompleted, updated.WorkStatus)

	other, err := repo.FindOrderByID(ctx, "NB-1002")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkNotStarted, other.WorkStatus)
}

func TestExpenseRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	repo, err := collection.NewExpenseRepository(ctx, kv, discard)
	require.NoError(t, err)

	e := domain.Expense{ID: "x1", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Category: "Mực in", Amount: decimal.NewFromInt(120000), EmployeeID: "E1"}
	require.NoError(t, repo.PrependExpense(ctx, e))

	reloaded, err := collection.NewExpenseRepository(ctx, kv, discard)
	require.NoError(t, err)
	list, err := reloaded.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mực in", list[0].Category)
	assert.True(t, e.Amount.Equal(list[0].Amount))
}

func TestPresetRepository_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	repo, err := collection.NewPresetRepository(ctx, kv, discard)
	require.NoError(t, err)

	presets, err := repo.ListPresets(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, len(domain.DefaultPresetServices()))
	assert.Equal(t, "Photocopy A4", presets[0].Name)

	require.NoError(t, repo.AppendPreset(ctx, domain.PresetService{ID: "p-new", Name: "Scan màu", DefaultPrice: decimal.NewFromInt(3000)}))
	reloaded, err := collection.NewPresetRepository(ctx, kv, discard)
	require.NoError(t, err)
	presets, err = reloaded.ListPresets(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, len(domain.DefaultPresetServices())+1)
	assert.Equal(t, "Scan màu", presets[len(presets)-1].Name)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueRepository()
	repo := collection.NewSessionRepository(kv, discard)

	s, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.SaveSession(ctx, domain.Session{Actor: domain.Actor{ID: "E1", Name: "Lan", Role: domain.RoleStaff}}))
	s, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Lan", s.Name)

	require.NoError(t, kv.Save(ctx, portsrepo.KeySession, []byte(`garbage`)))
	s, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.ClearSession(ctx))
	_, found, err := kv.Load(ctx, portsrepo.KeySession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewRepositoryProvider(t *testing.T) {
	provider, err := collection.NewRepositoryProvider(context.Background(), memory.NewKeyValueRepository(), discard)
	require.NoError(t, err)
	assert.NotNil(t, provider.OrderRepo)
	assert.NotNil(t, provider.ExpenseRepo)
	assert.NotNil(t, provider.PresetRepo)
	assert.NotNil(t, provider.SessionRepo)
}
