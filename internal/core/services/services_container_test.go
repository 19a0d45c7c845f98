package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/printshop_pos/internal/apperrors"
	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/core/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/SscSPs/printshop_pos/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceContainer(t *testing.T) {
	repos, _ := newMemoryProvider()
	cfg := &config.Config{
		JWTSecret:         "container-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		AdminPIN:          "1357",
		ExportDelay:       time.Hour,
		StoreName:         "NHÂN BẢN",
	}

	container, err := services.NewServiceContainer(cfg, repos, services.Gateways{
		Renderer: new(MockInvoiceRenderer),
		Files:    new(MockFileStore),
		QR:       stubQR{},
	}, metrics.New())
	require.NoError(t, err)
	t.Cleanup(container.Export.Close)

	assert.NotNil(t, container.Order)
	assert.NotNil(t, container.Expense)
	assert.NotNil(t, container.Preset)
	assert.NotNil(t, container.Reporting)
	assert.NotNil(t, container.Assistant)

	ctx := context.Background()
	_, err = container.Session.Login(ctx, dto.LoginRequest{EmployeeID: "admin-1", Name: "Huy", Role: domain.RoleAdmin, PIN: "1357"})
	assert.NoError(t, err, "admin PIN is hashed at construction")
	_, err = container.Session.Login(ctx, dto.LoginRequest{EmployeeID: "admin-1", Name: "Huy", Role: domain.RoleAdmin, PIN: "9999"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	assert.Empty(t, container.Assistant.ParseItems(ctx, "photo"))
}
