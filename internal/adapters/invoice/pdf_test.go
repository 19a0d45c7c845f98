package invoice

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hóa đơn bán hàng", "Hoa don ban hang"},
		{"ĐÃ THANH TOÁN", "DA THANH TOAN"},
		{"Đóng gáy xoắn", "Dong gay xoan"},
		{"Nguyễn Thị Ưng", "Nguyen Thi Ung"},
		{"In màu A4 - 5.000đ", "In mau A4 - 5.000d"},
		{"plain ascii", "plain ascii"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), tt.in)
	}
}

func sampleInvoice() domain.Invoice {
	order := domain.Order{
		ID:        "NB-1234",
		CreatedAt: time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC),
		Customer: domain.CustomerInfo{
			Name:           "Trần Văn Bình",
			Phone:          "0900000000",
			CompanyName:    "Công ty TNHH Nhân Bản",
			TaxCode:        "0312345678",
			CompanyAddress: "45 Phù Đổng Thiên Vương",
		},
		Items: []domain.OrderItem{
			{ID: "a", Position: 1, Service: "In màu A4", Quantity: 10, UnitPrice: decimal.NewFromInt(5000), Note: "giấy dày"},
			{ID: "b", Position: 2, Service: "Đóng gáy xoắn cho tài liệu rất dài cần được cắt bớt khi in ra hóa đơn", Quantity: 1, UnitPrice: decimal.NewFromInt(15000)},
		},
		HasVAT:        true,
		PaymentStatus: domain.PaymentPending,
		WorkStatus:    domain.WorkNotStarted,
		PaymentMethod: domain.PaymentTransfer,
		EmployeeID:    "E1",
	}
	order.Recalculate()
	return domain.Invoice{
		Store:        domain.StoreInfo{Name: "NHÂN BẢN", Address: "45 Phù Đổng Thiên Vương", Hotline: "0912117191"},
		Order:        order,
		EmployeeName: "Huy",
		PaymentQRURL: "https://img.vietqr.io/image/bank-1-compact.png?amount=70200&addInfo=NB-1234",
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x += 2 {
		img.Set(x, x, color.White)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender(t *testing.T) {
	r := NewRenderer(WithLocation(time.FixedZone("ICT", 7*3600)), WithClock(func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}))

	t.Run("url only", func(t *testing.T) {
		out, err := r.Render(context.Background(), sampleInvoice())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("with QR image", func(t *testing.T) {
		inv := sampleInvoice()
		inv.PaymentQR = pngBytes(t)
		out, err := r.Render(context.Background(), inv)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("unreadable QR image falls back", func(t *testing.T) {
		inv := sampleInvoice()
		inv.PaymentQR = []byte("\x89PNG not really")
		out, err := r.Render(context.Background(), inv)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("cash order without VAT", func(t *testing.T) {
		inv := sampleInvoice()
		inv.Order.HasVAT = false
		inv.Order.PaymentMethod = domain.PaymentCash
		inv.PaymentQRURL = ""
		inv.Order.Recalculate()
		out, err := r.Render(context.Background(), inv)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Render(ctx, sampleInvoice())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestImageType(t *testing.T) {
	assert.Equal(t, "PNG", imageType([]byte("\x89PNG\r\n")))
	assert.Equal(t, "JPG", imageType([]byte("\xff\xd8\xff")))
	assert.Equal(t, "GIF", imageType([]byte("GIF89a")))
}
