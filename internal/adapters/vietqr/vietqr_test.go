package vietqr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccount = domain.BankAccount{
	BankID:      "vietinbank",
	AccountNo:   "100000713992",
	AccountName: "NGUYEN VAN A",
	Template:    "compact",
}

func TestPaymentURL(t *testing.T) {
	g := New(testAccount)

	got := g.PaymentURL(decimal.NewFromInt(54000), "NB-1234")
	assert.Equal(t,
		"https://img.vietqr.io/image/vietinbank-100000713992-compact.png?amount=54000&addInfo=NB-1234&accountName=NGUYEN%20VAN%20A",
		got)
}

func TestPaymentURL_EscapesAndDefaults(t *testing.T) {
	acct := testAccount
	acct.Template = ""
	g := New(acct, WithBaseURL("http://qr.local/"))

	got := g.PaymentURL(decimal.RequireFromString("1000.6"), "đơn & phí")
	assert.Equal(t,
		"http://qr.local/image/vietinbank-100000713992-compact.png?amount=1001&addInfo=%C4%91%C6%A1n%20%26%20ph%C3%AD&accountName=NGUYEN%20VAN%20A",
		got)
}

func TestFetchImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		case "/html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	g := New(testAccount, WithHTTPClient(srv.Client()))

	img, err := g.FetchImage(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), img)

	_, err = g.FetchImage(context.Background(), srv.URL+"/html")
	assert.ErrorContains(t, err, "content type")

	_, err = g.FetchImage(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "unexpected status 404")
}
