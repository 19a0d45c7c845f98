package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(newViper(nil))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 300*time.Millisecond, cfg.ExportDelay)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.PaymentQREnabled())
	assert.False(t, cfg.AutoExport)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{
		"STORAGE_DRIVER":       " Postgres ",
		"PGSQL_URL":            "postgres://localhost/pos",
		"EXPORT_DELAY":         "1s",
		"AUTO_EXPORT":          true,
		"BANK_ID":              "970436",
		"BANK_ACCOUNT_NO":      "0123456789",
		"CORS_ALLOWED_ORIGINS": "http://a.test, ,http://b.test",
	}))

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, time.Second, cfg.ExportDelay)
	assert.True(t, cfg.AutoExport)
	assert.True(t, cfg.PaymentQREnabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{
		"STORAGE_DRIVER":      "mongo",
		"JWT_EXPIRY_DURATION": "soon",
		"EXPORT_DELAY":        "-5s",
	}))

	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 300*time.Millisecond, cfg.ExportDelay)
}

func TestFromViper_ExportStorage(t *testing.T) {
	cfg := fromViper(newViper(nil))
	assert.Equal(t, "local", cfg.ExportStorage)
	assert.Equal(t, "invoices", cfg.S3Prefix)
	assert.Equal(t, 2.0, cfg.GeminiRatePerSecond)
	assert.Equal(t, 4, cfg.GeminiBurst)

	cfg = fromViper(newViper(map[string]any{"EXPORT_STORAGE": "S3"}))
	assert.Equal(t, "local", cfg.ExportStorage, "s3 without a bucket falls back to local")

	cfg = fromViper(newViper(map[string]any{
		"EXPORT_STORAGE": "s3",
		"S3_BUCKET":      "shop-invoices",
		"S3_REGION":      "ap-southeast-1",
	}))
	assert.Equal(t, "s3", cfg.ExportStorage)
	assert.Equal(t, "shop-invoices", cfg.S3Bucket)

	cfg = fromViper(newViper(map[string]any{"EXPORT_STORAGE": "ftp", "GEMINI_BURST": 0}))
	assert.Equal(t, "local", cfg.ExportStorage)
	assert.Equal(t, 4, cfg.GeminiBurst)
}
