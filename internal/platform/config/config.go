package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string
	LogFormat    string

	StorageDriver string
	SQLitePath    string
	DatabaseURL   string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminPIN          string

	GeminiAPIKey string
	GeminiModel  string

	ExportDir     string
	ExportDelay   time.Duration
	AutoExport    bool
	ExportStorage string // "local" or "s3"

	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string

	GeminiRatePerSecond float64
	GeminiBurst         int

	StoreName    string
	StoreAddress string
	StoreHotline string

	BankID          string
	BankAccountNo   string
	BankAccountName string
	QRTemplate      string

	RateLimit          string // ulule formatted rate, e.g. "120-M"
	CORSAllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("SQLITE_PATH", "data/printshop.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "printshop-pos")
	v.SetDefault("ADMIN_PIN", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("EXPORT_DIR", "exports")
	v.SetDefault("EXPORT_DELAY", "300ms")
	v.SetDefault("AUTO_EXPORT", false)
	v.SetDefault("EXPORT_STORAGE", "local")
	v.SetDefault("S3_REGION", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_PREFIX", "invoices")
	v.SetDefault("S3_PUBLIC_BASE_URL", "")
	v.SetDefault("GEMINI_RATE_PER_SECOND", 2.0)
	v.SetDefault("GEMINI_BURST", 4)
	v.SetDefault("STORE_NAME", "NHÂN BẢN")
	v.SetDefault("STORE_ADDRESS", "")
	v.SetDefault("STORE_HOTLINE", "")
	v.SetDefault("BANK_ID", "")
	v.SetDefault("BANK_ACCOUNT_NO", "")
	v.SetDefault("BANK_ACCOUNT_NAME", "")
	v.SetDefault("QR_TEMPLATE", "compact")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		StorageDriver:   strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		AdminPIN:        v.GetString("ADMIN_PIN"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		GeminiModel:     v.GetString("GEMINI_MODEL"),
		ExportDir:       v.GetString("EXPORT_DIR"),
		AutoExport:      v.GetBool("AUTO_EXPORT"),
		ExportStorage:   strings.ToLower(strings.TrimSpace(v.GetString("EXPORT_STORAGE"))),
		S3Region:        v.GetString("S3_REGION"),
		S3Bucket:        v.GetString("S3_BUCKET"),
		S3Prefix:        v.GetString("S3_PREFIX"),
		S3PublicBaseURL: v.GetString("S3_PUBLIC_BASE_URL"),
		GeminiBurst:     v.GetInt("GEMINI_BURST"),
		StoreName:       v.GetString("STORE_NAME"),
		StoreAddress:    v.GetString("STORE_ADDRESS"),
		StoreHotline:    v.GetString("STORE_HOTLINE"),
		BankID:          v.GetString("BANK_ID"),
		BankAccountNo:   v.GetString("BANK_ACCOUNT_NO"),
		BankAccountName: v.GetString("BANK_ACCOUNT_NAME"),
		QRTemplate:      v.GetString("QR_TEMPLATE"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		log.Printf("Warning: Unknown STORAGE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StorageDriver, StorageSQLite)
		cfg.StorageDriver = StorageSQLite
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOr(v, "JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.ExportDelay = durationOr(v, "EXPORT_DELAY", 300*time.Millisecond)

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "printshop-pos"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	if cfg.AdminPIN == "" {
		log.Println("Warning: ADMIN_PIN not set. Admin sign-in is disabled.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. The order assistant will return no suggestions.")
	}
	cfg.GeminiRatePerSecond = v.GetFloat64("GEMINI_RATE_PER_SECOND")
	if cfg.GeminiRatePerSecond <= 0 || cfg.GeminiBurst < 1 {
		log.Println("Warning: Invalid GEMINI_RATE_PER_SECOND or GEMINI_BURST. Defaulting to 2/s, burst 4.")
		cfg.GeminiRatePerSecond, cfg.GeminiBurst = 2, 4
	}

	switch cfg.ExportStorage {
	case "local":
	case "s3":
		if cfg.S3Bucket == "" {
			log.Println("Warning: EXPORT_STORAGE is s3 but S3_BUCKET is not set. Defaulting to local.")
			cfg.ExportStorage = "local"
		}
	default:
		log.Printf("Warning: Unknown EXPORT_STORAGE ('%s'). Defaulting to local.\n", cfg.ExportStorage)
		cfg.ExportStorage = "local"
	}

	if cfg.BankID == "" || cfg.BankAccountNo == "" {
		log.Println("Warning: BANK_ID or BANK_ACCOUNT_NO not set. Payment QR codes will not be generated.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

// PaymentQREnabled reports whether bank details for transfer QR codes are configured.
func (c *Config) PaymentQREnabled() bool {
	return c.BankID != "" && c.BankAccountNo != ""
}
