package filestore

import (
	"context"
	"fmt"

	"github.com/SscSPs/printshop_pos/internal/core/ports/gateways"
)

// Drivers accepted by EXPORT_STORAGE.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Settings selects and configures the export file store.
type Settings struct {
	Driver   string
	LocalDir string
	S3       S3Config
}

// New returns the file store for the configured driver.
func New(ctx context.Context, s Settings) (gateways.FileStore, error) {
	switch s.Driver {
	case "", DriverLocal:
		return NewLocal(s.LocalDir), nil
	case DriverS3:
		return NewS3(ctx, s.S3)
	default:
		return nil, fmt.Errorf("unknown EXPORT_STORAGE: %s", s.Driver)
	}
}
