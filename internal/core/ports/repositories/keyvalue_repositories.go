package repositories

import "context"

// Persistence keys. Each key holds one JSON-encoded collection.
const (
	KeySession  = "nb_user"
	KeyOrders   = "nb_orders"
	KeyExpenses = "nb_expenses"
	KeyPresets  = "nb_preset_services"
)

// KeyValueReader defines read operations for persisted blobs
type KeyValueReader interface {
	// Load returns the blob stored under key. found is false when nothing is stored.
	Load(ctx context.Context, key string) (blob []byte, found bool, err error)
}

// KeyValueWriter defines write operations for persisted blobs
type KeyValueWriter interface {
	// Save replaces the blob stored under key. It returns once the write is durable.
	Save(ctx context.Context, key string, blob []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// KeyValueRepositoryFacade combines all key/value repository interfaces
type KeyValueRepositoryFacade interface {
	KeyValueReader
	KeyValueWriter
}
