package repository

import (
	"context"

	"github.com/tenanthq/tenant-api/internal/catalog"
)

// Store abstracts the document database: one bucket of untyped records per
// collection name, insert-one and find-many only. Implementations must render
// record identifiers as plain strings.
type Store interface {
	// Insert stores doc in the named collection and returns the assigned id.
	Insert(ctx context.Context, collection string, doc catalog.Record) (string, error)
	// Find returns up to limit records from the named collection in natural
	// store order. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, limit int64) ([]catalog.Record, error)
	// CollectionNames lists collections present in the store, truncated to max
	// when max > 0.
	CollectionNames(ctx context.Context, max int) ([]string, error)
	// Ping verifies the store connection.
	Ping(ctx context.Context) error
}
