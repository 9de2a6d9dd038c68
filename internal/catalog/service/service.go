package service

import (
	"context"
	"errors"

	"github.com/tenanthq/tenant-api/internal/catalog"
	"github.com/tenanthq/tenant-api/internal/catalog/repository"
	"github.com/tenanthq/tenant-api/internal/schema"
)

var (
	// ErrStoreUnavailable means no document store was configured at startup.
	ErrStoreUnavailable = errors.New("database not configured")
	// ErrUnknownCollection means the requested name is not allow-listed.
	ErrUnknownCollection = errors.New("collection not found")
)

const (
	// DefaultLimit applies when the caller does not supply one.
	DefaultLimit = 25
	// MaxLimit caps caller-supplied limits to bound result sets.
	MaxLimit = 1000
)

// Service is the generic collection gateway: it validates collection names
// against the registry-derived allow-list and forwards to the store. It never
// validates record contents; schemas are descriptive only.
type Service struct {
	store repository.Store
}

// New builds a gateway over the given store. A nil store is valid and makes
// every operation fail with ErrStoreUnavailable, mirroring a process started
// without database configuration.
func New(store repository.Store) *Service {
	return &Service{store: store}
}

// List returns up to limit records from the named collection, identifiers
// rendered as strings. Non-positive limits fall back to DefaultLimit; limits
// above MaxLimit are clamped.
func (s *Service) List(ctx context.Context, collection string, limit int64) ([]catalog.Record, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	if !schema.IsCollection(collection) {
		return nil, ErrUnknownCollection
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.store.Find(ctx, collection, limit)
}

// Create stores payload verbatim in the named collection and returns the
// assigned identifier. Record contents are never validated, the allow-list
// only guards against arbitrary collection creation.
func (s *Service) Create(ctx context.Context, collection string, payload catalog.Record) (string, error) {
	if s.store == nil {
		return "", ErrStoreUnavailable
	}
	if !schema.IsCollection(collection) {
		return "", ErrUnknownCollection
	}
	if payload == nil {
		payload = catalog.Record{}
	}
	return s.store.Insert(ctx, collection, payload)
}

// Store exposes the underlying store; nil when the service runs without one.
// Used by diagnostics and readiness probes.
func (s *Service) Store() repository.Store {
	return s.store
}
