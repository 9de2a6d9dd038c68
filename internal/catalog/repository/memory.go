package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tenanthq/tenant-api/internal/catalog"
)

// Memory is an in-memory Store used by unit tests and for running the service
// locally without a MongoDB instance (DATABASE_URL=memory). Insertion order is
// the natural order returned by Find.
type Memory struct {
	mu   sync.RWMutex
	seq  int64
	data map[string][]catalog.Record
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]catalog.Record)}
}

func (m *Memory) Insert(ctx context.Context, collection string, doc catalog.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := ""
	if v, ok := doc["_id"]; ok {
		id = catalog.FormatID(v)
	}
	if id == "" {
		m.seq++
		id = fmt.Sprintf("%s_%d", collection, m.seq)
	}

	stored := make(catalog.Record, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored["_id"] = id
	m.data[collection] = append(m.data[collection], stored)
	return id, nil
}

func (m *Memory) Find(ctx context.Context, collection string, limit int64) ([]catalog.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := m.data[collection]
	if limit > 0 && int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	out := make([]catalog.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, catalog.Normalize(d))
	}
	return out, nil
}

func (m *Memory) CollectionNames(ctx context.Context, max int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}
