package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tenanthq/tenant-api/internal/catalog"
)

func TestMemoryInsertAndFind(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "tenant", catalog.Record{"first_name": "Ada", "last_name": "Lovelace"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	records, err := m.Find(ctx, "tenant", 25)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, id, records[0]["_id"])
	require.Equal(t, "Ada", records[0]["first_name"])
}

func TestMemoryCollectionsAreIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Insert(ctx, "tenant", catalog.Record{"first_name": "Ada"})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "owner", catalog.Record{"first_name": "Grace"})
	require.NoError(t, err)

	tenants, err := m.Find(ctx, "tenant", 0)
	require.NoError(t, err)
	require.Len(t, tenants, 1)

	owners, err := m.Find(ctx, "owner", 0)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	require.Equal(t, "Grace", owners[0]["first_name"])

	empty, err := m.Find(ctx, "lease", 0)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMemoryFindHonorsLimit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := m.Insert(ctx, "expense", catalog.Record{"amount": i})
		require.NoError(t, err)
	}

	records, err := m.Find(ctx, "expense", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	all, err := m.Find(ctx, "expense", 0)
	require.NoError(t, err)
	require.Len(t, all, 10)
}

func TestMemoryHonorsCallerID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "sale", catalog.Record{"_id": "custom-id", "price": 100})
	require.NoError(t, err)
	require.Equal(t, "custom-id", id)

	records, err := m.Find(ctx, "sale", 1)
	require.NoError(t, err)
	require.Equal(t, "custom-id", records[0]["_id"])
}

func TestMemoryCollectionNames(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, c := range []string{"tenant", "owner", "property"} {
		_, err := m.Insert(ctx, c, catalog.Record{"x": 1})
		require.NoError(t, err)
	}

	names, err := m.CollectionNames(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"owner", "property", "tenant"}, names)

	capped, err := m.CollectionNames(ctx, 2)
	require.NoError(t, err)
	require.Len(t, capped, 2)
}
