package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCoversAllTypes(t *testing.T) {
	names := TypeNames()
	require.Equal(t, []string{"Tenant", "Owner", "Property", "Lease", "Sale", "Expense", "Document"}, names)

	for _, name := range names {
		s, ok := Lookup(name)
		require.True(t, ok, "schema missing for %s", name)
		assert.Equal(t, name, s.Title)
		assert.Equal(t, "object", s.Type)
		assert.NotEmpty(t, s.Properties)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	_, ok := Lookup("tenant")
	assert.False(t, ok, "lowercase name must not resolve to a type")
	_, ok = Lookup("Tenant")
	assert.True(t, ok)
	_, ok = Lookup("Unknown")
	assert.False(t, ok)
}

func TestCollectionsAreLowercasedTypeNames(t *testing.T) {
	require.Equal(t,
		[]string{"tenant", "owner", "property", "lease", "sale", "expense", "document"},
		Collections())

	for _, c := range Collections() {
		assert.True(t, IsCollection(c), "collection %q should be allow-listed", c)
	}
	assert.False(t, IsCollection("Tenant"), "allow-list matches lowercase only")
	assert.False(t, IsCollection("users"))
	assert.False(t, IsCollection(""))
}

func TestRequiredFields(t *testing.T) {
	cases := map[string][]string{
		"Tenant":   {"first_name", "last_name"},
		"Owner":    {"first_name", "last_name"},
		"Property": {"title", "address"},
		"Lease":    {"tenant_id", "property_id", "start_date", "monthly_rent"},
		"Sale":     {"property_id", "buyer_name", "price"},
		"Expense":  {"amount", "expense_date"},
		"Document": {"title"},
	}
	for name, want := range cases {
		s, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, want, s.Required, "required fields for %s", name)
	}
}

func TestPropertyTypeEnum(t *testing.T) {
	s, ok := Lookup("Property")
	require.True(t, ok)
	typ := s.Properties["type"]
	assert.Equal(t,
		[]string{"apartment", "house", "condo", "land", "office", "retail", "industrial", "other"},
		typ.Enum)
	require.NotNil(t, typ.Default)
	assert.Equal(t, "apartment", *typ.Default)
}

func TestSchemaSerializesBoundsAndDefaults(t *testing.T) {
	s, ok := Lookup("Expense")
	require.True(t, ok)
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	props := decoded["properties"].(map[string]any)

	paid := props["paid"].(map[string]any)
	assert.Equal(t, false, paid["default"], "zero-valued defaults must survive serialization")

	amount := props["amount"].(map[string]any)
	assert.Equal(t, float64(0), amount["minimum"])

	category := props["category"].(map[string]any)
	assert.Len(t, category["enum"], 6)
}

func TestDocumentTagsAreStringArray(t *testing.T) {
	s, ok := Lookup("Document")
	require.True(t, ok)
	tags := s.Properties["tags"]
	assert.Equal(t, "array", tags.Type)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "string", tags.Items.Type)

	related := s.Properties["related_type"]
	assert.Equal(t,
		[]string{"tenant", "owner", "property", "lease", "sale", "expense", "general"},
		related.Enum)
}
