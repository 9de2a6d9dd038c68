package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), FormatID(oid))
	assert.Equal(t, "plain", FormatID("plain"))
	assert.Equal(t, "42", FormatID(42))
}

func TestNormalizeRendersIDOnly(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := Record{
		"_id":        oid,
		"first_name": "Ada",
		"bedrooms":   3,
		"tags":       []string{"a", "b"},
	}

	got := Normalize(doc)
	assert.Equal(t, oid.Hex(), got["_id"])
	assert.Equal(t, "Ada", got["first_name"])
	assert.Equal(t, 3, got["bedrooms"])
	assert.Equal(t, []string{"a", "b"}, got["tags"])

	// the input document is left untouched
	assert.Equal(t, oid, doc["_id"])
}
