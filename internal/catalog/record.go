// Package catalog defines the record model shared by the generic collection
// gateway: untyped documents keyed by allow-listed collection names.
package catalog

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is one stored document: field names to JSON-compatible values. The
// gateway never imposes a schema on it; whatever the caller sent is stored
// and returned verbatim, identifier aside.
type Record = map[string]interface{}

// FormatID renders a store-assigned identifier as a plain string, whatever
// the store's native representation is.
func FormatID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}

// Normalize returns a copy of doc with its "_id" rendered as a plain string.
// Every other field passes through unchanged.
func Normalize(doc Record) Record {
	out := make(Record, len(doc))
	for k, v := range doc {
		if k == "_id" {
			out[k] = FormatID(v)
			continue
		}
		out[k] = v
	}
	return out
}
