// Package schema holds the structural schemas for the seven entity types the
// API manages. Each schema describes one store collection; the collection name
// is the lowercase of the type name (Tenant -> "tenant"). The schemas are
// descriptive only: they feed /schema for client-side form generation and are
// never enforced on the write path.
package schema

import "strings"

// Property describes a single field in the JSON-Schema vocabulary subset the
// frontend form generator understands.
type Property struct {
	Type        string    `json:"type,omitempty"`
	Format      string    `json:"format,omitempty"`
	Description string    `json:"description,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Default     *any      `json:"default,omitempty"`
}

// Schema is a JSON-Schema-like structural description of one entity type.
type Schema struct {
	Title      string              `json:"title"`
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// typeNames lists the entity types in canonical order. The storage allow-list
// is derived from it, so adding a type here both publishes its schema and
// opens its collection.
var typeNames = []string{"Tenant", "Owner", "Property", "Lease", "Sale", "Expense", "Document"}

var registry = map[string]Schema{
	"Tenant": {
		Title: "Tenant",
		Type:  "object",
		Properties: map[string]Property{
			"first_name":          {Type: "string", Description: "Tenant first name"},
			"last_name":           {Type: "string", Description: "Tenant last name"},
			"email":               {Type: "string", Format: "email", Description: "Contact email"},
			"phone":               {Type: "string", Description: "Contact phone"},
			"current_property_id": {Type: "string", Description: "Linked property ID if any"},
			"notes":               {Type: "string", Description: "Additional notes"},
		},
		Required: []string{"first_name", "last_name"},
	},
	"Owner": {
		Title: "Owner",
		Type:  "object",
		Properties: map[string]Property{
			"first_name": {Type: "string", Description: "Owner first name"},
			"last_name":  {Type: "string", Description: "Owner last name"},
			"email":      {Type: "string", Format: "email", Description: "Contact email"},
			"phone":      {Type: "string", Description: "Contact phone"},
			"company":    {Type: "string", Description: "Company name if applicable"},
		},
		Required: []string{"first_name", "last_name"},
	},
	"Property": {
		Title: "Property",
		Type:  "object",
		Properties: map[string]Property{
			"title":       {Type: "string", Description: "Property title or reference"},
			"address":     {Type: "string", Description: "Full address"},
			"city":        {Type: "string"},
			"state":       {Type: "string"},
			"postal_code": {Type: "string"},
			"country":     {Type: "string"},
			"owner_id":    {Type: "string", Description: "Linked owner ID"},
			"type": {
				Type:    "string",
				Enum:    []string{"apartment", "house", "condo", "land", "office", "retail", "industrial", "other"},
				Default: defaultOf("apartment"),
			},
			"bedrooms":  {Type: "integer", Minimum: minZero()},
			"bathrooms": {Type: "number", Minimum: minZero()},
			"area_sqft": {Type: "number", Minimum: minZero()},
		},
		Required: []string{"title", "address"},
	},
	"Lease": {
		Title: "Lease",
		Type:  "object",
		Properties: map[string]Property{
			"tenant_id":    {Type: "string", Description: "Tenant ID"},
			"property_id":  {Type: "string", Description: "Property ID"},
			"start_date":   {Type: "string", Format: "date"},
			"end_date":     {Type: "string", Format: "date"},
			"monthly_rent": {Type: "number", Minimum: minZero()},
			"deposit":      {Type: "number", Minimum: minZero(), Default: defaultOf(0)},
			"status": {
				Type:    "string",
				Enum:    []string{"active", "pending", "ended"},
				Default: defaultOf("active"),
			},
		},
		Required: []string{"tenant_id", "property_id", "start_date", "monthly_rent"},
	},
	"Sale": {
		Title: "Sale",
		Type:  "object",
		Properties: map[string]Property{
			"property_id":     {Type: "string"},
			"buyer_name":      {Type: "string"},
			"seller_owner_id": {Type: "string"},
			"price":           {Type: "number", Minimum: minZero()},
			"date_closed":     {Type: "string", Format: "date"},
			"status": {
				Type:    "string",
				Enum:    []string{"listed", "under_contract", "sold", "cancelled"},
				Default: defaultOf("listed"),
			},
		},
		Required: []string{"property_id", "buyer_name", "price"},
	},
	"Expense": {
		Title: "Expense",
		Type:  "object",
		Properties: map[string]Property{
			"property_id": {Type: "string"},
			"category": {
				Type:    "string",
				Enum:    []string{"maintenance", "tax", "utilities", "insurance", "management", "other"},
				Default: defaultOf("other"),
			},
			"amount":       {Type: "number", Minimum: minZero()},
			"description":  {Type: "string"},
			"expense_date": {Type: "string", Format: "date"},
			"paid":         {Type: "boolean", Default: defaultOf(false)},
		},
		Required: []string{"amount", "expense_date"},
	},
	"Document": {
		Title: "Document",
		Type:  "object",
		Properties: map[string]Property{
			"title":        {Type: "string", Description: "Human-friendly title"},
			"file_id":      {Type: "string", Description: "Stored file id"},
			"filename":     {Type: "string"},
			"content_type": {Type: "string"},
			"tags":         {Type: "array", Items: &Property{Type: "string"}, Default: defaultOf([]string{})},
			"related_type": {
				Type:    "string",
				Enum:    []string{"tenant", "owner", "property", "lease", "sale", "expense", "general"},
				Default: defaultOf("general"),
			},
			"related_id":        {Type: "string"},
			"extracted_text":    {Type: "string"},
			"extracted_summary": {Type: "string"},
		},
		Required: []string{"title"},
	},
}

// collections is the storage allow-list: lowercased type names.
var collections = func() map[string]struct{} {
	set := make(map[string]struct{}, len(typeNames))
	for _, name := range typeNames {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}()

// Lookup returns the schema for an exact, case-sensitive type name.
func Lookup(name string) (Schema, bool) {
	s, ok := registry[name]
	return s, ok
}

// TypeNames returns the canonical entity type names in declaration order.
func TypeNames() []string {
	out := make([]string, len(typeNames))
	copy(out, typeNames)
	return out
}

// IsCollection reports whether name is an allow-listed storage collection.
// The match is exact: collection names are always lowercase.
func IsCollection(name string) bool {
	_, ok := collections[name]
	return ok
}

// Collections returns the allow-listed collection names in canonical order.
func Collections() []string {
	out := make([]string, len(typeNames))
	for i, name := range typeNames {
		out[i] = strings.ToLower(name)
	}
	return out
}

func minZero() *float64 {
	z := float64(0)
	return &z
}

func defaultOf(v any) *any {
	return &v
}
