// Command seed inserts a small linked data set, one record per collection,
// useful when developing a frontend against an empty database.
package main

import (
	"context"
	"log"

	"github.com/tenanthq/tenant-api/internal/catalog"
	"github.com/tenanthq/tenant-api/internal/catalog/repository"
	"github.com/tenanthq/tenant-api/internal/config"
	"github.com/tenanthq/tenant-api/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Database.URL == "" || cfg.Database.URL == "memory" {
		log.Fatal("seed needs DATABASE_URL pointing at a MongoDB instance")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.Database.URL, cfg.Database.Timeout)
	if err != nil {
		log.Fatalf("cannot connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	store := repository.NewMongo(client.Database(cfg.Database.Name))
	insert := func(collection string, doc catalog.Record) string {
		id, err := store.Insert(ctx, collection, doc)
		if err != nil {
			log.Fatalf("insert into %s: %v", collection, err)
		}
		log.Printf("seeded %s: %s", collection, id)
		return id
	}

	ownerID := insert("owner", catalog.Record{
		"first_name": "Marta", "last_name": "Keller",
		"email": "marta.keller@example.com", "phone": "+49 151 1234567",
	})
	tenantID := insert("tenant", catalog.Record{
		"first_name": "Jonas", "last_name": "Brandt",
		"email": "jonas.brandt@example.com", "notes": "prefers email contact",
	})
	propertyID := insert("property", catalog.Record{
		"title": "Sunny two-room flat", "address": "Lindenstr. 12, Leipzig",
		"type": "apartment", "bedrooms": 2, "bathrooms": 1.0,
		"area_sqft": 630.0, "owner_id": ownerID,
	})
	insert("lease", catalog.Record{
		"tenant_id": tenantID, "property_id": propertyID,
		"start_date": "2025-01-01", "monthly_rent": 720.0, "status": "active",
	})
	insert("sale", catalog.Record{
		"property_id": propertyID, "buyer_name": "Atrium Invest GmbH",
		"seller_owner_id": ownerID, "price": 245000.0, "status": "listed",
	})
	insert("expense", catalog.Record{
		"property_id": propertyID, "amount": 1450.0,
		"expense_date": "2025-02-10", "category": "maintenance",
		"description": "boiler replacement", "paid": false,
	})
	insert("document", catalog.Record{
		"title": "Handover protocol", "filename": "handover.pdf",
		"content_type": "application/pdf", "tags": []string{"protocol"},
		"related_type": "property", "related_id": propertyID,
		"extracted_text": nil,
	})
}
