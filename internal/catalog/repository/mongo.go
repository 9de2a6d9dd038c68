package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tenanthq/tenant-api/internal/catalog"
)

// Mongo implements Store over a MongoDB database. Records are stored as-is;
// MongoDB assigns the ObjectID, which is rendered back to callers as a hex
// string.
type Mongo struct {
	db *mongo.Database
}

// NewMongo wraps the given database handle. The handle is shared and read
// concurrently by all requests; the driver manages pooling underneath.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc catalog.Record) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return catalog.FormatID(res.InsertedID), nil
}

func (m *Mongo) Find(ctx context.Context, collection string, limit int64) ([]catalog.Record, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	out := []catalog.Record{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode record from %s: %w", collection, err)
		}
		out = append(out, catalog.Normalize(catalog.Record(doc)))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return out, nil
}

func (m *Mongo) CollectionNames(ctx context.Context, max int) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, nil)
}
