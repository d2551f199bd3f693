package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the repositories rely on for
// duplicate detection. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		adminCollection:     {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		productCollection:   {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		categoryCollection:  {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		teamStoreCollection: {Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		customerCollection:  {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}

	for coll, model := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}
