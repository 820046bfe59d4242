package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes lists the indexes every collection needs, keyed by collection name
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		BootcampCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "slug", Value: 1}}},
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
			// one bootcamp per non-admin owner
			{
				Keys: bson.D{{Key: "user", Value: 1}},
				Options: options.Index().
					SetName("user_owner_exclusive").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"ownerExclusive": true}),
			},
		},
		CourseCollection: {
			{Keys: bson.D{{Key: "bootcamp", Value: 1}}},
		},
		ReviewCollection: {
			{Keys: bson.D{{Key: "bootcamp", Value: 1}, {Key: "user", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "resetPasswordToken", Value: 1}}, Options: options.Index().SetSparse(true)},
		},
	}
}

// Collections returns the names of every collection the api writes to
func Collections() []string {
	return []string{UserCollection, BootcampCollection, CourseCollection, ReviewCollection}
}

// EnsureIndexes creates the indexes returned by Indexes. Existing indexes with
// the same definition are left alone by mongo.
func EnsureIndexes(ctx context.Context, db DatabaseHelper) error {
	for name, models := range Indexes() {
		if len(models) == 0 {
			continue
		}
		if _, err := db.Collection(name).CreateIndexes(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}
