package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes on the satellite collections so at
// most one promise document and one achievement document can exist per
// politician. Without these the read path would silently pick one of several
// satellite documents.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "politician_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, coll := range []string{CollPromises, CollAchievements} {
		if _, err := GetCollection(coll).Indexes().CreateOne(ctx, indexModel); err != nil {
			return err
		}
	}
	return nil
}
