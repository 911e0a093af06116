package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RockyPukar1/saasan-sub002/internal/config"
)

// Collection names. The promise/achievement collections are satellites keyed
// by politician id, one document per politician.
const (
	CollPoliticians  = "politicians"
	CollParties      = "parties"
	CollPositions    = "positions"
	CollLevels       = "levels"
	CollPromises     = "politician_promises"
	CollAchievements = "politician_achievements"
)

var Client *mongo.Client
var Database *mongo.Database

func Connect(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}

	// Ping the database
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	Database = client.Database(cfg.DatabaseName)
	return nil
}

func GetCollection(collectionName string) *mongo.Collection {
	return Database.Collection(collectionName)
}

func GetDB() *mongo.Database {
	return Database
}
