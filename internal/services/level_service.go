package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/database"
	"github.com/RockyPukar1/saasan-sub002/internal/dto"
	"github.com/RockyPukar1/saasan-sub002/internal/models"
)

func CreateLevel(req *dto.LevelRequest) (*models.Level, error) {
	now := time.Now().UTC()
	level := models.Level{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if _, err := database.GetCollection(database.CollLevels).InsertOne(ctx, level); err != nil {
		return nil, fmt.Errorf("insert level: %w", err)
	}
	return &level, nil
}

func ListLevels() ([]models.Level, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cursor, err := database.GetCollection(database.CollLevels).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find levels: %w", err)
	}
	defer cursor.Close(ctx)

	levels := []models.Level{}
	if err = cursor.All(ctx, &levels); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	return levels, nil
}

func UpdateLevel(id primitive.ObjectID, req *dto.LevelRequest) (*models.Level, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{"name": req.Name, "updated_at": now}}
	res, err := database.GetCollection(database.CollLevels).UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update level: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrLevelNotFound
	}
	return &models.Level{ID: id, Name: req.Name, UpdatedAt: now}, nil
}

func DeleteLevel(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	res, err := database.GetCollection(database.CollLevels).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete level: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrLevelNotFound
	}
	return nil
}
