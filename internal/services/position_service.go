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

func CreatePosition(req *dto.PositionRequest) (*models.Position, error) {
	levelID, err := parseOptionalID(req.LevelID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	position := models.Position{
		ID:           primitive.NewObjectID(),
		Title:        req.Title,
		Abbreviation: req.Abbreviation,
		LevelID:      levelID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if _, err := database.GetCollection(database.CollPositions).InsertOne(ctx, position); err != nil {
		return nil, fmt.Errorf("insert position: %w", err)
	}
	return &position, nil
}

func ListPositions() ([]models.Position, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cursor, err := database.GetCollection(database.CollPositions).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find positions: %w", err)
	}
	defer cursor.Close(ctx)

	positions := []models.Position{}
	if err = cursor.All(ctx, &positions); err != nil {
		return nil, fmt.Errorf("decode positions: %w", err)
	}
	return positions, nil
}

func UpdatePosition(id primitive.ObjectID, req *dto.PositionRequest) (*models.Position, error) {
	levelID, err := parseOptionalID(req.LevelID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	now := time.Now().UTC()
	set := bson.M{
		"title":        req.Title,
		"abbreviation": req.Abbreviation,
		"updated_at":   now,
	}
	update := bson.M{"$set": set}
	if levelID != nil {
		set["level_id"] = levelID
	} else {
		// Keep the stored shape consistent with inserts, which omit the field.
		update["$unset"] = bson.M{"level_id": ""}
	}
	res, err := database.GetCollection(database.CollPositions).UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update position: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrPositionNotFound
	}
	return &models.Position{
		ID:           id,
		Title:        req.Title,
		Abbreviation: req.Abbreviation,
		LevelID:      levelID,
		UpdatedAt:    now,
	}, nil
}

func DeletePosition(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	res, err := database.GetCollection(database.CollPositions).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrPositionNotFound
	}
	return nil
}
