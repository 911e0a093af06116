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

func CreateParty(req *dto.PartyRequest) (*models.Party, error) {
	now := time.Now().UTC()
	party := models.Party{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		FoundedYear:  req.FoundedYear,
		SymbolURL:    req.SymbolURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if _, err := database.GetCollection(database.CollParties).InsertOne(ctx, party); err != nil {
		return nil, fmt.Errorf("insert party: %w", err)
	}
	return &party, nil
}

func ListParties() ([]models.Party, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cursor, err := database.GetCollection(database.CollParties).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find parties: %w", err)
	}
	defer cursor.Close(ctx)

	parties := []models.Party{}
	if err = cursor.All(ctx, &parties); err != nil {
		return nil, fmt.Errorf("decode parties: %w", err)
	}
	return parties, nil
}

func UpdateParty(id primitive.ObjectID, req *dto.PartyRequest) (*models.Party, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":         req.Name,
		"abbreviation": req.Abbreviation,
		"founded_year": req.FoundedYear,
		"symbol_url":   req.SymbolURL,
		"updated_at":   now,
	}}
	res, err := database.GetCollection(database.CollParties).UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update party: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrPartyNotFound
	}
	return &models.Party{
		ID:           id,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		FoundedYear:  req.FoundedYear,
		SymbolURL:    req.SymbolURL,
		UpdatedAt:    now,
	}, nil
}

// DeleteParty removes the party only. Politicians referencing it keep the
// now-dangling party_id; the read path then joins an empty party.
func DeleteParty(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	res, err := database.GetCollection(database.CollParties).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrPartyNotFound
	}
	return nil
}
