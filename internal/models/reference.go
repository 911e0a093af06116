package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Party has an independent lifecycle; politicians reference it, never own it.
type Party struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Abbreviation string             `bson:"abbreviation" json:"abbreviation"`
	FoundedYear  int                `bson:"founded_year,omitempty" json:"founded_year,omitempty"`
	SymbolURL    string             `bson:"symbol_url,omitempty" json:"symbol_url,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// Position is a government post tied to a Level (federal/provincial/local).
type Position struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Abbreviation string              `bson:"abbreviation" json:"abbreviation"`
	LevelID      *primitive.ObjectID `bson:"level_id,omitempty" json:"level_id,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// Level is a government tier label, e.g. "federal".
type Level struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
