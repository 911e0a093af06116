package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromiseSet is a satellite document: one per politician (unique index on
// politician_id), holding the embedded list of promises.
type PromiseSet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PoliticianID primitive.ObjectID `bson:"politician_id" json:"politician_id"`
	Promises     []PromiseEntry     `bson:"promises" json:"promises"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type PromiseEntry struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Status      string `bson:"status,omitempty" json:"status,omitempty"` // "pending", "fulfilled", "broken"
}

// AchievementSet mirrors PromiseSet for achievements.
type AchievementSet struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PoliticianID primitive.ObjectID `bson:"politician_id" json:"politician_id"`
	Achievements []AchievementEntry `bson:"achievements" json:"achievements"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type AchievementEntry struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Date        string `bson:"date,omitempty" json:"date,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
}
