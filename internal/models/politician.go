package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Politician is the primary civic-data entity. Party, position and
// constituency links are weak references: ids only, never enforced by the
// store. A dangling reference yields an empty join at read time, not an error.
type Politician struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"full_name" json:"full_name"`
	Biography   string             `bson:"biography,omitempty" json:"biography,omitempty"`
	DateOfBirth string             `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Education   string             `bson:"education,omitempty" json:"education,omitempty"`
	PhotoURL    string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`

	PartyID        *primitive.ObjectID  `bson:"party_id,omitempty" json:"party_id,omitempty"`
	PositionIDs    []primitive.ObjectID `bson:"position_ids,omitempty" json:"position_ids,omitempty"`
	ConstituencyID *primitive.ObjectID  `bson:"constituency_id,omitempty" json:"constituency_id,omitempty"`

	Contact Contact     `bson:"contact" json:"contact"`
	Social  SocialLinks `bson:"social" json:"social"`

	AverageRating float64 `bson:"average_rating" json:"average_rating"`
	TotalRatings  int     `bson:"total_ratings" json:"total_ratings"`
	TotalReports  int     `bson:"total_reports" json:"total_reports"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type Contact struct {
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

type SocialLinks struct {
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Website   string `bson:"website,omitempty" json:"website,omitempty"`
}
