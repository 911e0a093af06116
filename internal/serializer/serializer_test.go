package serializer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/models"
)

func sampleProfile() *models.PoliticianProfile {
	partyID := primitive.NewObjectID()
	party := "UML"
	return &models.PoliticianProfile{
		Politician: models.Politician{
			ID:          primitive.NewObjectID(),
			FullName:    "Ram Sharma",
			Biography:   "Long-serving representative.",
			PartyID:     &partyID,
			PositionIDs: []primitive.ObjectID{primitive.NewObjectID()},
			Contact:     models.Contact{Email: "ram@example.org", Phone: "9800000000"},
			Social:      models.SocialLinks{Twitter: "https://twitter.com/ram"},

			AverageRating: 3.7,
			TotalRatings:  120,
			TotalReports:  4,

			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SourceCategories: models.SourceCategories{
			Party:     &party,
			Positions: []string{"MP"},
			Levels:    []string{"federal"},
		},
		Promises: []models.PromiseEntry{
			{Title: "Build the road", Status: "pending"},
			{Title: "Open the school", Status: "fulfilled"},
		},
		Achievements: []models.AchievementEntry{
			{Title: "Passed the bill", Date: "2023-04-01"},
		},
	}
}

// responseAllowList is the exact set of top-level keys a politician response
// may carry. Anything outside it is a serializer leak.
var responseAllowList = map[string]bool{
	"id": true, "full_name": true, "biography": true, "date_of_birth": true,
	"education": true, "photo_url": true, "party_id": true, "position_ids": true,
	"constituency_id": true, "contact": true, "social": true,
	"average_rating": true, "total_ratings": true,
	"source_categories": true, "promises": true, "achievements": true,
}

func responseKeys(t *testing.T, v interface{}) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	return keys
}

func TestPoliticianAllowList(t *testing.T) {
	profile := sampleProfile()
	keys := responseKeys(t, Politician(profile))

	for key := range keys {
		assert.True(t, responseAllowList[key], "unexpected response key %q", key)
	}

	// Internal fields must never surface.
	assert.NotContains(t, keys, "_id")
	assert.NotContains(t, keys, "total_reports")
	assert.NotContains(t, keys, "created_at")
	assert.NotContains(t, keys, "updated_at")
}

func TestPoliticianIdentityRename(t *testing.T) {
	profile := sampleProfile()
	resp := Politician(profile)

	assert.Equal(t, profile.ID.Hex(), resp.ID)
	assert.Equal(t, profile.PartyID.Hex(), resp.PartyID)
	assert.Len(t, resp.PositionIDs, 1)
}

func TestPoliticianPromiseOrderPreserved(t *testing.T) {
	resp := Politician(sampleProfile())

	require.Len(t, resp.Promises, 2)
	assert.Equal(t, "Build the road", resp.Promises[0].Title)
	assert.Equal(t, "Open the school", resp.Promises[1].Title)
	require.Len(t, resp.Achievements, 1)
	assert.Equal(t, "Passed the bill", resp.Achievements[0].Title)
}

func TestPoliticianDanglingParty(t *testing.T) {
	profile := sampleProfile()
	profile.SourceCategories.Party = nil

	keys := responseKeys(t, Politician(profile))

	var categories map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(keys["source_categories"], &categories))
	assert.NotContains(t, categories, "party")
	assert.Contains(t, categories, "positions")
	assert.Contains(t, categories, "levels")
}

func TestPoliticianEmptySatellites(t *testing.T) {
	profile := sampleProfile()
	profile.Promises = nil
	profile.Achievements = nil
	profile.SourceCategories.Positions = nil
	profile.SourceCategories.Levels = nil

	data, err := json.Marshal(Politician(profile))
	require.NoError(t, err)

	// Absent satellite data serializes as [], never null.
	assert.Contains(t, string(data), `"promises":[]`)
	assert.Contains(t, string(data), `"achievements":[]`)
	assert.Contains(t, string(data), `"positions":[]`)
	assert.Contains(t, string(data), `"levels":[]`)
}

func TestPoliticianListEnvelope(t *testing.T) {
	profiles := []models.PoliticianProfile{*sampleProfile(), *sampleProfile()}

	resp := PoliticianList(profiles, 2, 10)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(2), resp.Page)
	assert.Equal(t, int64(10), resp.PageSize)
	assert.Len(t, resp.Politicians, 2)
}

func TestPartySerializer(t *testing.T) {
	party := &models.Party{
		ID:           primitive.NewObjectID(),
		Name:         "Nepal Communist Party (UML)",
		Abbreviation: "UML",
		FoundedYear:  1991,
		CreatedAt:    time.Now(),
	}

	keys := responseKeys(t, Party(party))
	assert.NotContains(t, keys, "created_at")
	assert.NotContains(t, keys, "updated_at")

	resp := Party(party)
	assert.Equal(t, party.ID.Hex(), resp.ID)
	assert.Equal(t, "UML", resp.Abbreviation)
}

func TestPositionSerializerOptionalLevel(t *testing.T) {
	position := &models.Position{
		ID:           primitive.NewObjectID(),
		Title:        "Member of Parliament",
		Abbreviation: "MP",
	}

	resp := Position(position)
	assert.Empty(t, resp.LevelID)

	levelID := primitive.NewObjectID()
	position.LevelID = &levelID
	assert.Equal(t, levelID.Hex(), Position(position).LevelID)
}
