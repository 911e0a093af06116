package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/database"
)

func findStages(pipeline []bson.M, operator string) []bson.M {
	var found []bson.M
	for _, stage := range pipeline {
		if _, ok := stage[operator]; ok {
			found = append(found, stage)
		}
	}
	return found
}

func TestProfilePipelineShape(t *testing.T) {
	id := primitive.NewObjectID()
	pipeline := ProfilePipeline(id)

	require.NotEmpty(t, pipeline)
	assert.Equal(t, bson.M{"$match": bson.M{"_id": id}}, pipeline[0])
	assert.Equal(t, bson.M{"$limit": 1}, pipeline[1])

	lookups := findStages(pipeline, "$lookup")
	require.Len(t, lookups, 5)

	froms := make([]string, 0, len(lookups))
	for _, stage := range lookups {
		froms = append(froms, stage["$lookup"].(bson.M)["from"].(string))
	}
	assert.Equal(t, []string{
		database.CollParties,
		database.CollPositions,
		database.CollLevels,
		database.CollPromises,
		database.CollAchievements,
	}, froms)
}

func TestLevelLookupIsTransitive(t *testing.T) {
	pipeline := ProfilePipeline(primitive.NewObjectID())
	lookups := findStages(pipeline, "$lookup")
	require.Len(t, lookups, 5)

	levelLookup := lookups[2]["$lookup"].(bson.M)
	assert.Equal(t, database.CollLevels, levelLookup["from"])
	// Levels join through the already-joined positions, not the politician.
	assert.Equal(t, fieldPositionDocs+".level_id", levelLookup["localField"])
}

func TestScratchFieldsAreProjectedOut(t *testing.T) {
	pipeline := ProfilePipeline(primitive.NewObjectID())

	projects := findStages(pipeline, "$project")
	require.Len(t, projects, 1)

	project := projects[0]["$project"].(bson.M)
	for _, field := range []string{
		fieldPartyDocs, fieldPositionDocs, fieldLevelDocs,
		fieldPromiseSets, fieldAchievementSets,
	} {
		assert.Equal(t, 0, project[field], "scratch field %q must be excluded", field)
	}
}

func TestShapeStagesFlattenSatellites(t *testing.T) {
	stages := shapeStages()
	require.Len(t, stages, 2)

	addFields := stages[0]["$addFields"].(bson.M)
	categories := addFields["source_categories"].(bson.M)
	assert.Contains(t, categories, "party")
	assert.Contains(t, categories, "positions")
	assert.Contains(t, categories, "levels")

	// Satellite arrays default to empty when no document exists.
	for _, field := range []string{"promises", "achievements"} {
		expr, ok := addFields[field].(bson.M)
		require.True(t, ok, "%s must be computed", field)
		assert.Contains(t, expr, "$ifNull")
	}
}

func TestListMatchStageEmptyFilter(t *testing.T) {
	assert.Nil(t, listMatchStage(ListFilter{}))
	assert.True(t, ListFilter{}.Empty())
}

func TestListMatchStageOrSemantics(t *testing.T) {
	partyID := primitive.NewObjectID()
	positionID := primitive.NewObjectID()
	levelID := primitive.NewObjectID()

	filter := ListFilter{
		PartyIDs:    []primitive.ObjectID{partyID},
		PositionIDs: []primitive.ObjectID{positionID},
		LevelIDs:    []primitive.ObjectID{levelID},
	}
	assert.False(t, filter.Empty())

	stage := listMatchStage(filter)
	require.NotNil(t, stage)

	or := stage["$match"].(bson.M)["$or"].([]bson.M)
	require.Len(t, or, 3)
	assert.Equal(t, bson.M{"party_id": bson.M{"$in": []primitive.ObjectID{partyID}}}, or[0])
	assert.Equal(t, bson.M{"position_ids": bson.M{"$in": []primitive.ObjectID{positionID}}}, or[1])
	assert.Equal(t, bson.M{fieldPositionDocs + ".level_id": bson.M{"$in": []primitive.ObjectID{levelID}}}, or[2])
}

func TestListMatchStageSingleClause(t *testing.T) {
	filter := ListFilter{PartyIDs: []primitive.ObjectID{primitive.NewObjectID()}}

	stage := listMatchStage(filter)
	require.NotNil(t, stage)

	or := stage["$match"].(bson.M)["$or"].([]bson.M)
	assert.Len(t, or, 1)
	assert.Contains(t, or[0], "party_id")
}

func TestListPipelinePagination(t *testing.T) {
	pipeline := ListPipeline(ListFilter{}, 3, 25)

	skips := findStages(pipeline, "$skip")
	require.Len(t, skips, 1)
	assert.Equal(t, int64(50), skips[0]["$skip"])

	limits := findStages(pipeline, "$limit")
	require.Len(t, limits, 1)
	assert.Equal(t, int64(25), limits[0]["$limit"])
}

func TestListPipelineUnfilteredHasNoMatch(t *testing.T) {
	pipeline := ListPipeline(ListFilter{}, 1, 10)
	assert.Empty(t, findStages(pipeline, "$match"))
}

func TestListPipelineFilterAfterLookups(t *testing.T) {
	filter := ListFilter{LevelIDs: []primitive.ObjectID{primitive.NewObjectID()}}
	pipeline := ListPipeline(filter, 1, 10)

	matchIdx, lastLookupIdx := -1, -1
	for i, stage := range pipeline {
		if _, ok := stage["$match"]; ok {
			matchIdx = i
		}
		if _, ok := stage["$lookup"]; ok {
			lastLookupIdx = i
		}
	}
	require.NotEqual(t, -1, matchIdx)
	assert.Greater(t, matchIdx, lastLookupIdx,
		"level filter matches on joined positions, so it must follow the lookups")
}

func TestSearchPipelineRegex(t *testing.T) {
	pipeline := SearchPipeline("sharma", 1, 10)

	require.NotEmpty(t, pipeline)
	or := pipeline[0]["$match"].(bson.M)["$or"].([]bson.M)
	require.Len(t, or, 2)

	nameRegex := or[0]["full_name"].(primitive.Regex)
	assert.Equal(t, "sharma", nameRegex.Pattern)
	assert.Equal(t, "i", nameRegex.Options)

	bioRegex := or[1]["biography"].(primitive.Regex)
	assert.Equal(t, "sharma", bioRegex.Pattern)
}

func TestSearchPipelineMatchesMetacharactersLiterally(t *testing.T) {
	pipeline := SearchPipeline("K.P. (Oli)*", 1, 10)

	or := pipeline[0]["$match"].(bson.M)["$or"].([]bson.M)
	require.Len(t, or, 2)

	nameRegex := or[0]["full_name"].(primitive.Regex)
	assert.Equal(t, `K\.P\. \(Oli\)\*`, nameRegex.Pattern)
}
