package services

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/database"
)

// ListFilter selects politicians by party membership, position-array
// intersection, or the joined positions' level membership. The three clauses
// combine with OR; an empty filter matches every politician.
type ListFilter struct {
	PartyIDs    []primitive.ObjectID
	PositionIDs []primitive.ObjectID
	LevelIDs    []primitive.ObjectID
}

func (f ListFilter) Empty() bool {
	return len(f.PartyIDs) == 0 && len(f.PositionIDs) == 0 && len(f.LevelIDs) == 0
}

// Scratch field names used between the lookup and shaping stages. They must
// never survive into the pipeline output.
const (
	fieldPartyDocs       = "party_docs"
	fieldPositionDocs    = "position_docs"
	fieldLevelDocs       = "level_docs"
	fieldPromiseSets     = "promise_sets"
	fieldAchievementSets = "achievement_sets"
)

// lookupStages joins the politician with its party, positions, the positions'
// levels (transitively), and both satellite collections.
func lookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         database.CollParties,
			"localField":   "party_id",
			"foreignField": "_id",
			"as":           fieldPartyDocs,
		}},
		{"$lookup": bson.M{
			"from":         database.CollPositions,
			"localField":   "position_ids",
			"foreignField": "_id",
			"as":           fieldPositionDocs,
		}},
		{"$lookup": bson.M{
			"from":         database.CollLevels,
			"localField":   fieldPositionDocs + ".level_id",
			"foreignField": "_id",
			"as":           fieldLevelDocs,
		}},
		{"$lookup": bson.M{
			"from":         database.CollPromises,
			"localField":   "_id",
			"foreignField": "politician_id",
			"as":           fieldPromiseSets,
		}},
		{"$lookup": bson.M{
			"from":         database.CollAchievements,
			"localField":   "_id",
			"foreignField": "politician_id",
			"as":           fieldAchievementSets,
		}},
	}
}

// shapeStages flattens the joined documents into source_categories and the
// promises/achievements arrays, then drops the scratch fields. A dangling
// party reference leaves source_categories.party unset rather than failing.
func shapeStages() []bson.M {
	return []bson.M{
		{"$addFields": bson.M{
			"source_categories": bson.M{
				"party":     bson.M{"$arrayElemAt": []interface{}{"$" + fieldPartyDocs + ".abbreviation", 0}},
				"positions": "$" + fieldPositionDocs + ".abbreviation",
				"levels":    "$" + fieldLevelDocs + ".name",
			},
			"promises": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$" + fieldPromiseSets + ".promises", 0}},
				[]interface{}{},
			}},
			"achievements": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$" + fieldAchievementSets + ".achievements", 0}},
				[]interface{}{},
			}},
		}},
		{"$project": bson.M{
			fieldPartyDocs:       0,
			fieldPositionDocs:    0,
			fieldLevelDocs:       0,
			fieldPromiseSets:     0,
			fieldAchievementSets: 0,
		}},
	}
}

// listMatchStage builds the OR filter over the already-joined documents, or
// nil when no filter was supplied. The level clause matches on the joined
// positions' level ids, so it must run after lookupStages.
func listMatchStage(f ListFilter) bson.M {
	var or []bson.M
	if len(f.PartyIDs) > 0 {
		or = append(or, bson.M{"party_id": bson.M{"$in": f.PartyIDs}})
	}
	if len(f.PositionIDs) > 0 {
		or = append(or, bson.M{"position_ids": bson.M{"$in": f.PositionIDs}})
	}
	if len(f.LevelIDs) > 0 {
		or = append(or, bson.M{fieldPositionDocs + ".level_id": bson.M{"$in": f.LevelIDs}})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"$match": bson.M{"$or": or}}
}

// ProfilePipeline assembles the denormalized profile for a single politician.
func ProfilePipeline(id primitive.ObjectID) []bson.M {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$limit": 1},
	}
	pipeline = append(pipeline, lookupStages()...)
	return append(pipeline, shapeStages()...)
}

// ListPipeline assembles the paginated, optionally filtered directory.
func ListPipeline(f ListFilter, page, pageSize int64) []bson.M {
	pipeline := lookupStages()
	if match := listMatchStage(f); match != nil {
		pipeline = append(pipeline, match)
	}
	pipeline = append(pipeline,
		bson.M{"$skip": (page - 1) * pageSize},
		bson.M{"$limit": pageSize},
	)
	return append(pipeline, shapeStages()...)
}

// SearchPipeline matches politicians by case-insensitive name or biography
// substring and assembles the same profile shape as the directory. The query
// is quoted so regex metacharacters match literally.
func SearchPipeline(query string, page, pageSize int64) []bson.M {
	pattern := regexp.QuoteMeta(query)
	pipeline := []bson.M{
		{"$match": bson.M{"$or": []bson.M{
			{"full_name": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"biography": primitive.Regex{Pattern: pattern, Options: "i"}},
		}}},
	}
	pipeline = append(pipeline, lookupStages()...)
	pipeline = append(pipeline,
		bson.M{"$skip": (page - 1) * pageSize},
		bson.M{"$limit": pageSize},
	)
	return append(pipeline, shapeStages()...)
}
