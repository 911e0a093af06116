package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/RockyPukar1/saasan-sub002/internal/database"
	"github.com/RockyPukar1/saasan-sub002/internal/dto"
	"github.com/RockyPukar1/saasan-sub002/internal/models"
)

const storeTimeout = 10 * time.Second

// CreatePolitician inserts the politician and, when promise or achievement
// data was supplied, the satellite documents — all inside one transaction.
// If any write fails nothing is observable afterwards.
func CreatePolitician(req *dto.CreatePoliticianRequest) (*models.Politician, error) {
	return createPolitician(primitive.NewObjectID(), req)
}

func createPolitician(id primitive.ObjectID, req *dto.CreatePoliticianRequest) (*models.Politician, error) {
	pol, err := politicianFromRequest(req.FullName, req.Biography, req.DateOfBirth, req.Education,
		req.PhotoURL, req.PartyID, req.PositionIDs, req.ConstituencyID, req.Contact, req.Social)
	if err != nil {
		return nil, err
	}
	pol.ID = id
	now := time.Now().UTC()
	pol.CreatedAt = now
	pol.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	session, err := database.Client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := database.GetCollection(database.CollPoliticians).InsertOne(sc, pol); err != nil {
			return nil, fmt.Errorf("insert politician: %w", err)
		}
		if len(req.Promises) > 0 {
			set := models.PromiseSet{
				ID:           primitive.NewObjectID(),
				PoliticianID: pol.ID,
				Promises:     promisesFromPayload(req.Promises),
				CreatedAt:    now,
			}
			if _, err := database.GetCollection(database.CollPromises).InsertOne(sc, set); err != nil {
				return nil, fmt.Errorf("insert promise set: %w", err)
			}
		}
		if len(req.Achievements) > 0 {
			set := models.AchievementSet{
				ID:           primitive.NewObjectID(),
				PoliticianID: pol.ID,
				Achievements: achievementsFromPayload(req.Achievements),
				CreatedAt:    now,
			}
			if _, err := database.GetCollection(database.CollAchievements).InsertOne(sc, set); err != nil {
				return nil, fmt.Errorf("insert achievement set: %w", err)
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateDirectoryCache(ctx)
	zap.L().Info("politician created",
		zap.String("politician_id", pol.ID.Hex()),
		zap.String("full_name", pol.FullName))
	return pol, nil
}

// FindPoliticianProfile runs the profile pipeline for a single politician.
// A missing id is reported via models.ErrPoliticianNotFound.
func FindPoliticianProfile(id primitive.ObjectID) (*models.PoliticianProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cursor, err := database.GetCollection(database.CollPoliticians).Aggregate(ctx, ProfilePipeline(id))
	if err != nil {
		return nil, fmt.Errorf("aggregate profile: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.PoliticianProfile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, models.ErrPoliticianNotFound
	}
	return &profiles[0], nil
}

// ListPoliticianProfiles runs the directory pipeline with the given filter
// and pagination.
func ListPoliticianProfiles(filter ListFilter, page, pageSize int64) ([]models.PoliticianProfile, error) {
	return runProfilePipeline(ListPipeline(filter, page, pageSize))
}

// SearchPoliticianProfiles matches politicians by name or biography substring.
func SearchPoliticianProfiles(query string, page, pageSize int64) ([]models.PoliticianProfile, error) {
	return runProfilePipeline(SearchPipeline(query, page, pageSize))
}

func runProfilePipeline(pipeline []bson.M) ([]models.PoliticianProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	cursor, err := database.GetCollection(database.CollPoliticians).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate politicians: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.PoliticianProfile{}
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode politicians: %w", err)
	}
	return profiles, nil
}

// UpdatePolitician replaces the politician's own fields. Satellite documents
// are never touched by updates.
func UpdatePolitician(id primitive.ObjectID, req *dto.UpdatePoliticianRequest) (*models.Politician, error) {
	pol, err := politicianFromRequest(req.FullName, req.Biography, req.DateOfBirth, req.Education,
		req.PhotoURL, req.PartyID, req.PositionIDs, req.ConstituencyID, req.Contact, req.Social)
	if err != nil {
		return nil, err
	}
	pol.ID = id
	pol.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	res, err := database.GetCollection(database.CollPoliticians).UpdateByID(ctx, id, politicianUpdateDoc(pol))
	if err != nil {
		return nil, fmt.Errorf("update politician: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrPoliticianNotFound
	}

	InvalidateProfileCache(ctx, id)
	InvalidateDirectoryCache(ctx)
	return pol, nil
}

// politicianUpdateDoc builds the replace-style update. Cleared references are
// removed with $unset so updated documents keep the shape inserts produce,
// instead of storing explicit nulls.
func politicianUpdateDoc(pol *models.Politician) bson.M {
	set := bson.M{
		"full_name":     pol.FullName,
		"biography":     pol.Biography,
		"date_of_birth": pol.DateOfBirth,
		"education":     pol.Education,
		"photo_url":     pol.PhotoURL,
		"contact":       pol.Contact,
		"social":        pol.Social,
		"updated_at":    pol.UpdatedAt,
	}
	unset := bson.M{}
	if pol.PartyID != nil {
		set["party_id"] = pol.PartyID
	} else {
		unset["party_id"] = ""
	}
	if len(pol.PositionIDs) > 0 {
		set["position_ids"] = pol.PositionIDs
	} else {
		unset["position_ids"] = ""
	}
	if pol.ConstituencyID != nil {
		set["constituency_id"] = pol.ConstituencyID
	} else {
		unset["constituency_id"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// DeletePolitician removes the politician and cascades to both satellite
// documents in one transaction, so no orphaned promise/achievement data is
// left behind. Deleting a missing id reports not-found, never silent success.
func DeletePolitician(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	session, err := database.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := database.GetCollection(database.CollPoliticians).DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, fmt.Errorf("delete politician: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, models.ErrPoliticianNotFound
		}
		for _, coll := range []string{database.CollPromises, database.CollAchievements} {
			if _, err := database.GetCollection(coll).DeleteMany(sc, bson.M{"politician_id": id}); err != nil {
				return nil, fmt.Errorf("delete satellite %s: %w", coll, err)
			}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	InvalidateProfileCache(ctx, id)
	InvalidateDirectoryCache(ctx)
	zap.L().Info("politician deleted", zap.String("politician_id", id.Hex()))
	return nil
}

// GetPromises returns the politician's promise list. A missing satellite
// document means "no promises", not an error; a missing politician is 404.
func GetPromises(id primitive.ObjectID) ([]models.PromiseEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := requirePolitician(ctx, id); err != nil {
		return nil, err
	}

	var set models.PromiseSet
	err := database.GetCollection(database.CollPromises).FindOne(ctx, bson.M{"politician_id": id}).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return []models.PromiseEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find promise set: %w", err)
	}
	return set.Promises, nil
}

// GetAchievements mirrors GetPromises for the achievement satellite.
func GetAchievements(id primitive.ObjectID) ([]models.AchievementEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := requirePolitician(ctx, id); err != nil {
		return nil, err
	}

	var set models.AchievementSet
	err := database.GetCollection(database.CollAchievements).FindOne(ctx, bson.M{"politician_id": id}).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return []models.AchievementEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find achievement set: %w", err)
	}
	return set.Achievements, nil
}

// FindPolitician reads the bare politician document without any joins.
func FindPolitician(id primitive.ObjectID) (*models.Politician, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var pol models.Politician
	err := database.GetCollection(database.CollPoliticians).FindOne(ctx, bson.M{"_id": id}).Decode(&pol)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrPoliticianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find politician: %w", err)
	}
	return &pol, nil
}

func requirePolitician(ctx context.Context, id primitive.ObjectID) error {
	count, err := database.GetCollection(database.CollPoliticians).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("count politicians: %w", err)
	}
	if count == 0 {
		return models.ErrPoliticianNotFound
	}
	return nil
}

func politicianFromRequest(fullName, biography, dateOfBirth, education, photoURL,
	partyID string, positionIDs []string, constituencyID string,
	contact dto.ContactPayload, social dto.SocialPayload) (*models.Politician, error) {

	pol := &models.Politician{
		FullName:    fullName,
		Biography:   biography,
		DateOfBirth: dateOfBirth,
		Education:   education,
		PhotoURL:    photoURL,
		Contact: models.Contact{
			Email:   contact.Email,
			Phone:   contact.Phone,
			Address: contact.Address,
		},
		Social: models.SocialLinks{
			Twitter:   social.Twitter,
			Facebook:  social.Facebook,
			Instagram: social.Instagram,
			Website:   social.Website,
		},
	}

	var err error
	if pol.PartyID, err = parseOptionalID(partyID); err != nil {
		return nil, err
	}
	if pol.PositionIDs, err = parseIDList(positionIDs); err != nil {
		return nil, err
	}
	if pol.ConstituencyID, err = parseOptionalID(constituencyID); err != nil {
		return nil, err
	}
	return pol, nil
}

func parseOptionalID(s string) (*primitive.ObjectID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", models.ErrMalformedID, s)
	}
	return &id, nil
}

func parseIDList(values []string) ([]primitive.ObjectID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, s := range values {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", models.ErrMalformedID, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func promisesFromPayload(payload []dto.PromisePayload) []models.PromiseEntry {
	entries := make([]models.PromiseEntry, 0, len(payload))
	for _, p := range payload {
		entries = append(entries, models.PromiseEntry{
			Title:       p.Title,
			Description: p.Description,
			Status:      p.Status,
		})
	}
	return entries
}

func achievementsFromPayload(payload []dto.AchievementPayload) []models.AchievementEntry {
	entries := make([]models.AchievementEntry, 0, len(payload))
	for _, a := range payload {
		entries = append(entries, models.AchievementEntry{
			Title:       a.Title,
			Description: a.Description,
			Date:        a.Date,
			Category:    a.Category,
		})
	}
	return entries
}
