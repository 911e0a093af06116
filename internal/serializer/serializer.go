// Package serializer maps store documents onto the external response shapes.
// The mapping is explicit field by field: the response structs in the dto
// package act as allow-lists, so a field the assembler produces but the
// serializer does not copy can never reach a client.
package serializer

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/dto"
	"github.com/RockyPukar1/saasan-sub002/internal/models"
)

func Politician(profile *models.PoliticianProfile) dto.PoliticianResponse {
	resp := dto.PoliticianResponse{
		ID:          profile.ID.Hex(),
		FullName:    profile.FullName,
		Biography:   profile.Biography,
		DateOfBirth: profile.DateOfBirth,
		Education:   profile.Education,
		PhotoURL:    profile.PhotoURL,

		PartyID:        hexOrEmpty(profile.PartyID),
		PositionIDs:    hexList(profile.PositionIDs),
		ConstituencyID: hexOrEmpty(profile.ConstituencyID),

		Contact: dto.ContactResponse{
			Email:   profile.Contact.Email,
			Phone:   profile.Contact.Phone,
			Address: profile.Contact.Address,
		},
		Social: dto.SocialResponse{
			Twitter:   profile.Social.Twitter,
			Facebook:  profile.Social.Facebook,
			Instagram: profile.Social.Instagram,
			Website:   profile.Social.Website,
		},

		AverageRating: profile.AverageRating,
		TotalRatings:  profile.TotalRatings,

		SourceCategories: dto.SourceCategoriesResponse{
			Party:     profile.SourceCategories.Party,
			Positions: stringsOrEmpty(profile.SourceCategories.Positions),
			Levels:    stringsOrEmpty(profile.SourceCategories.Levels),
		},

		Promises:     Promises(profile.Promises),
		Achievements: Achievements(profile.Achievements),
	}
	return resp
}

func PoliticianList(profiles []models.PoliticianProfile, page, pageSize int64) dto.PoliticianListResponse {
	politicians := make([]dto.PoliticianResponse, 0, len(profiles))
	for i := range profiles {
		politicians = append(politicians, Politician(&profiles[i]))
	}
	return dto.PoliticianListResponse{
		Politicians: politicians,
		Count:       len(politicians),
		Page:        page,
		PageSize:    pageSize,
	}
}

func Promises(entries []models.PromiseEntry) []dto.PromiseResponse {
	out := make([]dto.PromiseResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.PromiseResponse{
			Title:       e.Title,
			Description: e.Description,
			Status:      e.Status,
		})
	}
	return out
}

func Achievements(entries []models.AchievementEntry) []dto.AchievementResponse {
	out := make([]dto.AchievementResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AchievementResponse{
			Title:       e.Title,
			Description: e.Description,
			Date:        e.Date,
			Category:    e.Category,
		})
	}
	return out
}

func Contact(c models.Contact) dto.ContactResponse {
	return dto.ContactResponse{Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func Social(s models.SocialLinks) dto.SocialResponse {
	return dto.SocialResponse{
		Twitter:   s.Twitter,
		Facebook:  s.Facebook,
		Instagram: s.Instagram,
		Website:   s.Website,
	}
}

func Party(p *models.Party) dto.PartyResponse {
	return dto.PartyResponse{
		ID:           p.ID.Hex(),
		Name:         p.Name,
		Abbreviation: p.Abbreviation,
		FoundedYear:  p.FoundedYear,
		SymbolURL:    p.SymbolURL,
	}
}

func Parties(parties []models.Party) []dto.PartyResponse {
	out := make([]dto.PartyResponse, 0, len(parties))
	for i := range parties {
		out = append(out, Party(&parties[i]))
	}
	return out
}

func Position(p *models.Position) dto.PositionResponse {
	return dto.PositionResponse{
		ID:           p.ID.Hex(),
		Title:        p.Title,
		Abbreviation: p.Abbreviation,
		LevelID:      hexOrEmpty(p.LevelID),
	}
}

func Positions(positions []models.Position) []dto.PositionResponse {
	out := make([]dto.PositionResponse, 0, len(positions))
	for i := range positions {
		out = append(out, Position(&positions[i]))
	}
	return out
}

func Level(l *models.Level) dto.LevelResponse {
	return dto.LevelResponse{ID: l.ID.Hex(), Name: l.Name}
}

func Levels(levels []models.Level) []dto.LevelResponse {
	out := make([]dto.LevelResponse, 0, len(levels))
	for i := range levels {
		out = append(out, Level(&levels[i]))
	}
	return out
}

func hexOrEmpty(id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Hex()
}

func hexList(ids []primitive.ObjectID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
