package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/dto"
	"github.com/RockyPukar1/saasan-sub002/internal/models"
	"github.com/RockyPukar1/saasan-sub002/internal/serializer"
	"github.com/RockyPukar1/saasan-sub002/internal/services"
	"github.com/RockyPukar1/saasan-sub002/internal/utils"
)

func CreatePolitician(c *gin.Context) {
	var req dto.CreatePoliticianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	pol, err := services.CreatePolitician(&req)
	if err != nil {
		if errors.Is(err, models.ErrMalformedID) {
			utils.ErrorResponse(c, 400, "Invalid reference id: "+err.Error())
			return
		}
		utils.ErrorResponse(c, 500, "Failed to create politician: "+err.Error())
		return
	}

	profile, err := services.FindPoliticianProfile(pol.ID)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to read created politician: "+err.Error())
		return
	}

	utils.CreatedResponse(c, serializer.Politician(profile))
}

func ListPoliticians(c *gin.Context) {
	page, pageSize, err := getPaginationParams(c)
	if err != nil {
		return // Error response already handled by getPaginationParams
	}

	filter, ok := getListFilter(c)
	if !ok {
		return
	}

	profiles, err := services.ListPoliticiansCached(filter, page, pageSize)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to list politicians: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.PoliticianList(profiles, page, pageSize))
}

func SearchPoliticians(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponse(c, 400, "Search query parameter 'q' is missing")
		return
	}

	page, pageSize, err := getPaginationParams(c)
	if err != nil {
		return
	}

	profiles, err := services.SearchPoliticianProfiles(query, page, pageSize)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to search politicians: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.PoliticianList(profiles, page, pageSize))
}

func GetPoliticianDetailed(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	profile, err := services.GetProfileFromCache(id)
	if err != nil {
		if errors.Is(err, models.ErrPoliticianNotFound) {
			utils.ErrorResponse(c, 404, "Politician not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to retrieve politician: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Politician(profile))
}

func UpdatePolitician(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePoliticianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	if _, err := services.UpdatePolitician(id, &req); err != nil {
		switch {
		case errors.Is(err, models.ErrPoliticianNotFound):
			utils.ErrorResponse(c, 404, "Politician not found")
		case errors.Is(err, models.ErrMalformedID):
			utils.ErrorResponse(c, 400, "Invalid reference id: "+err.Error())
		default:
			utils.ErrorResponse(c, 500, "Failed to update politician: "+err.Error())
		}
		return
	}

	profile, err := services.FindPoliticianProfile(id)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to read updated politician: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Politician(profile))
}

func DeletePolitician(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	if err := services.DeletePolitician(id); err != nil {
		if errors.Is(err, models.ErrPoliticianNotFound) {
			utils.ErrorResponse(c, 404, "Politician not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to delete politician: "+err.Error())
		return
	}

	c.Status(204)
}

func GetPoliticianPromises(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	promises, err := services.GetPromises(id)
	if err != nil {
		if errors.Is(err, models.ErrPoliticianNotFound) {
			utils.ErrorResponse(c, 404, "Politician not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to retrieve promises: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Promises(promises))
}

func GetPoliticianAchievements(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	achievements, err := services.GetAchievements(id)
	if err != nil {
		if errors.Is(err, models.ErrPoliticianNotFound) {
			utils.ErrorResponse(c, 404, "Politician not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to retrieve achievements: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Achievements(achievements))
}

func GetPoliticianContacts(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	pol, err := services.FindPolitician(id)
	if err != nil {
		if errors.Is(err, models.ErrPoliticianNotFound) {
			utils.ErrorResponse(c, 404, "Politician not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to retrieve contacts: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Contact(pol.Contact))
}

func GetPoliticianSocialMedia(c *gin.Context) {
	id, ok := politicianIDParam(c)
	if !ok {
		return
	}

	pol, err := services.FindPolitician(id)
	if err != nil {
		if errors.Is(err, models.ErrPoliticianNotFound) {
			utils.ErrorResponse(c, 404, "Politician not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to retrieve social media: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Social(pol.Social))
}

// NotImplemented answers the declared-but-unspecified endpoints (budget,
// attendance, ratings). No behavioral contract exists for them yet.
func NotImplemented(c *gin.Context) {
	utils.ErrorResponse(c, 501, "Not implemented")
}

func politicianIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("politicianId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid politician id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func getPaginationParams(c *gin.Context) (page, pageSize int64, err error) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err = strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page <= 0 {
		utils.ErrorResponse(c, 400, "Invalid page number")
		return 0, 0, fmt.Errorf("invalid page number")
	}

	pageSize, err = strconv.ParseInt(pageSizeStr, 10, 64)
	if err != nil || pageSize <= 0 {
		utils.ErrorResponse(c, 400, "Invalid page size")
		return 0, 0, fmt.Errorf("invalid page size")
	}
	return page, pageSize, nil
}

// getListFilter reads the repeatable party_id/position_id/level_id query
// params. Malformed ids are rejected here, before any pipeline is built.
func getListFilter(c *gin.Context) (services.ListFilter, bool) {
	var filter services.ListFilter

	parse := func(param string) ([]primitive.ObjectID, bool) {
		values := c.QueryArray(param)
		if len(values) == 0 {
			return nil, true
		}
		ids := make([]primitive.ObjectID, 0, len(values))
		for _, v := range values {
			id, err := primitive.ObjectIDFromHex(v)
			if err != nil {
				utils.ErrorResponse(c, 400, "Invalid "+param+": "+v)
				return nil, false
			}
			ids = append(ids, id)
		}
		return ids, true
	}

	var ok bool
	if filter.PartyIDs, ok = parse("party_id"); !ok {
		return filter, false
	}
	if filter.PositionIDs, ok = parse("position_id"); !ok {
		return filter, false
	}
	if filter.LevelIDs, ok = parse("level_id"); !ok {
		return filter, false
	}
	return filter, true
}
