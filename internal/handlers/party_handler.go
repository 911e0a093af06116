package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RockyPukar1/saasan-sub002/internal/dto"
	"github.com/RockyPukar1/saasan-sub002/internal/models"
	"github.com/RockyPukar1/saasan-sub002/internal/serializer"
	"github.com/RockyPukar1/saasan-sub002/internal/services"
	"github.com/RockyPukar1/saasan-sub002/internal/utils"
)

func CreateParty(c *gin.Context) {
	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	party, err := services.CreateParty(&req)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to create party: "+err.Error())
		return
	}

	utils.CreatedResponse(c, serializer.Party(party))
}

func ListParties(c *gin.Context) {
	parties, err := services.ListParties()
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to list parties: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Parties(parties))
}

func UpdateParty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("partyId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid party id")
		return
	}

	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	party, err := services.UpdateParty(id, &req)
	if err != nil {
		if errors.Is(err, models.ErrPartyNotFound) {
			utils.ErrorResponse(c, 404, "Party not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to update party: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Party(party))
}

func DeleteParty(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("partyId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid party id")
		return
	}

	if err := services.DeleteParty(id); err != nil {
		if errors.Is(err, models.ErrPartyNotFound) {
			utils.ErrorResponse(c, 404, "Party not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to delete party: "+err.Error())
		return
	}

	c.Status(204)
}
