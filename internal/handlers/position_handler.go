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

func CreatePosition(c *gin.Context) {
	var req dto.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	position, err := services.CreatePosition(&req)
	if err != nil {
		if errors.Is(err, models.ErrMalformedID) {
			utils.ErrorResponse(c, 400, "Invalid level id: "+err.Error())
			return
		}
		utils.ErrorResponse(c, 500, "Failed to create position: "+err.Error())
		return
	}

	utils.CreatedResponse(c, serializer.Position(position))
}

func ListPositions(c *gin.Context) {
	positions, err := services.ListPositions()
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to list positions: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Positions(positions))
}

func UpdatePosition(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("positionId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid position id")
		return
	}

	var req dto.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	position, err := services.UpdatePosition(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPositionNotFound):
			utils.ErrorResponse(c, 404, "Position not found")
		case errors.Is(err, models.ErrMalformedID):
			utils.ErrorResponse(c, 400, "Invalid level id: "+err.Error())
		default:
			utils.ErrorResponse(c, 500, "Failed to update position: "+err.Error())
		}
		return
	}

	utils.SuccessResponse(c, serializer.Position(position))
}

func DeletePosition(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("positionId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid position id")
		return
	}

	if err := services.DeletePosition(id); err != nil {
		if errors.Is(err, models.ErrPositionNotFound) {
			utils.ErrorResponse(c, 404, "Position not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to delete position: "+err.Error())
		return
	}

	c.Status(204)
}
