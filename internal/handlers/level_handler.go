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

func CreateLevel(c *gin.Context) {
	var req dto.LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	level, err := services.CreateLevel(&req)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to create level: "+err.Error())
		return
	}

	utils.CreatedResponse(c, serializer.Level(level))
}

func ListLevels(c *gin.Context) {
	levels, err := services.ListLevels()
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to list levels: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Levels(levels))
}

func UpdateLevel(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("levelId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid level id")
		return
	}

	var req dto.LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid input: "+err.Error())
		return
	}

	level, err := services.UpdateLevel(id, &req)
	if err != nil {
		if errors.Is(err, models.ErrLevelNotFound) {
			utils.ErrorResponse(c, 404, "Level not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to update level: "+err.Error())
		return
	}

	utils.SuccessResponse(c, serializer.Level(level))
}

func DeleteLevel(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("levelId"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid level id")
		return
	}

	if err := services.DeleteLevel(id); err != nil {
		if errors.Is(err, models.ErrLevelNotFound) {
			utils.ErrorResponse(c, 404, "Level not found")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to delete level: "+err.Error())
		return
	}

	c.Status(204)
}
