package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RockyPukar1/saasan-sub002/internal/handlers"
	"github.com/RockyPukar1/saasan-sub002/internal/middleware"
)

func SetupRoutes(r *gin.Engine, log *zap.Logger) {
	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))

	// API v1 group
	v1 := r.Group("/api/v1")

	politicianRouterV1 := v1.Group("/politician")
	{
		politicianRouterV1.GET("", handlers.ListPoliticians)
		politicianRouterV1.POST("", handlers.CreatePolitician)
		politicianRouterV1.GET("/search", handlers.SearchPoliticians)

		politicianRouterV1.PUT("/:politicianId", handlers.UpdatePolitician)
		politicianRouterV1.DELETE("/:politicianId", handlers.DeletePolitician)

		politicianRouterV1.GET("/:politicianId/detailed", handlers.GetPoliticianDetailed)
		politicianRouterV1.GET("/:politicianId/promises", handlers.GetPoliticianPromises)
		politicianRouterV1.GET("/:politicianId/achievements", handlers.GetPoliticianAchievements)
		politicianRouterV1.GET("/:politicianId/contacts", handlers.GetPoliticianContacts)
		politicianRouterV1.GET("/:politicianId/social-media", handlers.GetPoliticianSocialMedia)

		// Declared endpoints with no behavioral contract yet.
		politicianRouterV1.GET("/:politicianId/budget", handlers.NotImplemented)
		politicianRouterV1.GET("/:politicianId/attendance", handlers.NotImplemented)
		politicianRouterV1.GET("/:politicianId/ratings", handlers.NotImplemented)
		politicianRouterV1.POST("/:politicianId/rate", handlers.NotImplemented)
	}

	partyRouterV1 := v1.Group("/party")
	{
		partyRouterV1.GET("", handlers.ListParties)
		partyRouterV1.POST("", handlers.CreateParty)
		partyRouterV1.PUT("/:partyId", handlers.UpdateParty)
		partyRouterV1.DELETE("/:partyId", handlers.DeleteParty)
	}

	positionRouterV1 := v1.Group("/position")
	{
		positionRouterV1.GET("", handlers.ListPositions)
		positionRouterV1.POST("", handlers.CreatePosition)
		positionRouterV1.PUT("/:positionId", handlers.UpdatePosition)
		positionRouterV1.DELETE("/:positionId", handlers.DeletePosition)
	}

	levelRouterV1 := v1.Group("/level")
	{
		levelRouterV1.GET("", handlers.ListLevels)
		levelRouterV1.POST("", handlers.CreateLevel)
		levelRouterV1.PUT("/:levelId", handlers.UpdateLevel)
		levelRouterV1.DELETE("/:levelId", handlers.DeleteLevel)
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
