package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/RockyPukar1/saasan-sub002/internal/config"
	"github.com/RockyPukar1/saasan-sub002/internal/database"
	"github.com/RockyPukar1/saasan-sub002/internal/routes"
	"github.com/RockyPukar1/saasan-sub002/internal/services"
	"github.com/RockyPukar1/saasan-sub002/pkg/logger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	zapLog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}
	defer zapLog.Sync()
	zap.ReplaceGlobals(zapLog)

	if err := database.Connect(cfg); err != nil {
		zapLog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := database.InitRedis(cfg); err != nil {
		zapLog.Fatal("failed to connect to Redis", zap.Error(err))
	}
	if err := database.EnsureIndexes(); err != nil {
		zapLog.Fatal("failed to ensure indexes", zap.Error(err))
	}

	// Keep the hottest directory pages warm between cache expiries.
	c := cron.New()
	c.AddFunc("@hourly", func() {
		zapLog.Info("running scheduled directory cache warmup")
		services.ScheduleDirectoryCacheWarmup()
	})
	c.Start()

	r := gin.Default()
	routes.SetupRoutes(r, zapLog)

	r.GET("/healthz", func(c *gin.Context) {
		if database.Client == nil {
			c.JSON(500, gin.H{"error": "Database not connected"})
			return
		}
		c.JSON(200, gin.H{
			"message":  "Database connected successfully!",
			"database": cfg.DatabaseName,
		})
	})

	zapLog.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
}
