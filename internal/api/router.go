package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m3tering/explorer-backend-go/internal/config"
	"github.com/m3tering/explorer-backend-go/internal/handler"
	"github.com/m3tering/explorer-backend-go/internal/middleware"
	"github.com/m3tering/explorer-backend-go/internal/repository"
	"github.com/m3tering/explorer-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into the gin engine
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS for the dashboard front-end
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	meterRepo := repository.NewMeterRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	activityHandler := handler.NewActivityHandler(service.NewActivityService(activityRepo))
	heatmapHandler := handler.NewHeatmapHandler(service.NewHeatmapService(blockRepo, cfg.HeatmapSeed))
	meterHandler := handler.NewMeterHandler(service.NewMeterService(meterRepo))
	energyHandler := handler.NewEnergyHandler(service.NewEnergyService(blockRepo, cfg.HeatmapSeed))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "M3ter Explorer API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/activities", activityHandler.GetActivities)

		meters := api.Group("/meters")
		{
			meters.GET("", meterHandler.GetMeters)
			meters.GET("/nearby", meterHandler.GetNearbyMeters)
			meters.GET("/:id", meterHandler.GetMeter)
			meters.GET("/:id/activities", activityHandler.GetMeterActivities)
		}

		api.GET("/heatmap", heatmapHandler.GetHeatmap)
		api.GET("/energy/hourly", energyHandler.GetHourlyUsage)
		api.GET("/stablecoins", energyHandler.GetStablecoins)
	}

	return r
}
