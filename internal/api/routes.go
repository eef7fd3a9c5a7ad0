package api

import (
	"time"

	"costmap/server/config"
	"costmap/server/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.GET("/cities", handler.GetCities)
		api.GET("/cities/:id", handler.GetCity)
		api.GET("/national-average", handler.GetNationalAverage)
		api.GET("/states", handler.GetStates)
		api.GET("/states/:name", handler.GetState)
		api.GET("/map", handler.GetMap)
		api.GET("/compare", handler.Compare)
		api.GET("/purchasing-power", handler.GetPurchasingPower)
		api.GET("/ratio", handler.GetRatio)
	}
}

// NewRouter builds the gin engine with middleware, API routes and the
// metrics endpoint
func NewRouter(cfg *config.Config, handler *Handler, metrics *observability.Metrics, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	if metrics != nil {
		router.Use(metrics.GinMiddleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	if corsHandler := corsMiddleware(cfg.Server.AllowedOrigins); corsHandler != nil {
		router.Use(corsHandler)
	}

	SetupRoutes(router, handler)
	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return nil
	}

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
			return cors.New(corsConfig)
		}
	}
	corsConfig.AllowOrigins = origins
	return cors.New(corsConfig)
}
