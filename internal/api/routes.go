package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leilaoradar/server/internal/advisory"
	"leilaoradar/server/internal/cache"
	"leilaoradar/server/internal/metrics"
)

func SetupRoutes(router *gin.Engine, regionCache *cache.RegionCache, advisor *advisory.Client, logger *logrus.Logger) {
	handler := NewHandler(regionCache, advisor, logger)

	router.Use(RequestLogger(handler.logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	router.GET("/", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/imoveis", handler.GetProperties)
		api.POST("/imoveis/analise", handler.AnalyzeProperty)
		api.GET("/regioes", handler.GetRegions)
	}
}
