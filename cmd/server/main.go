package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"leilaoradar/server/config"
	"leilaoradar/server/internal/advisory"
	"leilaoradar/server/internal/api"
	"leilaoradar/server/internal/cache"
	"leilaoradar/server/internal/caixa"
	"leilaoradar/server/internal/models"
)

func main() {
	// A missing .env file is fine; the environment itself takes over.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Compose the listing pipeline: download, normalize, cache per region.
	client := caixa.NewClient(logger, cfg.Listing.URLTemplate, time.Duration(cfg.Listing.FetchTimeout)*time.Second)
	fetch := func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
		text, err := client.FetchList(ctx, uf)
		if err != nil {
			return nil, err
		}
		return caixa.Normalize(text, uf)
	}

	if cfg.Listing.UseSample {
		logger.Warn("Sample mode enabled; serving the built-in listing instead of fetching upstream")
		fetch = func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
			return caixa.SampleRecords()
		}
	}

	regionCache := cache.New(fetch, time.Duration(cfg.Listing.CacheTTL)*time.Second, logger)

	if cfg.Advisory.APIKey == "" {
		logger.Warn("No advisory API key configured; analysis requests will be rejected upstream")
	}
	advisor := advisory.NewClient(logger, cfg.Advisory.BaseURL, cfg.Advisory.APIKey, cfg.Advisory.Model, time.Duration(cfg.Advisory.Timeout)*time.Second)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, regionCache, advisor, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
