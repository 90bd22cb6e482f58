package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/api/handlers"
	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/intent"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/providers"
	"github.com/betscope/betscope/internal/services"
	"github.com/betscope/betscope/internal/storage"
	"github.com/betscope/betscope/internal/teams"
	"github.com/betscope/betscope/pkg/config"
	"github.com/betscope/betscope/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize structured logger with service context
	structuredLogger := logger.InitLogger("info", cfg.IsDevelopment())
	logger.WithService("betscope").WithFields(logrus.Fields{
		"version":     "1.0.0",
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting Betscope")
	logCredentials(cfg)

	// Setup Gin mode
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the injury database
	injuryStore, err := storage.NewInjuryStore(cfg.DatabaseURL, structuredLogger)
	if err != nil {
		logger.WithService("betscope").Fatalf("Failed to connect to database: %v", err)
	}

	// Build the team catalog and seed the injury store teams
	catalog := teams.NewCatalog()
	if err := injuryStore.SeedTeams(context.Background(), seedTeams(catalog)); err != nil {
		logger.WithService("betscope").Fatalf("Failed to seed teams: %v", err)
	}

	// Select the cache backend
	ttls := cache.TTLs{
		providers.OddsProviderName:     cfg.LiveTTL,
		providers.WeatherProviderName:  cfg.WeatherTTL,
		providers.InjuryProviderName:   cfg.LiveTTL,
		providers.StatsProviderName:    cfg.LiveTTL,
		providers.ScheduleProviderName: cfg.ScheduleTTL,
	}
	var store cache.Store
	switch cfg.CacheBackend {
	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithService("betscope").Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.WithService("betscope").Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, ttls, structuredLogger)
		logger.WithService("betscope").Info("Using Redis cache backend")
	default:
		store = cache.NewMemoryStore(ttls)
		logger.WithService("betscope").Info("Using in-memory cache backend")
	}

	// Initialize providers
	oddsClient := providers.NewOddsClient(cfg.OddsAPIKey, cfg.OddsBaseURL, store, catalog, structuredLogger)
	weatherClient := providers.NewWeatherClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, store, structuredLogger)
	injuryClient := providers.NewInjuryClient(injuryStore, store, cfg.InjuryFeedURL, cfg.StarPlayers, structuredLogger)
	statsClient := providers.NewStatsClient(cfg.StatsAPIKey, cfg.StatsBaseURL, store, catalog, structuredLogger)
	narrativeClient := providers.NewNarrativeClient(cfg.NarrativeAPIKey, cfg.NarrativeBaseURL, cfg.NarrativeModel, cfg.NarrativeMaxTokens, structuredLogger)

	// Initialize the aggregator and the injury refresh job
	aggregator := services.NewAggregator(
		catalog,
		intent.NewExtractor(catalog, structuredLogger),
		oddsClient,
		weatherClient,
		injuryClient,
		statsClient,
		narrativeClient,
		store,
		cfg.ProviderTimeout,
		cfg.BatchCallDelay,
		structuredLogger,
	)
	refresher := services.NewInjuryRefresher(injuryClient, cfg.InjuryRefreshSchedule, structuredLogger)
	if err := refresher.Start(); err != nil {
		logger.WithService("betscope").Fatalf("Failed to start injury refresher: %v", err)
	}
	defer refresher.Stop()

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Initialize handlers
	betHandler := handlers.NewBetHandler(aggregator, structuredLogger)
	gamesHandler := handlers.NewGamesHandler(aggregator, structuredLogger)
	healthHandler := handlers.NewHealthHandler(injuryStore, refresher, structuredLogger)

	// Setup API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/bets/analyze", betHandler.AnalyzeBet)
		apiV1.GET("/games", gamesHandler.ListGames)
		apiV1.GET("/sports", gamesHandler.ListSports)
	}

	// Health check endpoints (support both GET and HEAD)
	router.GET("/health", healthHandler.GetHealth)
	router.HEAD("/health", healthHandler.GetHealth)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.WithService("betscope").WithField("port", cfg.Port).Info("Betscope started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("betscope").Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("betscope").Info("Shutting down Betscope...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("betscope").Fatalf("Betscope forced to shutdown: %v", err)
	}

	logger.WithService("betscope").Info("Betscope exited")
}

// seedTeams flattens the catalog into injury-store team rows.
func seedTeams(catalog *teams.Catalog) []storage.Team {
	var rows []storage.Team
	for _, sport := range models.AllSports() {
		for _, team := range catalog.TeamsForSport(sport) {
			rows = append(rows, storage.Team{
				Name:         team.CanonicalName,
				City:         team.City,
				Abbreviation: team.Abbreviation,
			})
		}
	}
	return rows
}

// logCredentials logs which provider keys are present without exposing
// their values.
func logCredentials(cfg *config.Config) {
	mask := func(key string) string {
		if len(key) <= 4 {
			return "****"
		}
		return key[:4] + "****"
	}
	logger.WithService("betscope").WithFields(logrus.Fields{
		"odds_key":      mask(cfg.OddsAPIKey),
		"weather_key":   mask(cfg.WeatherAPIKey),
		"stats_key":     mask(cfg.StatsAPIKey),
		"narrative_key": mask(cfg.NarrativeAPIKey),
	}).Info("Provider credentials loaded")
}
