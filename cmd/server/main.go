package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oridashi/scrollhunt/internal/api"
	"github.com/oridashi/scrollhunt/internal/factory"
	"github.com/oridashi/scrollhunt/internal/model"
	redisstorage "github.com/oridashi/scrollhunt/internal/storage/redis"
)

func main() {
	// Load .env if present; real environment wins
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		StorageType:     os.Getenv("STORAGE_TYPE"),
		OperatorKeyHash: os.Getenv("OPERATOR_KEY_HASH"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load stage definitions
	stagesPath := os.Getenv("STAGES_PATH")
	if stagesPath == "" {
		stagesPath = "data/stages.json"
	}
	if err := app.StagesService.LoadFromFile(ctx, stagesPath); err != nil {
		// A Redis-backed instance may have been seeded by another replica
		if storageErr := app.StagesService.LoadFromStorage(ctx); storageErr != nil {
			logger.Error("could not load stage definitions",
				slog.String("path", stagesPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	logger.Info("stage definitions loaded", slog.Int("stages", len(app.StagesService.All())))

	// Seed game config from environment if the operator has not set one yet
	if err := seedGameConfig(ctx, app, logger); err != nil {
		logger.Error("failed to seed game config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		RegistryService:    app.RegistryService,
		VerifierService:    app.VerifierService,
		ScoringService:     app.ScoringService,
		LeaderboardService: app.LeaderboardService,
		ConfigService:      app.ConfigService,
		OperatorService:    app.OperatorService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			serverConfig.Port = n
		}
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// seedGameConfig bootstraps the game config from GAME_OPEN_TIME, MAX_POINTS
// and POINT_DECAY_PER_MINUTE. It never overwrites a config already in storage.
func seedGameConfig(ctx context.Context, app *factory.App, logger *slog.Logger) error {
	openTimeStr := os.Getenv("GAME_OPEN_TIME")
	if openTimeStr == "" {
		return nil
	}

	openTime, err := time.Parse(time.RFC3339, openTimeStr)
	if err != nil {
		return err
	}

	maxPoints := 1000
	if v := os.Getenv("MAX_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxPoints = n
		}
	}

	decay := 10
	if v := os.Getenv("POINT_DECAY_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			decay = n
		}
	}

	cfg := &model.GameConfig{
		GameOpenTime:        openTime,
		MaxPoints:           maxPoints,
		PointDecayPerMinute: decay,
	}
	if err := app.ConfigService.SetIfUnset(ctx, cfg); err != nil {
		return err
	}

	logger.Info("game config seeded",
		slog.Time("game_open_time", openTime),
		slog.Int("max_points", maxPoints),
		slog.Int("point_decay_per_minute", decay),
	)
	return nil
}
