package factory

import (
	"errors"

	"github.com/oridashi/scrollhunt/internal/dependencies/clock"
	"github.com/oridashi/scrollhunt/internal/services/gameconfig"
	"github.com/oridashi/scrollhunt/internal/services/leaderboard"
	"github.com/oridashi/scrollhunt/internal/services/operator"
	"github.com/oridashi/scrollhunt/internal/services/registry"
	"github.com/oridashi/scrollhunt/internal/services/scoring"
	"github.com/oridashi/scrollhunt/internal/services/stages"
	"github.com/oridashi/scrollhunt/internal/services/verifier"
	"github.com/oridashi/scrollhunt/internal/storage"
	"github.com/oridashi/scrollhunt/internal/storage/memory"
	redisstorage "github.com/oridashi/scrollhunt/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	StagesService      *stages.Service
	RegistryService    *registry.Service
	VerifierService    *verifier.Service
	ScoringService     *scoring.Service
	LeaderboardService *leaderboard.Service
	ConfigService      *gameconfig.Service
	OperatorService    *operator.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// OperatorKeyHash is the bcrypt hash of the operator key
	// If empty, operator endpoints are disabled
	OperatorKeyHash string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.OperatorKeyHash), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, operatorKeyHash string) *App {
	stagesService := stages.New(store)
	registryService := registry.New(store, clk)
	verifierService := verifier.New(store, stagesService)
	scoringService := scoring.New(store, clk)
	leaderboardService := leaderboard.New(store)
	configService := gameconfig.New(store)
	operatorService := operator.New(operatorKeyHash)

	return &App{
		Storage:            store,
		Clock:              clk,
		StagesService:      stagesService,
		RegistryService:    registryService,
		VerifierService:    verifierService,
		ScoringService:     scoringService,
		LeaderboardService: leaderboardService,
		ConfigService:      configService,
		OperatorService:    operatorService,
	}
}
