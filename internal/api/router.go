package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oridashi/scrollhunt/internal/api/handler"
	"github.com/oridashi/scrollhunt/internal/api/middleware"
	"github.com/oridashi/scrollhunt/internal/services/gameconfig"
	"github.com/oridashi/scrollhunt/internal/services/leaderboard"
	"github.com/oridashi/scrollhunt/internal/services/operator"
	"github.com/oridashi/scrollhunt/internal/services/registry"
	"github.com/oridashi/scrollhunt/internal/services/scoring"
	"github.com/oridashi/scrollhunt/internal/services/verifier"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	RegistryService    *registry.Service
	VerifierService    *verifier.Service
	ScoringService     *scoring.Service
	LeaderboardService *leaderboard.Service
	ConfigService      *gameconfig.Service
	OperatorService    *operator.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RegistryService, cfg.VerifierService)
	answerHandler := handler.NewAnswerHandler(cfg.VerifierService)
	completionHandler := handler.NewCompletionHandler(cfg.ScoringService, cfg.LeaderboardService)
	configHandler := handler.NewConfigHandler(cfg.ConfigService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	operatorMiddleware := middleware.Operator(cfg.OperatorService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}", playerHandler.GetState).Methods(http.MethodGet)
	api.HandleFunc("/players/{player_id}/first-letters", playerHandler.FirstLetters).Methods(http.MethodGet)

	// Answer routes
	api.HandleFunc("/answers/check", answerHandler.CheckAnswer).Methods(http.MethodPost)
	api.HandleFunc("/access-codes/check", answerHandler.CheckAccessCode).Methods(http.MethodPost)

	// Completion and leaderboard routes
	api.HandleFunc("/completions", completionHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", completionHandler.Leaderboard).Methods(http.MethodGet)

	// Config routes
	api.HandleFunc("/config", configHandler.Get).Methods(http.MethodGet)

	// Operator routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(operatorMiddleware)
	admin.HandleFunc("/config", configHandler.Update).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
