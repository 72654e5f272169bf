package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oridashi/scrollhunt/internal/api/apierr"
	"github.com/oridashi/scrollhunt/internal/api/request"
	"github.com/oridashi/scrollhunt/internal/api/response"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/leaderboard"
	"github.com/oridashi/scrollhunt/internal/services/scoring"
)

// CompletionHandler handles completion and leaderboard endpoints
type CompletionHandler struct {
	scoringService     *scoring.Service
	leaderboardService *leaderboard.Service
}

// NewCompletionHandler creates a new completion handler
func NewCompletionHandler(scoringService *scoring.Service, leaderboardService *leaderboard.Service) *CompletionHandler {
	return &CompletionHandler{
		scoringService:     scoringService,
		leaderboardService: leaderboardService,
	}
}

// Submit handles POST /api/v1/completions
//
// Resubmission returns the originally recorded score and elapsed time
// unchanged, so clients may retry blindly on timeout.
func (h *CompletionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	completion, err := h.scoringService.SubmitCompletion(r.Context(), model.PlayerID(req.PlayerID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompletionFromModel(completion))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *CompletionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.Get(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}
