package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oridashi/scrollhunt/internal/api/apierr"
	"github.com/oridashi/scrollhunt/internal/api/request"
	"github.com/oridashi/scrollhunt/internal/api/response"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/registry"
	"github.com/oridashi/scrollhunt/internal/services/verifier"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	registryService *registry.Service
	verifierService *verifier.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(registryService *registry.Service, verifierService *verifier.Service) *PlayerHandler {
	return &PlayerHandler{
		registryService: registryService,
		verifierService: verifierService,
	}
}

// Register handles POST /api/v1/players/register
//
// Registration is idempotent by name: resubmitting a taken name resumes the
// existing player instead of creating a duplicate.
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	state, err := h.registryService.RegisterOrResume(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStateFromModel(state))
}

// GetState handles GET /api/v1/players/{player_id}
func (h *PlayerHandler) GetState(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	state, err := h.registryService.GetState(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStateFromModel(state))
}

// FirstLetters handles GET /api/v1/players/{player_id}/first-letters
func (h *PlayerHandler) FirstLetters(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	letters, err := h.verifierService.FirstLetters(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StageLettersFromModel(letters))
}
