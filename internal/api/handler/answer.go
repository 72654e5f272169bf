package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oridashi/scrollhunt/internal/api/apierr"
	"github.com/oridashi/scrollhunt/internal/api/request"
	"github.com/oridashi/scrollhunt/internal/api/response"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/verifier"
)

// AnswerHandler handles answer and access-code verification endpoints
type AnswerHandler struct {
	verifierService *verifier.Service
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(verifierService *verifier.Service) *AnswerHandler {
	return &AnswerHandler{
		verifierService: verifierService,
	}
}

// CheckAnswer handles POST /api/v1/answers/check
//
// A wrong answer is a 200 with correct=false, never an error status.
func (h *AnswerHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req request.CheckAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	result, err := h.verifierService.CheckAnswer(
		r.Context(),
		model.PlayerID(req.PlayerID),
		model.StageID(req.StageID),
		req.Answer,
	)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CheckAnswerFromResult(result))
}

// CheckAccessCode handles POST /api/v1/access-codes/check
func (h *AnswerHandler) CheckAccessCode(w http.ResponseWriter, r *http.Request) {
	var req request.CheckAccessCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	valid, err := h.verifierService.CheckAccessCode(
		r.Context(),
		model.PlayerID(req.PlayerID),
		model.StageID(req.StageID),
		req.Code,
	)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccessCode{Valid: valid})
}
