package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oridashi/scrollhunt/internal/api/apierr"
	"github.com/oridashi/scrollhunt/internal/api/request"
	"github.com/oridashi/scrollhunt/internal/api/response"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/services/gameconfig"
)

// ConfigHandler handles game config endpoints
type ConfigHandler struct {
	configService *gameconfig.Service
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService *gameconfig.Service) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// Get handles GET /api/v1/config
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.Get(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameConfigFromModel(cfg))
}

// Update handles PUT /api/v1/admin/config (operator only)
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	cfg := &model.GameConfig{
		GameOpenTime:        req.GameOpenTime,
		MaxPoints:           req.MaxPoints,
		PointDecayPerMinute: req.PointDecayPerMinute,
	}

	if err := h.configService.Set(r.Context(), cfg); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
