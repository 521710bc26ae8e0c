package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/services/brief"
)

// BriefHandler serves the AI-generated daily market briefing.
type BriefHandler struct {
	briefService interfaces.BriefService
	logger       arbor.ILogger
}

func NewBriefHandler(briefService interfaces.BriefService, logger arbor.ILogger) *BriefHandler {
	return &BriefHandler{
		briefService: briefService,
		logger:       logger,
	}
}

// DailyBriefHandler handles GET /api/daily-brief
func (h *BriefHandler) DailyBriefHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	assets := splitAssets(r.URL.Query().Get("assets"))

	result, err := h.briefService.Generate(r.Context(), assets)
	if err != nil {
		if errors.Is(err, brief.ErrUnavailable) {
			WriteError(w, http.StatusServiceUnavailable, "AI briefing is not configured")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to generate daily brief")
		WriteError(w, http.StatusInternalServerError, "Failed to generate daily brief")
		return
	}

	WriteJSON(w, http.StatusOK, models.BriefEnvelope{
		Status: models.StatusSuccess,
		Data:   result,
	})
}

func splitAssets(raw string) []string {
	var assets []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			assets = append(assets, part)
		}
	}
	return assets
}
