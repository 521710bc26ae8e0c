package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/services/ask"
)

// AskHandler answers free-form questions about the current feed.
type AskHandler struct {
	askService interfaces.AskService
	logger     arbor.ILogger
}

func NewAskHandler(askService interfaces.AskService, logger arbor.ILogger) *AskHandler {
	return &AskHandler{
		askService: askService,
		logger:     logger,
	}
}

// AskHandler handles POST /api/ask
func (h *AskHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		WriteError(w, http.StatusBadRequest, "Question is required")
		return
	}

	answer, err := h.askService.Ask(r.Context(), question)
	if err != nil {
		if errors.Is(err, ask.ErrUnavailable) {
			WriteError(w, http.StatusServiceUnavailable, "AI assistant is not configured")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to answer question")
		WriteError(w, http.StatusInternalServerError, "Failed to process question")
		return
	}

	WriteJSON(w, http.StatusOK, models.AskEnvelope{
		Status: models.StatusSuccess,
		Answer: answer,
	})
}
