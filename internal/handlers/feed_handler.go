package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
)

// FeedHandler serves the combined news and stock feed.
type FeedHandler struct {
	feedService interfaces.FeedService
	logger      arbor.ILogger
}

func NewFeedHandler(feedService interfaces.FeedService, logger arbor.ILogger) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		logger:      logger,
	}
}

// MainFeedHandler handles GET /api/main_feed
func (h *FeedHandler) MainFeedHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	data, err := h.feedService.MainFeed(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to build main feed")
		WriteError(w, http.StatusInternalServerError, "Failed to load data.")
		return
	}

	WriteJSON(w, http.StatusOK, models.FeedEnvelope{
		Status: models.StatusSuccess,
		Data:   data,
	})
}
