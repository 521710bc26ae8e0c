package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/common"
	"github.com/ternarybob/finflow/internal/interfaces"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/pages"
	"github.com/ternarybob/finflow/internal/render"
)

const feedUnavailableMessage = "Failed to load data."

// PageHandler serves the server-rendered dashboard and its HTML fragments.
type PageHandler struct {
	feedService interfaces.FeedService
	askService  interfaces.AskService
	templates   *pages.Templates
	logger      arbor.ILogger
}

func NewPageHandler(feedService interfaces.FeedService, askService interfaces.AskService, templates *pages.Templates, logger arbor.ILogger) *PageHandler {
	return &PageHandler{
		feedService: feedService,
		askService:  askService,
		templates:   templates,
		logger:      logger,
	}
}

type dashboardData struct {
	Version string
	Ticker  template.HTML
	News    template.HTML
	Answer  string
}

// DashboardHandler handles GET /
func (h *PageHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}
	h.renderDashboard(w, r, "")
}

// AskFormHandler handles POST /ask from the dashboard form and re-renders the
// page with the answer filled in.
func (h *PageHandler) AskFormHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	if question == "" {
		h.renderDashboard(w, r, "")
		return
	}

	answer, err := h.askService.Ask(r.Context(), question)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Ask form submission failed")
		h.renderDashboard(w, r, "Sorry, an error occurred. Please try again.")
		return
	}
	h.renderDashboard(w, r, answer)
}

func (h *PageHandler) renderDashboard(w http.ResponseWriter, r *http.Request, answer string) {
	data := dashboardData{
		Version: common.GetVersion(),
		Answer:  answer,
	}

	feed, err := h.feedService.MainFeed(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to build main feed for page")
		data.Ticker = template.HTML(render.Ticker(nil))
		data.News = template.HTML(render.MessageView(feedUnavailableMessage))
	} else {
		data.Ticker = template.HTML(render.Ticker(feed.Stocks))
		data.News = template.HTML(render.NewsCards(feed.News))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "dashboard.html", data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to render dashboard")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// TickerPartialHandler handles GET /partials/ticker
func (h *PageHandler) TickerPartialHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	stocks := map[string]models.StockQuote{}
	if feed, err := h.feedService.MainFeed(r.Context()); err == nil {
		stocks = feed.Stocks
	} else {
		h.logger.Warn().Err(err).Msg("Failed to build ticker partial")
	}
	WriteHTML(w, http.StatusOK, render.Ticker(stocks))
}

// NewsPartialHandler handles GET /partials/news
func (h *PageHandler) NewsPartialHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	feed, err := h.feedService.MainFeed(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to build news partial")
		WriteHTML(w, http.StatusOK, render.MessageView(feedUnavailableMessage))
		return
	}
	WriteHTML(w, http.StatusOK, render.NewsCards(feed.News))
}
