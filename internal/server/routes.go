package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI Page routes (HTML templates)
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/ask", s.app.PageHandler.AskFormHandler)

	// HTML fragments for AJAX refresh
	mux.HandleFunc("/partials/ticker", s.app.PageHandler.TickerPartialHandler)
	mux.HandleFunc("/partials/news", s.app.PageHandler.NewsPartialHandler)

	// API routes - Feed and questions
	mux.HandleFunc("/api/main_feed", s.app.FeedHandler.MainFeedHandler)
	mux.HandleFunc("/api/ask", s.app.AskHandler.AskHandler)
	mux.HandleFunc("/api/daily-brief", s.app.BriefHandler.DailyBriefHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	return mux
}

// handleRoot serves the dashboard on "/" and JSON 404s elsewhere, since the
// bare pattern on ServeMux catches every unmatched path.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.app.APIHandler.NotFoundHandler(w, r)
		return
	}
	s.app.PageHandler.DashboardHandler(w, r)
}
