package rest

import "net/http"

// NewRouter registers every endpoint on a new mux.
func NewRouter(health *HealthHandler, journal *JournalHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/session", journal.Session)
	mux.HandleFunc("GET /api/settings", journal.GetSettings)
	mux.HandleFunc("PUT /api/settings", journal.SaveSettings)

	mux.HandleFunc("POST /api/topic/refresh", journal.RefreshTopic)
	mux.HandleFunc("POST /api/topic/daily", journal.SelectDaily)
	mux.HandleFunc("POST /api/course/{day}", journal.SelectCourseDay)
	mux.HandleFunc("GET /api/roadmap", journal.Roadmap)

	mux.HandleFunc("PUT /api/text", journal.SetText)
	mux.HandleFunc("GET /api/progress", journal.Progress)

	mux.HandleFunc("POST /api/assistant/plan", journal.Plan)
	mux.HandleFunc("POST /api/assistant/analyze", journal.Analyze)
	mux.HandleFunc("POST /api/assistant/autocomplete", journal.Autocomplete)
	mux.HandleFunc("POST /api/assistant/grammar", journal.Grammar)

	mux.HandleFunc("GET /api/export.xlsx", journal.Export)

	return mux
}
