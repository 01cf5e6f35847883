package rest

import "net/http"

// Plan handles POST /api/assistant/plan.
func (h *JournalHandler) Plan(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Assistant.GeneratePlan(detached(r), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Analyze handles POST /api/assistant/analyze.
func (h *JournalHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Assistant.AnalyzeWriting(detached(r), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Autocomplete handles POST /api/assistant/autocomplete.
func (h *JournalHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Assistant.AutoComplete(detached(r), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Grammar handles POST /api/assistant/grammar.
func (h *JournalHandler) Grammar(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Assistant.FixGrammar(detached(r), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
