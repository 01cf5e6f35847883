package rest

import (
	"net/http"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/service/settings"
)

type settingsResponse struct {
	Settings domain.Settings  `json:"settings"`
	Progress *domain.Progress `json:"progress,omitempty"`
}

// GetSettings handles GET /api/settings.
func (h *JournalHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, settingsResponse{Settings: h.svc.Settings.Get(h.sess)})
}

// SaveSettings handles PUT /api/settings.
func (h *JournalHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var in settings.SaveInput
	if !decodeJSON(w, r, &in) {
		return
	}

	saved, p, err := h.svc.Settings.Save(r.Context(), h.sess, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{Settings: saved, Progress: &p})
}
