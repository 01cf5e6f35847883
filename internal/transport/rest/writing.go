package rest

import (
	"net/http"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/service/progress"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

type sessionResponse struct {
	session.Snapshot
	Progress domain.Progress `json:"progress"`
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Text     string          `json:"text"`
	Progress domain.Progress `json:"progress"`
}

// Session handles GET /api/session.
func (h *JournalHandler) Session(w http.ResponseWriter, r *http.Request) {
	snap := h.sess.Snapshot()
	writeJSON(w, http.StatusOK, sessionResponse{
		Snapshot: snap,
		Progress: progress.Compute(snap.Text, snap.Settings.TargetWordCount),
	})
}

// SetText handles PUT /api/text.
func (h *JournalHandler) SetText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Editor.SetText(r.Context(), h.sess, req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: req.Text, Progress: p})
}

// Progress handles GET /api/progress.
func (h *JournalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Progress.Recompute(r.Context(), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
