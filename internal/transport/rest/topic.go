package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// topicResponse carries the newly active topic and the draft restored for it.
type topicResponse struct {
	Topic domain.Topic `json:"topic"`
	Text  string       `json:"text"`
}

// RefreshTopic handles POST /api/topic/refresh.
func (h *JournalHandler) RefreshTopic(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Topics.RefreshDailyTopic(detached(r), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SelectDaily handles POST /api/topic/daily.
func (h *JournalHandler) SelectDaily(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Topics.SelectDaily(detached(r), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topicResponse{Topic: t, Text: h.sess.Snapshot().Text})
}

// SelectCourseDay handles POST /api/course/{day}.
func (h *JournalHandler) SelectCourseDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || day <= 0 {
		writeError(w, http.StatusBadRequest, "day must be a positive integer")
		return
	}

	t, err := h.svc.Topics.SelectCourseDay(detached(r), h.sess, day)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topicResponse{Topic: t, Text: h.sess.Snapshot().Text})
}

// Roadmap handles GET /api/roadmap.
func (h *JournalHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	rm, err := h.svc.Topics.Roadmap(r.Context(), h.sess)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}
