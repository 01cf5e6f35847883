package topic

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/lexicon-journal/internal/session"
)

// RoadmapDay is one course day as shown on the roadmap.
type RoadmapDay struct {
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Focus     string `json:"focus"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// Roadmap is the course overview.
type Roadmap struct {
	Days       []RoadmapDay `json:"days"`
	Completed  int          `json:"completed"`
	Total      int          `json:"total"`
	CurrentDay int          `json:"currentDay,omitempty"`
}

// Roadmap lists every course day with its completion state. The current day
// is the active course day, else the last one the user selected.
func (s *Service) Roadmap(ctx context.Context, sess *session.Session) (Roadmap, error) {
	done, err := s.store.CompletedDays(ctx)
	if err != nil {
		return Roadmap{}, err
	}

	current := 0
	if t, ok := sess.Topic(); ok && t.IsCourseTopic() {
		current = t.CourseDay
	} else {
		raw, err := s.store.Preference(ctx, PrefCurrentDay)
		if err != nil {
			s.log.WarnContext(ctx, "read current course day", slog.String("error", err.Error()))
		} else if n, convErr := strconv.Atoi(raw); convErr == nil {
			current = n
		}
	}

	days := s.catalog.All()
	rm := Roadmap{
		Days:  make([]RoadmapDay, 0, len(days)),
		Total: len(days),
	}
	for _, d := range days {
		completed := done.Contains(d.Number)
		if completed {
			rm.Completed++
		}
		if d.Number == current {
			rm.CurrentDay = current
		}
		rm.Days = append(rm.Days, RoadmapDay{
			Day:       d.Number,
			Title:     d.Title,
			Focus:     d.Focus,
			Completed: completed,
			Current:   d.Number == current,
		})
	}
	return rm, nil
}
