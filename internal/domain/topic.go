package domain

import (
	"strconv"
	"time"
)

const (
	courseKeyPrefix = "course-"
	dailyKeyLayout  = "2006-01-02"
)

// VocabularyEntry is one word suggested alongside a topic.
type VocabularyEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Topic is a writing prompt: either a generated daily topic or a course day.
// A topic is replaced wholesale, never mutated in place.
type Topic struct {
	IdentityKey string            `json:"identityKey"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Focus       string            `json:"focus,omitempty"`
	Vocabulary  []VocabularyEntry `json:"vocabulary"`
	// CourseDay is the 1-based course day number; zero for daily topics.
	CourseDay int `json:"courseDay,omitempty"`
}

// IsCourseTopic reports whether the topic comes from the course catalog.
func (t Topic) IsCourseTopic() bool { return t.CourseDay > 0 }

// Kind returns the topic kind derived from CourseDay.
func (t Topic) Kind() TopicKind {
	if t.IsCourseTopic() {
		return TopicKindCourse
	}
	return TopicKindDaily
}

// DailyKey returns the identity key of the daily topic for the calendar day of t.
// The caller's clock decides the day; no timezone conversion happens here.
func DailyKey(t time.Time) string {
	return t.Format(dailyKeyLayout)
}

// CourseKey returns the identity key of a course day.
func CourseKey(day int) string {
	return courseKeyPrefix + strconv.Itoa(day)
}

// ParseCourseKey extracts the day number from a course identity key.
func ParseCourseKey(key string) (int, bool) {
	if len(key) <= len(courseKeyPrefix) || key[:len(courseKeyPrefix)] != courseKeyPrefix {
		return 0, false
	}
	day, err := strconv.Atoi(key[len(courseKeyPrefix):])
	if err != nil || day <= 0 {
		return 0, false
	}
	return day, true
}
