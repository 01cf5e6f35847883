// Package session holds the state of the one writing session a process
// serves: settings, the active topic and the ephemeral assistant results.
// It is built once at startup and passed to every service call.
package session

import (
	"sort"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// Op names an operation kind that carries its own busy flag.
type Op string

const (
	OpRefresh      Op = "refresh"
	OpPlan         Op = "plan"
	OpAnalyze      Op = "analyze"
	OpAutocomplete Op = "autocomplete"
	OpGrammar      Op = "grammar"
)

// Session is safe for concurrent use. Services never hold its lock across
// network calls; they read, call out, then apply through a setter.
type Session struct {
	mu       sync.Mutex
	settings domain.Settings
	topic    *domain.Topic
	loading  bool
	text     string
	plan     string
	analysis *domain.AnalysisResult
	busy     map[Op]bool
}

// New creates a session with no active topic.
func New(settings domain.Settings) *Session {
	return &Session{
		settings: settings,
		busy:     make(map[Op]bool),
	}
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	Settings domain.Settings        `json:"settings"`
	Topic    *domain.Topic          `json:"topic"`
	Loading  bool                   `json:"loading"`
	Text     string                 `json:"text"`
	Plan     string                 `json:"plan,omitempty"`
	Analysis *domain.AnalysisResult `json:"analysis,omitempty"`
	Busy     []Op                   `json:"busy"`
}

// TopicKey returns the identity key of the snapshot's topic, or "".
func (s Snapshot) TopicKey() string {
	if s.Topic == nil {
		return ""
	}
	return s.Topic.IdentityKey
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Settings: s.settings,
		Loading:  s.loading,
		Text:     s.text,
		Plan:     s.plan,
		Busy:     make([]Op, 0, len(s.busy)),
	}
	if s.topic != nil {
		t := *s.topic
		snap.Topic = &t
	}
	if s.analysis != nil {
		a := *s.analysis
		snap.Analysis = &a
	}
	for op, on := range s.busy {
		if on {
			snap.Busy = append(snap.Busy, op)
		}
	}
	sort.Slice(snap.Busy, func(i, j int) bool { return snap.Busy[i] < snap.Busy[j] })
	return snap
}

// Settings returns the current settings.
func (s *Session) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings replaces the settings.
func (s *Session) SetSettings(settings domain.Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// Topic returns the active topic.
func (s *Session) Topic() (domain.Topic, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.topic == nil {
		return domain.Topic{}, false
	}
	return *s.topic, true
}

// TopicKey returns the identity key of the active topic, or "".
func (s *Session) TopicKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.topic == nil {
		return ""
	}
	return s.topic.IdentityKey
}

// SetLoading sets the topic loading flag.
func (s *Session) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// SwitchTopic makes t active with text as the current text and drops the
// plan and analysis, which belong to the previous topic.
func (s *Session) SwitchTopic(t domain.Topic, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = &t
	s.text = text
	s.plan = ""
	s.analysis = nil
}

// ReplaceTopic swaps the topic value without touching text or results.
// It is for a topic with the same identity key as the active one.
func (s *Session) ReplaceTopic(t domain.Topic) {
	s.mu.Lock()
	s.topic = &t
	s.mu.Unlock()
}

// SetText replaces the current text and returns the active topic key.
func (s *Session) SetText(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	if s.topic == nil {
		return ""
	}
	return s.topic.IdentityKey
}

// The *For setters apply a result only while topicKey is still active. They
// report whether the result was applied.

// SetTextFor replaces the text if topicKey is active.
func (s *Session) SetTextFor(topicKey, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.activeLocked(topicKey) {
		return false
	}
	s.text = text
	return true
}

// SetPlanFor replaces the plan if topicKey is active.
func (s *Session) SetPlanFor(topicKey, plan string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.activeLocked(topicKey) {
		return false
	}
	s.plan = plan
	return true
}

// SetAnalysisFor replaces the analysis if topicKey is active.
func (s *Session) SetAnalysisFor(topicKey string, r domain.AnalysisResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.activeLocked(topicKey) {
		return false
	}
	s.analysis = &r
	return true
}

func (s *Session) activeLocked(topicKey string) bool {
	return s.topic != nil && s.topic.IdentityKey == topicKey
}

// TryBegin sets the busy flag for op. It returns false if op is already busy.
func (s *Session) TryBegin(op Op) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[op] {
		return false
	}
	s.busy[op] = true
	return true
}

// End clears the busy flag for op.
func (s *Session) End(op Op) {
	s.mu.Lock()
	delete(s.busy, op)
	s.mu.Unlock()
}

// Busy reports whether op is in flight.
func (s *Session) Busy(op Op) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[op]
}
