package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks cross-field rules that struct tags cannot express.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if c.Store.Driver == StoreDriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the postgres store driver")
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Writing.validate(); err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	if c.Scheduler.Enabled {
		if _, err := ParseClock(c.Scheduler.PrewarmAt); err != nil {
			return fmt.Errorf("scheduler.prewarm_at: %w", err)
		}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}
	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case StoreDriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if l.LocalEndpoint != "" {
		u, err := url.Parse(l.LocalEndpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("local_endpoint must be an absolute URL (got %q)", l.LocalEndpoint)
		}
	}
	if l.HostedMaxTokens <= 0 {
		return fmt.Errorf("hosted_max_tokens must be > 0 (got %d)", l.HostedMaxTokens)
	}
	if l.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be >= 0 (got %s)", l.RequestTimeout)
	}
	return nil
}

func (w *WritingConfig) validate() error {
	if w.DefaultTargetWords <= 0 {
		return fmt.Errorf("default_target_words must be > 0 (got %d)", w.DefaultTargetWords)
	}
	if w.AnalyzeMinChars < 0 || w.GrammarMinChars < 0 {
		return fmt.Errorf("minimum lengths must be >= 0")
	}
	if w.CompletionContext <= 0 {
		return fmt.Errorf("completion_context must be > 0 (got %d)", w.CompletionContext)
	}
	return nil
}

// ParseClock parses a wall clock time in "HH:MM" form and returns the offset
// from midnight.
func ParseClock(raw string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", raw)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
