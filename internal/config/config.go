package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Writing   WritingConfig   `yaml:"writing"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// Store drivers.
const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// CORSConfig holds CORS settings for the browser front end.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteTimeout of zero leaves slow model calls unbounded on the server side.
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"0s"`
}

// StoreConfig selects the content store backend.
type StoreConfig struct {
	Driver     string `yaml:"driver"      env:"STORE_DRIVER"      env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"./data/journal.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. Used only by the postgres store driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LLMConfig holds the provider defaults. Which provider is used is a user setting.
type LLMConfig struct {
	HostedAPIKey    string `yaml:"hosted_api_key"    env:"ANTHROPIC_API_KEY"`
	HostedModel     string `yaml:"hosted_model"      env:"LLM_HOSTED_MODEL"      env-default:"claude-sonnet-4-5"`
	HostedMaxTokens int64  `yaml:"hosted_max_tokens" env:"LLM_HOSTED_MAX_TOKENS" env-default:"2048"`
	LocalEndpoint   string `yaml:"local_endpoint"    env:"LLM_LOCAL_ENDPOINT"    env-default:"http://localhost:11434"`
	LocalModel      string `yaml:"local_model"       env:"LLM_LOCAL_MODEL"       env-default:"llama3"`
	// RequestTimeout bounds a single provider call. Zero means no timeout.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LLM_REQUEST_TIMEOUT" env-default:"0s"`
}

// HostedAvailable reports whether the hosted provider has credentials.
func (c LLMConfig) HostedAvailable() bool {
	return c.HostedAPIKey != ""
}

// WritingConfig holds editor and assistant thresholds.
type WritingConfig struct {
	DefaultTargetWords int `yaml:"default_target_words"  env:"WRITING_DEFAULT_TARGET_WORDS"  env-default:"700"`
	AnalyzeMinChars    int `yaml:"analyze_min_chars"     env:"WRITING_ANALYZE_MIN_CHARS"     env-default:"50"`
	GrammarMinChars    int `yaml:"grammar_min_chars"     env:"WRITING_GRAMMAR_MIN_CHARS"     env-default:"10"`
	CompletionContext  int `yaml:"completion_context"    env:"WRITING_COMPLETION_CONTEXT"    env-default:"1000"`
}

// SchedulerConfig controls the daily topic pre-warm job.
type SchedulerConfig struct {
	Enabled   bool   `yaml:"enabled"    env:"SCHEDULER_ENABLED"    env-default:"true"`
	PrewarmAt string `yaml:"prewarm_at" env:"SCHEDULER_PREWARM_AT" env-default:"00:05"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
