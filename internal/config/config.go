package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Corpus sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5002"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimit is the per-client request budget per minute on /api routes. 0 disables it.
	RateLimit int `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is only required when the corpus is read from Postgres or when seeding.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// CorpusConfig controls where the verb, conjugation and sentence datasets come from.
type CorpusConfig struct {
	Source string `yaml:"source" env:"CORPUS_SOURCE" env-default:"file"`
	// Dir, when set, is the only directory searched for dataset files.
	Dir              string `yaml:"dir"               env:"CORPUS_DIR"`
	SearchPaths      string `yaml:"search_paths"      env:"CORPUS_SEARCH_PATHS"      env-default:"../dataset,dataset,."`
	VerbsFile        string `yaml:"verbs_file"        env:"CORPUS_VERBS_FILE"        env-default:"verbs.json"`
	ConjugationsFile string `yaml:"conjugations_file" env:"CORPUS_CONJUGATIONS_FILE" env-default:"conjugations.json"`
	SentencesFile    string `yaml:"sentences_file"    env:"CORPUS_SENTENCES_FILE"    env-default:"sentences.json"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Dirs returns the directories searched for dataset files, in priority order.
func (c CorpusConfig) Dirs() []string {
	if c.Dir != "" {
		return []string{filepath.Clean(c.Dir)}
	}
	var dirs []string
	for _, p := range strings.Split(c.SearchPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			dirs = append(dirs, filepath.Clean(p))
		}
	}
	return dirs
}

// UsesPostgres reports whether the corpus is loaded from the database.
func (c CorpusConfig) UsesPostgres() bool {
	return strings.EqualFold(c.Source, SourcePostgres)
}
