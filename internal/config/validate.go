package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	if err := c.Corpus.validate(); err != nil {
		return fmt.Errorf("corpus: %w", err)
	}

	if c.Corpus.UsesPostgres() && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when corpus.source is %q", SourcePostgres)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (c *CorpusConfig) validate() error {
	switch strings.ToLower(c.Source) {
	case SourceFile:
		if len(c.Dirs()) == 0 {
			return fmt.Errorf("search_paths must name at least one directory")
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", SourceFile, SourcePostgres, c.Source)
	}

	for name, file := range map[string]string{
		"verbs_file":        c.VerbsFile,
		"conjugations_file": c.ConjugationsFile,
		"sentences_file":    c.SentencesFile,
	} {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
