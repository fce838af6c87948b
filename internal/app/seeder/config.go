package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	// DatasetDir overrides corpus.dir/search_paths when set.
	DatasetDir string `yaml:"dataset_dir" env:"SEEDER_DATASET_DIR"`
	BatchSize  int    `yaml:"batch_size"  env:"SEEDER_BATCH_SIZE" env-default:"500"`
	DryRun     bool   `yaml:"dry_run"     env:"SEEDER_DRY_RUN"`
	// Replace truncates the corpus tables before inserting, in one transaction.
	Replace bool `yaml:"replace" env:"SEEDER_REPLACE"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
