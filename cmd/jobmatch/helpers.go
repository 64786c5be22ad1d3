package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jmartin/jobmatch/internal/config"
	"github.com/jmartin/jobmatch/internal/logging"
	"github.com/jmartin/jobmatch/internal/matching"
)

// loadConfigFile loads and validates the config file when the path is set.
// An empty path yields the zero config.
func loadConfigFile(path string) (config.Config, error) {
	var cfg config.Config
	if path == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	return *loaded, nil
}

// resolveEnv fills API key and database URL from the environment when the
// config and flags left them empty. Both are optional: without an API key
// the local embedder is used, without a database URL nothing is persisted.
func resolveEnv(cfg *config.Config) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// buildLogger constructs the run logger from config.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// buildWeights converts config weights into scoring weights. All-zero
// config weights select the built-in defaults; a partially set group is
// rejected later by weight validation.
func buildWeights(cfg *config.Config) matching.Weights {
	return matching.Weights{
		Skill:      cfg.SkillWeight,
		Experience: cfg.ExperienceWeight,
		Education:  cfg.EducationWeight,
		Semantic:   cfg.SemanticWeight,
	}
}
