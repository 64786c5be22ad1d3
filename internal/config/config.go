// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume     string `json:"resume,omitempty"`      // Path to the resume file (JSON, PDF, or plain text)
	Job        string `json:"job,omitempty"`         // Path to job posting text file
	JobURL     string `json:"job_url,omitempty"`     // URL to fetch job posting from
	JobsDir    string `json:"jobs_dir,omitempty"`    // Directory of job posting files for batch scoring
	SkillsFile string `json:"skills_file,omitempty"` // Path to a JSON skill vocabulary file

	// Scoring weights; zero means use the built-in default for that component.
	SkillWeight      float64 `json:"skill_weight,omitempty"`
	ExperienceWeight float64 `json:"experience_weight,omitempty"`
	EducationWeight  float64 `json:"education_weight,omitempty"`
	SemanticWeight   float64 `json:"semantic_weight,omitempty"`

	// Behavior
	APIKey         string  `json:"api_key,omitempty"`         // Gemini API key for semantic embeddings
	EmbeddingModel string  `json:"embedding_model,omitempty"` // Gemini embedding model name
	MinScore       float64 `json:"min_score,omitempty"`       // Batch mode: only report jobs at or above this score
	UseBrowser     bool    `json:"use_browser,omitempty"`     // Use headless browser for SPA sites
	Verbose        bool    `json:"verbose,omitempty"`         // Print detailed debug information
	JSONLogs       bool    `json:"json_logs,omitempty"`       // Emit logs as JSON instead of console lines
	DatabaseURL    string  `json:"database_url,omitempty"`    // PostgreSQL connection URL for report storage
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.JobsDir != "" && (c.Job != "" || c.JobURL != "") {
		return fmt.Errorf("config error: 'jobs_dir' cannot be combined with 'job' or 'job_url'")
	}

	// Validate numeric ranges
	for name, w := range map[string]float64{
		"skill_weight":      c.SkillWeight,
		"experience_weight": c.ExperienceWeight,
		"education_weight":  c.EducationWeight,
		"semantic_weight":   c.SemanticWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be between 0 and 1", name)
		}
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.JobsDir == "" {
		result.JobsDir = defaults.JobsDir
	}
	if result.SkillsFile == "" {
		result.SkillsFile = defaults.SkillsFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Float fields: use default if zero
	if result.SkillWeight == 0 {
		result.SkillWeight = defaults.SkillWeight
	}
	if result.ExperienceWeight == 0 {
		result.ExperienceWeight = defaults.ExperienceWeight
	}
	if result.EducationWeight == 0 {
		result.EducationWeight = defaults.EducationWeight
	}
	if result.SemanticWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
