package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmartin/jobmatch/internal/config"
	"github.com/jmartin/jobmatch/internal/embedding"
	"github.com/jmartin/jobmatch/internal/pipeline"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against one job posting",
	Long: `Scores a resume against a single job posting and prints the overall score, the four subscores, matched and missing skills, and strengths and weaknesses.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath     string
	matchResume         string
	matchJob            string
	matchJobURL         string
	matchSkillsFile     string
	matchSkillWeight    float64
	matchExpWeight      float64
	matchEduWeight      float64
	matchSemWeight      float64
	matchAPIKey         string
	matchEmbeddingModel string
	matchUseBrowser     bool
	matchVerbose        bool
	matchJSONLogs       bool
	matchDatabaseURL    string
	matchWriteLetter    bool
	matchLetterTemplate string
	matchLetterOut      string
)

func init() {
	// Config file flag (processed first)
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (JSON, PDF, or plain text)")
	matchCommand.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	matchCommand.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	matchCommand.Flags().StringVar(&matchSkillsFile, "skills", "", "Path to a JSON skill vocabulary file (optional)")
	matchCommand.Flags().Float64Var(&matchSkillWeight, "skill-weight", 0, "Weight of the skill subscore (0 uses the default)")
	matchCommand.Flags().Float64Var(&matchExpWeight, "experience-weight", 0, "Weight of the experience subscore (0 uses the default)")
	matchCommand.Flags().Float64Var(&matchEduWeight, "education-weight", 0, "Weight of the education subscore (0 uses the default)")
	matchCommand.Flags().Float64Var(&matchSemWeight, "semantic-weight", 0, "Weight of the semantic subscore (0 uses the default)")
	matchCommand.Flags().StringVar(&matchEmbeddingModel, "embedding-model", "", "Gemini embedding model name (optional)")
	matchCommand.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")
	matchCommand.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON instead of console lines")
	matchCommand.Flags().BoolVar(&matchWriteLetter, "write-letter", false, "Render a cover letter draft from the match report")
	matchCommand.Flags().StringVar(&matchLetterTemplate, "letter-template", "", "Path to a custom cover letter template (optional)")
	matchCommand.Flags().StringVar(&matchLetterOut, "letter-out", "", "File to write the cover letter to (default: stdout)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for report persistence
	matchCommand.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	cfg, err := loadConfigFile(matchConfigPath)
	if err != nil {
		return err
	}
	if matchConfigPath != "" && matchVerbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", matchConfigPath)
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = matchJobURL
	}
	if cmd.Flags().Changed("skills") {
		cfg.SkillsFile = matchSkillsFile
	}
	if cmd.Flags().Changed("skill-weight") {
		cfg.SkillWeight = matchSkillWeight
	}
	if cmd.Flags().Changed("experience-weight") {
		cfg.ExperienceWeight = matchExpWeight
	}
	if cmd.Flags().Changed("education-weight") {
		cfg.EducationWeight = matchEduWeight
	}
	if cmd.Flags().Changed("semantic-weight") {
		cfg.SemanticWeight = matchSemWeight
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = matchEmbeddingModel
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = matchUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = matchJSONLogs
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}

	// Step 3: Validate required fields after merging
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 4: Apply defaults for unset values, then the environment
	defaults := config.Config{
		EmbeddingModel: embedding.DefaultModel,
	}
	cfg = cfg.MergeWithDefaults(defaults)
	resolveEnv(&cfg)

	logger, err := buildLogger(&cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := pipeline.RunOptions{
		ResumePath:     cfg.Resume,
		JobPath:        cfg.Job,
		JobURL:         cfg.JobURL,
		SkillsFile:     cfg.SkillsFile,
		Weights:        buildWeights(&cfg),
		APIKey:         cfg.APIKey,
		EmbeddingModel: cfg.EmbeddingModel,
		UseBrowser:     cfg.UseBrowser,
		DatabaseURL:    cfg.DatabaseURL,
		WriteLetter:    matchWriteLetter,
		LetterTemplate: matchLetterTemplate,
		LetterOut:      matchLetterOut,
		Logger:         logger,
	}

	return pipeline.RunMatch(ctx, opts)
}
