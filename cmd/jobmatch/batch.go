package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmartin/jobmatch/internal/config"
	"github.com/jmartin/jobmatch/internal/embedding"
	"github.com/jmartin/jobmatch/internal/pipeline"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Score one resume against every job posting in a directory",
	Long:  "Scores a resume against each .txt or .md file in a directory and prints a ranking of the jobs at or above the minimum score, best first.",
	RunE:  runBatchCmd,
}

var (
	batchConfigPath  string
	batchResume      string
	batchJobsDir     string
	batchSkillsFile  string
	batchMinScore    float64
	batchAPIKey      string
	batchModel       string
	batchVerbose     bool
	batchJSONLogs    bool
	batchDatabaseURL string
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to resume file (JSON, PDF, or plain text)")
	batchCommand.Flags().StringVarP(&batchJobsDir, "jobs-dir", "d", "", "Directory of job posting files (.txt or .md)")
	batchCommand.Flags().StringVar(&batchSkillsFile, "skills", "", "Path to a JSON skill vocabulary file (optional)")
	batchCommand.Flags().Float64Var(&batchMinScore, "min-score", 0, "Only report jobs at or above this score (0-100)")
	batchCommand.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	batchCommand.Flags().StringVar(&batchModel, "embedding-model", "", "Gemini embedding model name (optional)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCommand.Flags().BoolVar(&batchJSONLogs, "json-logs", false, "Emit logs as JSON instead of console lines")
	batchCommand.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfigFile(batchConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = batchResume
	}
	if cmd.Flags().Changed("jobs-dir") {
		cfg.JobsDir = batchJobsDir
	}
	if cmd.Flags().Changed("skills") {
		cfg.SkillsFile = batchSkillsFile
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = batchMinScore
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = batchModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = batchJSONLogs
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.JobsDir == "" {
		return fmt.Errorf("--jobs-dir is required (via flag or config)")
	}
	if cfg.MinScore < 0 || cfg.MinScore > 100 {
		return fmt.Errorf("--min-score must be between 0 and 100")
	}

	cfg = cfg.MergeWithDefaults(config.Config{EmbeddingModel: embedding.DefaultModel})
	resolveEnv(&cfg)

	logger, err := buildLogger(&cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := pipeline.RunOptions{
		ResumePath:     cfg.Resume,
		JobsDir:        cfg.JobsDir,
		SkillsFile:     cfg.SkillsFile,
		Weights:        buildWeights(&cfg),
		APIKey:         cfg.APIKey,
		EmbeddingModel: cfg.EmbeddingModel,
		MinScore:       cfg.MinScore,
		DatabaseURL:    cfg.DatabaseURL,
		Logger:         logger,
	}

	return pipeline.RunBatch(ctx, opts)
}
