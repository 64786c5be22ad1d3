// Package pipeline orchestrates resume loading, job ingestion, feature
// extraction, and scoring into complete CLI runs.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jmartin/jobmatch/internal/coverletter"
	"github.com/jmartin/jobmatch/internal/db"
	"github.com/jmartin/jobmatch/internal/embedding"
	"github.com/jmartin/jobmatch/internal/extraction"
	"github.com/jmartin/jobmatch/internal/fetch"
	"github.com/jmartin/jobmatch/internal/ingestion"
	"github.com/jmartin/jobmatch/internal/logging"
	"github.com/jmartin/jobmatch/internal/matching"
	"github.com/jmartin/jobmatch/internal/observability"
	"github.com/jmartin/jobmatch/internal/resume"
	"github.com/jmartin/jobmatch/internal/types"
	"github.com/jmartin/jobmatch/internal/vocab"
)

// batchConcurrency bounds how many jobs are scored at once in batch mode.
const batchConcurrency = 4

// RunOptions configures a matching run.
type RunOptions struct {
	ResumePath string
	JobPath    string
	JobURL     string
	JobsDir    string
	SkillsFile string

	Weights        matching.Weights
	APIKey         string
	EmbeddingModel string
	MinScore       float64
	UseBrowser     bool
	DatabaseURL    string

	// Cover letter rendering; empty LetterTemplate uses the built-in template.
	WriteLetter    bool
	LetterTemplate string
	LetterOut      string

	Logger *zap.Logger
	Out    io.Writer
}

// JobResult pairs a scored job with its source label and content hash.
type JobResult struct {
	Label   string
	JobHash string
	Report  *types.MatchReport
}

func (o *RunOptions) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// buildExtractor assembles the feature extractor from the run options.
// Without an API key the deterministic local embedder stands in for the
// hosted one, keeping runs fully offline.
func buildExtractor(ctx context.Context, opts *RunOptions) (*extraction.Extractor, error) {
	skills := vocab.DefaultSkills()
	if opts.SkillsFile != "" {
		loaded, err := vocab.FromFile(opts.SkillsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load skill vocabulary: %w", err)
		}
		skills = loaded
	}

	var embedder embedding.Embedder
	if opts.APIKey != "" {
		gemini, err := embedding.NewGeminiEmbedder(ctx, opts.APIKey, opts.EmbeddingModel, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedding client: %w", err)
		}
		embedder = gemini
	} else {
		embedder = embedding.NewHashingEmbedder(0)
	}

	return extraction.NewExtractor(skills, vocab.DefaultEducation(), embedder, opts.Logger), nil
}

// loadJob returns the cleaned job text, a label for output, and the content
// hash, from whichever source the options name.
func loadJob(ctx context.Context, opts *RunOptions, database *db.DB) (string, string, string, error) {
	if opts.JobURL != "" {
		if database != nil {
			fetcher := fetch.NewCachedFetcher(database, &fetch.CachedFetcherConfig{
				UseBrowser: opts.UseBrowser,
				Logger:     opts.Logger,
			})
			result, err := fetcher.Fetch(ctx, opts.JobURL)
			if err != nil {
				return "", "", "", fmt.Errorf("job ingestion from URL failed: %w", err)
			}
			text := ingestion.CleanText(result.Text)
			return text, opts.JobURL, result.ContentHash, nil
		}

		text, meta, err := ingestion.IngestFromURL(ctx, opts.JobURL, opts.UseBrowser, opts.Logger)
		if err != nil {
			return "", "", "", fmt.Errorf("job ingestion from URL failed: %w", err)
		}
		return text, opts.JobURL, meta.Hash, nil
	}

	text, meta, err := ingestion.IngestFromFile(opts.JobPath)
	if err != nil {
		return "", "", "", fmt.Errorf("job ingestion from file failed: %w", err)
	}
	return text, filepath.Base(opts.JobPath), meta.Hash, nil
}

// RunMatch scores a single resume against a single job posting.
func RunMatch(ctx context.Context, opts RunOptions) error {
	logger := logging.Or(opts.Logger)
	printer := observability.NewPrinter(opts.out())

	database := connectDatabase(ctx, &opts, logger)
	if database != nil {
		defer database.Close()
	}

	doc, err := resume.Load(opts.ResumePath)
	if err != nil {
		return err
	}

	jobText, label, jobHash, err := loadJob(ctx, &opts, database)
	if err != nil {
		return err
	}

	extractor, err := buildExtractor(ctx, &opts)
	if err != nil {
		return err
	}

	resumeFeatures := extractor.ExtractResumeFeatures(ctx, doc)
	jobFeatures := extractor.ExtractJobFeatures(ctx, jobText)

	matcher, err := matching.NewMatcher(opts.Weights, vocab.DefaultEducation())
	if err != nil {
		return err
	}
	report := matcher.Match(resumeFeatures, jobFeatures)

	logger.Info("scored job",
		zap.String("job", label),
		zap.Float64("score", report.OverallScore))

	printer.PrintMatchReport(report)

	if database != nil {
		resumeHash := fetch.ContentHash(resumeFeatures.RawText)
		if _, err := database.SaveMatchReport(ctx, resumeHash, jobHash, opts.JobURL, report); err != nil {
			logger.Warn("failed to persist match report", zap.Error(err))
		}
	}

	if opts.WriteLetter {
		if err := writeLetter(&opts, doc, report, label); err != nil {
			return err
		}
	}

	return nil
}

// RunBatch scores one resume against every job posting file in a directory,
// printing jobs at or above the minimum score, best first.
func RunBatch(ctx context.Context, opts RunOptions) error {
	logger := logging.Or(opts.Logger)
	printer := observability.NewPrinter(opts.out())

	database := connectDatabase(ctx, &opts, logger)
	if database != nil {
		defer database.Close()
	}

	doc, err := resume.Load(opts.ResumePath)
	if err != nil {
		return err
	}

	paths, err := listJobFiles(opts.JobsDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no job posting files found in %s", opts.JobsDir)
	}

	extractor, err := buildExtractor(ctx, &opts)
	if err != nil {
		return err
	}

	resumeFeatures := extractor.ExtractResumeFeatures(ctx, doc)
	matcher, err := matching.NewMatcher(opts.Weights, vocab.DefaultEducation())
	if err != nil {
		return err
	}
	resumeHash := fetch.ContentHash(resumeFeatures.RawText)

	var mu sync.Mutex
	var results []JobResult

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, path := range paths {
		g.Go(func() error {
			text, meta, err := ingestion.IngestFromFile(path)
			if err != nil {
				return fmt.Errorf("failed to ingest %s: %w", path, err)
			}

			jobFeatures := extractor.ExtractJobFeatures(gCtx, text)
			report := matcher.Match(resumeFeatures, jobFeatures)

			logger.Debug("scored job",
				zap.String("job", filepath.Base(path)),
				zap.Float64("score", report.OverallScore))

			mu.Lock()
			results = append(results, JobResult{
				Label:   filepath.Base(path),
				JobHash: meta.Hash,
				Report:  report,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Report.OverallScore > results[j].Report.OverallScore
	})

	if database != nil {
		for _, r := range results {
			if _, err := database.SaveMatchReport(ctx, resumeHash, r.JobHash, "", r.Report); err != nil {
				logger.Warn("failed to persist match report",
					zap.String("job", r.Label), zap.Error(err))
			}
		}
	}

	var ranked []observability.RankedMatch
	for _, r := range results {
		if r.Report.OverallScore < opts.MinScore {
			continue
		}
		ranked = append(ranked, observability.RankedMatch{Label: r.Label, Report: r.Report})
	}

	printer.PrintRanking(ranked)
	return nil
}

// connectDatabase opens the report store when configured. Failures degrade to
// a run without persistence rather than aborting.
func connectDatabase(ctx context.Context, opts *RunOptions, logger *zap.Logger) *db.DB {
	if opts.DatabaseURL == "" {
		return nil
	}

	database, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		logger.Warn("failed to connect to database, continuing without persistence", zap.Error(err))
		return nil
	}

	if err := database.Migrate(ctx); err != nil {
		logger.Warn("failed to migrate database, continuing without persistence", zap.Error(err))
		database.Close()
		return nil
	}

	return database
}

func listJobFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".txt" || ext == ".md" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func writeLetter(opts *RunOptions, doc *types.ResumeDocument, report *types.MatchReport, label string) error {
	data := coverletter.BuildData(doc, report, "", label)
	letter, err := coverletter.Render(data, opts.LetterTemplate)
	if err != nil {
		return err
	}

	if opts.LetterOut == "" {
		_, err = fmt.Fprintln(opts.out(), letter)
		return err
	}

	if err := os.WriteFile(opts.LetterOut, []byte(letter), 0644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}
	return nil
}
