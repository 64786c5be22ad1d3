// Package fetch - cached.go wraps URL fetching with database-backed caching.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/jmartin/jobmatch/internal/db"
	"github.com/jmartin/jobmatch/internal/logging"
)

// CachedFetcher fetches job postings, serving repeated requests for the same
// URL from the cached_postings table when the cached copy is still fresh.
type CachedFetcher struct {
	db         *db.DB
	options    *Options
	cacheTTL   time.Duration
	skipCache  bool // For testing or forcing fresh fetches
	useBrowser bool
	logger     *zap.Logger
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL   time.Duration
	SkipCache  bool
	UseBrowser bool // Retry short SPA pages in a headless browser before caching
	Options    *Options
	Logger     *zap.Logger
}

// NewCachedFetcher creates a new cached fetcher. A nil database disables
// caching; every Fetch then goes to the network.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPostingCacheTTL
	}
	return &CachedFetcher{
		db:         database,
		options:    config.Options,
		cacheTTL:   config.CacheTTL,
		skipCache:  config.SkipCache,
		useBrowser: config.UseBrowser,
		logger:     logging.Or(config.Logger),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache   bool   // Whether this result came from cache
	ContentHash string // SHA-256 of the cleaned text
}

// Fetch retrieves a job posting URL, using the cache if available and fresh.
// Platform-specific selectors are applied when extracting the posting text.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	platform := DetectPlatform(urlStr)

	if !f.skipCache && f.db != nil {
		cached, err := f.db.GetFreshPosting(ctx, urlStr, f.cacheTTL)
		if err != nil {
			f.logger.Warn("posting cache lookup failed", zap.String("url", urlStr), zap.Error(err))
		} else if cached != nil {
			f.logger.Debug("posting served from cache", zap.String("url", urlStr))
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       derefString(cached.RawHTML),
					Text:       derefString(cached.CleanedText),
					StatusCode: derefInt(cached.HTTPStatus),
				},
				FromCache:   true,
				ContentHash: derefString(cached.ContentHash),
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, err
	}

	// SPA fallback before the text is cached, so a near-empty HTTP render
	// does not poison the cache for the whole TTL.
	if f.useBrowser && ShouldUseBrowser(text) {
		f.logger.Debug("content too short, retrying with headless browser",
			zap.String("url", urlStr),
			zap.Int("chars", len(text)),
			zap.Int("min", MinContentLength))

		browserHTML, browserErr := BrowserSimple(ctx, urlStr, f.logger)
		if browserErr != nil {
			f.logger.Warn("browser rendering failed, using HTTP content", zap.Error(browserErr))
		} else {
			rendered, extractErr := ExtractMainText(browserHTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
			if extractErr != nil {
				f.logger.Warn("browser content extraction failed", zap.Error(extractErr))
			} else {
				text = rendered
				result.HTML = browserHTML
			}
		}
	}
	result.Text = text

	hash := ContentHash(text)

	if f.db != nil {
		platformStr := string(platform)
		posting := &db.CachedPosting{
			URL:         urlStr,
			Platform:    &platformStr,
			RawHTML:     &result.HTML,
			CleanedText: &result.Text,
			ContentHash: &hash,
			HTTPStatus:  &result.StatusCode,
		}
		if err := f.db.UpsertPosting(ctx, posting); err != nil {
			// The fetch succeeded; a cache write failure only costs a re-fetch later.
			f.logger.Warn("failed to cache posting", zap.String("url", urlStr), zap.Error(err))
		}
	}

	return &CachedResult{
		Result:      result,
		FromCache:   false,
		ContentHash: hash,
	}, nil
}

// ContentHash returns the hex SHA-256 of the provided text.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
