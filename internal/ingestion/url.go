package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jmartin/jobmatch/internal/fetch"
	"github.com/jmartin/jobmatch/internal/logging"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting from a URL, extracts its text with
// platform-specific selectors, cleans it, and returns the cleaned text with
// metadata. If useBrowser is true, pages rendering too little content over
// plain HTTP are retried in a headless browser.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, logger *zap.Logger) (string, *Metadata, error) {
	logger = logging.Or(logger)

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("ingesting job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug("fetched HTML", zap.Int("bytes", len(result.HTML)))

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	// SPA fallback: pages that render their content in JavaScript come back
	// nearly empty over plain HTTP.
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		logger.Debug("content too short, retrying with headless browser",
			zap.Int("chars", len(textContent)),
			zap.Int("min", fetch.MinContentLength))

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, logger)
		if browserErr != nil {
			logger.Warn("browser rendering failed, using HTTP content", zap.Error(browserErr))
		} else {
			rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...)
			if extractErr != nil {
				logger.Warn("browser content extraction failed", zap.Error(extractErr))
			} else {
				textContent = rendered
			}
		}
	}

	cleanedText := CleanText(textContent)
	logger.Debug("cleaned posting text", zap.Int("chars", len(cleanedText)))

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)

	return cleanedText, metadata, nil
}
