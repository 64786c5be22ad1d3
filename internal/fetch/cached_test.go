package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerefString(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{"nil pointer", nil, ""},
		{"empty string", strPtr(""), ""},
		{"non-empty string", strPtr("hello"), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := derefString(tt.input)
			if result != tt.expected {
				t.Errorf("derefString(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDerefInt(t *testing.T) {
	tests := []struct {
		name     string
		input    *int
		expected int
	}{
		{"nil pointer", nil, 0},
		{"zero value", intPtr(0), 0},
		{"positive value", intPtr(200), 200},
		{"negative value", intPtr(-1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := derefInt(tt.input)
			if result != tt.expected {
				t.Errorf("derefInt(%v) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, nil)
	require.NotNil(t, fetcher)

	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
	assert.NotNil(t, fetcher.logger)
}

func TestNewCachedFetcher_EmptyConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, &CachedFetcherConfig{})
	require.NotNil(t, fetcher)

	// Should use defaults for zero values
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}

func TestNewCachedFetcher_CarriesBrowserSetting(t *testing.T) {
	fetcher := NewCachedFetcher(nil, &CachedFetcherConfig{UseBrowser: true})

	assert.True(t, fetcher.useBrowser)
	assert.False(t, NewCachedFetcher(nil, nil).useBrowser)
}

func TestCachedFetcher_NoBrowserForLongContent(t *testing.T) {
	body := `<html><body><main>Backend Engineer. ` + strings.Repeat("Build and run Go services. ", 30) + `</main></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	// UseBrowser set, but the extracted text is long enough that the plain
	// HTTP content is kept and no browser session is started.
	fetcher := NewCachedFetcher(nil, &CachedFetcherConfig{UseBrowser: true})

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.False(t, ShouldUseBrowser(result.Text))
	assert.Contains(t, result.Text, "Backend Engineer")
}

func TestCachedFetcher_FetchWithoutDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main>Backend Engineer. Go required.</main></body></html>`))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil, nil)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Contains(t, result.Text, "Backend Engineer")
	assert.Equal(t, ContentHash(result.Text), result.ContentHash)
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
