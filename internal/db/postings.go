package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPostingCacheTTL is how long before a cached job posting is considered stale
const DefaultPostingCacheTTL = 24 * time.Hour

// CachedPosting is a job posting fetched from a job board and kept so repeated
// scoring runs do not re-fetch the same URL.
type CachedPosting struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Platform    *string   `json:"platform,omitempty"`
	RawHTML     *string   `json:"-"` // large, not serialized
	CleanedText *string   `json:"cleaned_text,omitempty"`
	ContentHash *string   `json:"content_hash,omitempty"`
	HTTPStatus  *int      `json:"http_status,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// IsFresh reports whether the cached posting is still usable under the TTL.
func (p *CachedPosting) IsFresh(ttl time.Duration) bool {
	if p == nil {
		return false
	}
	return time.Since(p.FetchedAt) < ttl
}

// UpsertPosting stores a fetched posting, replacing any previous row for the URL.
func (db *DB) UpsertPosting(ctx context.Context, posting *CachedPosting) error {
	if posting == nil {
		return fmt.Errorf("posting is nil")
	}
	if posting.URL == "" {
		return fmt.Errorf("posting URL is empty")
	}
	if posting.ID == uuid.Nil {
		posting.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO cached_postings (id, url, platform, raw_html, cleaned_text, content_hash, http_status, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (url)
		 DO UPDATE SET platform = $3, raw_html = $4, cleaned_text = $5, content_hash = $6, http_status = $7, fetched_at = NOW()
		 RETURNING id, fetched_at`,
		posting.ID, posting.URL, posting.Platform, posting.RawHTML, posting.CleanedText, posting.ContentHash, posting.HTTPStatus,
	).Scan(&posting.ID, &posting.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert posting: %w", err)
	}
	return nil
}

// GetFreshPosting retrieves a cached posting for the URL if one exists within
// the TTL. Returns nil without error on a cache miss.
func (db *DB) GetFreshPosting(ctx context.Context, url string, ttl time.Duration) (*CachedPosting, error) {
	if ttl == 0 {
		ttl = DefaultPostingCacheTTL
	}

	var p CachedPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, platform, raw_html, cleaned_text, content_hash, http_status, fetched_at
		 FROM cached_postings WHERE url = $1 AND fetched_at > NOW() - ($2 * interval '1 second')`,
		url, ttl.Seconds(),
	).Scan(&p.ID, &p.URL, &p.Platform, &p.RawHTML, &p.CleanedText, &p.ContentHash, &p.HTTPStatus, &p.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached posting: %w", err)
	}
	return &p, nil
}
