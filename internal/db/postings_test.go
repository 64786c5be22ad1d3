package db

import (
	"testing"
	"time"
)

func TestCachedPosting_IsFresh(t *testing.T) {
	tests := []struct {
		name      string
		fetchedAt time.Time
		ttl       time.Duration
		expected  bool
	}{
		{"just fetched", time.Now(), time.Hour, true},
		{"within ttl", time.Now().Add(-30 * time.Minute), time.Hour, true},
		{"past ttl", time.Now().Add(-2 * time.Hour), time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &CachedPosting{FetchedAt: tt.fetchedAt}
			if got := p.IsFresh(tt.ttl); got != tt.expected {
				t.Errorf("IsFresh() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCachedPosting_IsFresh_Nil(t *testing.T) {
	var p *CachedPosting
	if p.IsFresh(time.Hour) {
		t.Error("nil posting should never be fresh")
	}
}
