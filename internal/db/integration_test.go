//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/jmartin/jobmatch/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM cached_postings WHERE url LIKE '%test.example.com%'")
	_, _ = db.pool.Exec(ctx, "DELETE FROM match_reports WHERE resume_hash LIKE 'testhash%'")

	return db
}

func TestIntegration_MatchReport_RoundTrip(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	report := &types.MatchReport{
		OverallScore: 75.6,
		Subscores: types.Subscores{
			Skill:      66.7,
			Experience: 88.0,
			Education:  100.0,
			Semantic:   50.0,
		},
		MatchingSkills: []string{"python", "aws"},
		MissingSkills:  []string{"kubernetes"},
		Strengths:      []string{"Has experience with python, aws"},
		Weaknesses:     []string{"Missing experience with kubernetes"},
	}

	id, err := db.SaveMatchReport(ctx, "testhash-resume", "testhash-job", "https://test.example.com/job", report)
	if err != nil {
		t.Fatalf("Failed to save match report: %v", err)
	}

	rec, err := db.GetMatchReport(ctx, "testhash-resume", "testhash-job")
	if err != nil {
		t.Fatalf("Failed to get match report: %v", err)
	}
	if rec == nil {
		t.Fatal("Expected a stored report, got nil")
	}
	if rec.ID != id {
		t.Errorf("ID = %v, want %v", rec.ID, id)
	}
	if rec.OverallScore != 75.6 {
		t.Errorf("OverallScore = %v, want 75.6", rec.OverallScore)
	}
	if rec.Report == nil || len(rec.Report.MatchingSkills) != 2 {
		t.Errorf("Report payload not round-tripped: %+v", rec.Report)
	}

	// Saving again for the same pair must replace, not duplicate
	report.OverallScore = 80.0
	id2, err := db.SaveMatchReport(ctx, "testhash-resume", "testhash-job", "", report)
	if err != nil {
		t.Fatalf("Failed to re-save match report: %v", err)
	}
	if id2 != id {
		t.Errorf("Upsert created a new row: %v != %v", id2, id)
	}
}

func TestIntegration_MatchReport_Missing(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	rec, err := db.GetMatchReport(context.Background(), "testhash-none", "testhash-none")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil for missing report, got %+v", rec)
	}
}

func TestIntegration_ListMatchReports_MinScore(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	for i, score := range []float64{40.0, 60.0, 90.0} {
		report := &types.MatchReport{OverallScore: score}
		jobHash := "testhash-job-" + string(rune('a'+i))
		if _, err := db.SaveMatchReport(ctx, "testhash-list", jobHash, "", report); err != nil {
			t.Fatalf("Failed to save report %d: %v", i, err)
		}
	}

	records, err := db.ListMatchReports(ctx, ReportFilters{ResumeHash: "testhash-list", MinScore: 50})
	if err != nil {
		t.Fatalf("Failed to list reports: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 reports above threshold, got %d", len(records))
	}
	if records[0].OverallScore < records[1].OverallScore {
		t.Error("Reports not ordered best first")
	}
}

func TestIntegration_PostingCache_RoundTrip(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	html := "<html><body>Backend Engineer</body></html>"
	text := "Backend Engineer"
	platform := "greenhouse"
	status := 200

	posting := &CachedPosting{
		URL:         "https://test.example.com/jobs/123",
		Platform:    &platform,
		RawHTML:     &html,
		CleanedText: &text,
		HTTPStatus:  &status,
	}

	if err := db.UpsertPosting(ctx, posting); err != nil {
		t.Fatalf("Failed to upsert posting: %v", err)
	}

	cached, err := db.GetFreshPosting(ctx, posting.URL, DefaultPostingCacheTTL)
	if err != nil {
		t.Fatalf("Failed to get cached posting: %v", err)
	}
	if cached == nil {
		t.Fatal("Expected cached posting, got nil")
	}
	if cached.CleanedText == nil || *cached.CleanedText != text {
		t.Errorf("CleanedText not round-tripped: %v", cached.CleanedText)
	}

	miss, err := db.GetFreshPosting(ctx, "https://test.example.com/jobs/does-not-exist", 0)
	if err != nil {
		t.Fatalf("Unexpected error on miss: %v", err)
	}
	if miss != nil {
		t.Errorf("Expected nil on cache miss, got %+v", miss)
	}
}
