package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jmartin/jobmatch/internal/types"
)

// MatchReportRecord is a stored scoring result, keyed by the content hashes
// of the resume and the job posting it was computed from.
type MatchReportRecord struct {
	ID           uuid.UUID          `json:"id"`
	ResumeHash   string             `json:"resume_hash"`
	JobHash      string             `json:"job_hash"`
	JobURL       *string            `json:"job_url,omitempty"`
	OverallScore float64            `json:"overall_score"`
	Report       *types.MatchReport `json:"report"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// SaveMatchReport stores a match report, replacing any previous report for the
// same resume/job pair. Scoring is deterministic for fixed inputs, so a stale
// row only exists when the weights changed between runs.
func (db *DB) SaveMatchReport(ctx context.Context, resumeHash, jobHash string, jobURL string, report *types.MatchReport) (uuid.UUID, error) {
	if report == nil {
		return uuid.Nil, fmt.Errorf("match report is nil")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match report: %w", err)
	}

	var urlArg *string
	if jobURL != "" {
		urlArg = &jobURL
	}

	id := uuid.New()
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_reports (id, resume_hash, job_hash, job_url, overall_score, report)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (resume_hash, job_hash)
		 DO UPDATE SET job_url = $4, overall_score = $5, report = $6, updated_at = NOW()
		 RETURNING id`,
		id, resumeHash, jobHash, urlArg, report.OverallScore, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match report: %w", err)
	}
	return id, nil
}

// GetMatchReport retrieves the stored report for a resume/job pair.
// Returns nil without error when no report exists.
func (db *DB) GetMatchReport(ctx context.Context, resumeHash, jobHash string) (*MatchReportRecord, error) {
	var rec MatchReportRecord
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_hash, job_hash, job_url, overall_score, report, created_at, updated_at
		 FROM match_reports WHERE resume_hash = $1 AND job_hash = $2`,
		resumeHash, jobHash,
	).Scan(&rec.ID, &rec.ResumeHash, &rec.JobHash, &rec.JobURL, &rec.OverallScore, &payload, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match report: %w", err)
	}

	if len(payload) > 0 {
		var report types.MatchReport
		if err := json.Unmarshal(payload, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match report: %w", err)
		}
		rec.Report = &report
	}

	return &rec, nil
}

// ReportFilters holds optional filters for listing match reports
type ReportFilters struct {
	ResumeHash string
	MinScore   float64
	Limit      int
}

// ListMatchReports retrieves stored reports ordered by score, best first.
func (db *DB) ListMatchReports(ctx context.Context, filters ReportFilters) ([]MatchReportRecord, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, resume_hash, job_hash, job_url, overall_score, report, created_at, updated_at
		FROM match_reports WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.ResumeHash != "" {
		query += fmt.Sprintf(" AND resume_hash = $%d", argNum)
		args = append(args, filters.ResumeHash)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY overall_score DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list match reports: %w", err)
	}
	defer rows.Close()

	var records []MatchReportRecord
	for rows.Next() {
		var rec MatchReportRecord
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.ResumeHash, &rec.JobHash, &rec.JobURL, &rec.OverallScore, &payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match report: %w", err)
		}
		if len(payload) > 0 {
			var report types.MatchReport
			if err := json.Unmarshal(payload, &report); err == nil {
				rec.Report = &report
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
