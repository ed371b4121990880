// Package db provides PostgreSQL persistence for extraction results.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-parser/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// ResumeRecord is a stored extraction: the uploaded filename, a hash of the
// normalized text (used to spot re-uploads) and the full result as JSON.
type ResumeRecord struct {
	ID         uuid.UUID               `json:"id"`
	Filename   string                  `json:"filename,omitempty"`
	TextHash   string                  `json:"text_hash"`
	Confidence float64                 `json:"confidence"`
	Result     *types.ExtractionResult `json:"result"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// SaveResult stores a new extraction result and returns its ID
func (db *DB) SaveResult(ctx context.Context, filename, textHash string, result *types.ExtractionResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (filename, text_hash, confidence, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		filename, textHash, result.Confidence, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save result: %w", err)
	}
	return id, nil
}

// GetResult retrieves a stored extraction by ID. Returns nil when not found.
func (db *DB) GetResult(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var record ResumeRecord
	var resultJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, COALESCE(filename, ''), text_hash, confidence, result, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.Filename, &record.TextHash, &record.Confidence, &resultJSON, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result types.ExtractionResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored result: %w", err)
	}
	record.Result = &result
	return &record, nil
}

// UpdateResult replaces the stored extraction result for an existing record.
func (db *DB) UpdateResult(ctx context.Context, id uuid.UUID, result *types.ExtractionResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET result = $1, confidence = $2, updated_at = NOW() WHERE id = $3`,
		resultJSON, result.Confidence, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrResumeNotFound{ID: id}
	}
	return nil
}

// DeleteResult removes a stored extraction.
func (db *DB) DeleteResult(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrResumeNotFound{ID: id}
	}
	return nil
}

// ResumeSummary is a lightweight view of a stored extraction for listing
type ResumeSummary struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename,omitempty"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// ResumeFilters holds optional filters for listing stored extractions
type ResumeFilters struct {
	MinConfidence float64
	Limit         int
}

// ListResults retrieves stored extractions, newest first, with optional
// filters.
func (db *DB) ListResults(ctx context.Context, filters ResumeFilters) ([]ResumeSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, COALESCE(filename, ''), confidence, created_at FROM resumes WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.MinConfidence > 0 {
		query += fmt.Sprintf(" AND confidence >= $%d", argNum)
		args = append(args, filters.MinConfidence)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Confidence, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
