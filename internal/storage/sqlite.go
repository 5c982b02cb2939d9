package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/youyaku/internal/models"
)

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens or creates a SQLite database at dbPath and
// initializes the schema. Parent directories are created if they do not exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS cases (
		id TEXT PRIMARY KEY,
		title TEXT,
		content TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_cases_created_at ON cases(created_at);

	CREATE TABLE IF NOT EXISTS summaries (
		id TEXT PRIMARY KEY,
		case_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (case_id) REFERENCES cases(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_summaries_case_id ON summaries(case_id);
	CREATE INDEX IF NOT EXISTS idx_summaries_case_kind ON summaries(case_id, kind);
	`
	_, err := db.Exec(schema)
	return err
}

// CreateCase inserts a case.
func (s *SQLiteStorage) CreateCase(ctx context.Context, c *models.Case) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cases (id, title, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// GetCase returns a case by ID.
func (s *SQLiteStorage) GetCase(ctx context.Context, id string) (*models.Case, error) {
	var c models.Case
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at
		 FROM cases WHERE id = ?`, id,
	).Scan(&c.ID, &c.Title, &c.Content, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("case not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCase updates an existing case.
func (s *SQLiteStorage) UpdateCase(ctx context.Context, c *models.Case) error {
	c.UpdatedAt = time.Now()

	result, err := s.db.ExecContext(ctx,
		`UPDATE cases SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		c.Title, c.Content, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("case not found: %s", c.ID)
	}
	return nil
}

// DeleteCase removes a case by ID.
func (s *SQLiteStorage) DeleteCase(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ?`, id)
	return err
}

// ListCases returns cases with offset and limit, newest first.
func (s *SQLiteStorage) ListCases(ctx context.Context, offset, limit int) ([]*models.Case, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at, updated_at
		 FROM cases ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		var c models.Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cases = append(cases, &c)
	}
	return cases, rows.Err()
}

// CreateSummary inserts a summary.
func (s *SQLiteStorage) CreateSummary(ctx context.Context, sum *models.Summary) error {
	sum.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO summaries (id, case_id, kind, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sum.ID, sum.CaseID, sum.Kind, sum.Content, sum.CreatedAt,
	)
	return err
}

// GetSummary returns a summary by ID.
func (s *SQLiteStorage) GetSummary(ctx context.Context, id string) (*models.Summary, error) {
	var sum models.Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT id, case_id, kind, content, created_at
		 FROM summaries WHERE id = ?`, id,
	).Scan(&sum.ID, &sum.CaseID, &sum.Kind, &sum.Content, &sum.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("summary not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

// GetSummariesByCaseID returns all summaries for a case, oldest first.
func (s *SQLiteStorage) GetSummariesByCaseID(ctx context.Context, caseID string) ([]*models.Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, kind, content, created_at
		 FROM summaries WHERE case_id = ? ORDER BY created_at`,
		caseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// ListSummaries returns summaries with offset and limit, newest first.
func (s *SQLiteStorage) ListSummaries(ctx context.Context, offset, limit int) ([]*models.Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, kind, content, created_at
		 FROM summaries ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// DeleteSummariesByCaseID removes all summaries for a case.
func (s *SQLiteStorage) DeleteSummariesByCaseID(ctx context.Context, caseID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE case_id = ?`, caseID)
	return err
}

// CountCases returns the total number of cases.
func (s *SQLiteStorage) CountCases(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cases`).Scan(&count)
	return count, err
}

// CountSummaries returns the total number of summaries.
func (s *SQLiteStorage) CountSummaries(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM summaries`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func scanSummaries(rows *sql.Rows) ([]*models.Summary, error) {
	var sums []*models.Summary
	for rows.Next() {
		var sum models.Summary
		if err := rows.Scan(&sum.ID, &sum.CaseID, &sum.Kind, &sum.Content, &sum.CreatedAt); err != nil {
			return nil, err
		}
		sums = append(sums, &sum)
	}
	return sums, rows.Err()
}
