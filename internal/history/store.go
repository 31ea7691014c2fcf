package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"subgen/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are rejected rather than migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Job statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Job is one recorded transcription run.
type Job struct {
	ID              int64
	SourcePath      string
	Format          string
	Status          string
	OutputPath      string
	ErrorKind       string
	ErrorMessage    string
	DurationSeconds float64
	SegmentCount    int
	CreatedAt       time.Time
	CompletedAt     time.Time
}

// Store manages job history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// StartJob records a new running job and returns it.
func (s *Store) StartJob(ctx context.Context, sourcePath, format string, durationSeconds float64) (*Job, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (source_path, format, status, duration_seconds, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		sourcePath, format, StatusRunning, durationSeconds, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

// MarkCompleted finalizes a job as successful.
func (s *Store) MarkCompleted(ctx context.Context, id int64, outputPath string, segmentCount int) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, output_path = ?, segment_count = ?, completed_at = ? WHERE id = ?`,
		StatusCompleted, outputPath, segmentCount, now, id,
	)
	if err != nil {
		return fmt.Errorf("mark job %d completed: %w", id, err)
	}
	return nil
}

// MarkFailed finalizes a job with a failure classification.
func (s *Store) MarkFailed(ctx context.Context, id int64, kind, message string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error_kind = ?, error_message = ?, completed_at = ? WHERE id = ?`,
		StatusFailed, kind, message, now, id,
	)
	if err != nil {
		return fmt.Errorf("mark job %d failed: %w", id, err)
	}
	return nil
}

// GetByID fetches a single job.
func (s *Store) GetByID(ctx context.Context, id int64) (*Job, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" FROM jobs WHERE id = ?", id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job %d not found", id)
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return job, nil
}

// List returns the most recent jobs, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*Job, error) {
	query := selectColumns + " FROM jobs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

const selectColumns = `SELECT id, source_path, format, status, output_path,
    error_kind, error_message, duration_seconds, segment_count, created_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*Job, error) {
	var job Job
	var outputPath, errorKind, errorMessage, completedAt sql.NullString
	var createdAt string
	err := row.Scan(
		&job.ID, &job.SourcePath, &job.Format, &job.Status, &outputPath,
		&errorKind, &errorMessage, &job.DurationSeconds, &job.SegmentCount,
		&createdAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	job.OutputPath = outputPath.String
	job.ErrorKind = errorKind.String
	job.ErrorMessage = errorMessage.String
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		job.CreatedAt = parsed
	}
	if completedAt.Valid {
		if parsed, err := time.Parse(time.RFC3339Nano, completedAt.String); err == nil {
			job.CompletedAt = parsed
		}
	}
	return &job, nil
}
