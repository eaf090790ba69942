package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Muniranjani/heartcheck/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

// NewSQLiteInMemory creates an in-memory repository for tests.
func NewSQLiteInMemory() (Repository, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	// A single connection keeps every statement on the same in-memory DB.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		age INTEGER NOT NULL,
		gender INTEGER NOT NULL,
		trestbps INTEGER NOT NULL,
		chol INTEGER NOT NULL,
		heartrate INTEGER NOT NULL,
		smoker INTEGER NOT NULL,
		diabetes INTEGER DEFAULT 0,
		risk INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Append durably writes one completed submission.
func (s *SQLiteStore) Append(ctx context.Context, sub *domain.Submission) (int64, error) {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	query := `
	INSERT INTO submissions (username, email, phone, age, gender, trestbps, chol, heartrate, smoker, diabetes, risk, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var phone interface{}
	if sub.Phone != "" {
		phone = sub.Phone
	}

	result, err := s.db.ExecContext(ctx, query,
		sub.Username, sub.Email, phone,
		sub.Age, sub.Gender, sub.Trestbps, sub.Chol, sub.HeartRate,
		sub.Smoker, sub.Diabetes, sub.Risk, sub.CreatedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get insert id: %w", err)
	}
	sub.ID = id

	return id, nil
}

// ListAll retrieves every submission, newest first.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Submission, error) {
	query := `
	SELECT id, username, email, phone, age, gender, trestbps, chol, heartrate, smoker, diabetes, risk, created_at
	FROM submissions
	ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var phone sql.NullString
		var diabetes sql.NullInt64
		var createdAt int64

		err := rows.Scan(
			&sub.ID, &sub.Username, &sub.Email, &phone,
			&sub.Age, &sub.Gender, &sub.Trestbps, &sub.Chol, &sub.HeartRate,
			&sub.Smoker, &diabetes, &sub.Risk, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}

		sub.Phone = phone.String
		sub.Diabetes = int(diabetes.Int64)
		sub.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission rows: %w", err)
	}

	return out, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
