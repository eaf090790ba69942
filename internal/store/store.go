// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/Muniranjani/heartcheck/internal/domain"
)

// Repository defines the interface for persisting completed submissions.
// The store is append-only: records are immutable once written and there is
// no update or delete path.
type Repository interface {
	// Append durably writes one completed submission and returns its
	// assigned record ID. CreatedAt is set once, at write time.
	Append(ctx context.Context, s *domain.Submission) (int64, error)

	// ListAll retrieves every submission, newest first. Rows with equal
	// timestamps are ordered by descending ID so insertion order breaks
	// ties.
	ListAll(ctx context.Context) ([]domain.Submission, error)

	// Ping verifies database connectivity and returns an error if the
	// database is unreachable.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
