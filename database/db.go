package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idLength = 10

	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Sentinel errors surfaced to handlers. Always wrapped with
// fmt.Errorf("%w"), so callers must check with errors.Is.
var (
	// ErrNotFound means no row matched the given identifier(s).
	ErrNotFound = errors.New("not found")
	// ErrDuplicatePath means a file or folder already exists at the
	// requested path within the same project.
	ErrDuplicatePath = errors.New("file or folder already exists at this path")
)

type DB struct {
	Pool *pgxpool.Pool
}

func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established")
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	db.Pool.Close()
	log.Println("Database connection closed")
}

// Helper functions

// newID generates a short opaque identifier for gists, projects and files.
// Ten characters matches the public URL format (/gist/<id>).
func newID() string {
	return gonanoid.Must(idLength)
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. The driver only exposes a generic PgError, so the SQLSTATE
// code has to be pattern-matched here rather than leaked to callers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// isForeignKeyViolation catches inserts referencing a missing parent
// row, e.g. a file created under a project id that does not exist.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

func validateLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
