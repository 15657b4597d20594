package database

import (
	"context"
	"fmt"
	"log"

	"codeforge/models"

	"github.com/jackc/pgx/v5"
)

const (
	defaultGistLimit = 10
	maxGistLimit     = 100
)

func (db *DB) CreateGist(ctx context.Context, req models.CreateGistRequest) (*models.Gist, error) {
	title := req.Title
	if title == "" {
		title = "Untitled"
	}
	theme := req.Theme
	if theme == "" {
		theme = "vs-dark"
	}

	query := `
		INSERT INTO gists (id, title, language, code, theme)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, language, code, theme, view_count, created_at, updated_at
	`

	gist, err := scanGist(db.Pool.QueryRow(ctx, query, newID(), title, req.Language, req.Code, theme))
	if err != nil {
		return nil, fmt.Errorf("failed to create gist: %w", err)
	}

	log.Printf("Created gist: %s (%s)", gist.ID, gist.Language)
	return gist, nil
}

// GetGist retrieves a gist and bumps its view counter. The increment is
// a single UPDATE so sequential reads each count exactly once; the
// returned view_count already includes this read.
func (db *DB) GetGist(ctx context.Context, gistID string) (*models.Gist, error) {
	query := `
		UPDATE gists
		SET view_count = view_count + 1
		WHERE id = $1
		RETURNING id, title, language, code, theme, view_count, created_at, updated_at
	`

	gist, err := scanGist(db.Pool.QueryRow(ctx, query, gistID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("gist %s: %w", gistID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get gist: %w", err)
	}

	return gist, nil
}

func (db *DB) UpdateGist(ctx context.Context, gistID string, req models.UpdateGistRequest) error {
	title := req.Title
	if title == "" {
		title = "Untitled"
	}
	theme := req.Theme
	if theme == "" {
		theme = "vs-dark"
	}

	query := `
		UPDATE gists
		SET title = $1, language = $2, code = $3, theme = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := db.Pool.Exec(ctx, query, title, req.Language, req.Code, theme, gistID)
	if err != nil {
		return fmt.Errorf("failed to update gist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gist %s: %w", gistID, ErrNotFound)
	}

	return nil
}

func (db *DB) ListGists(ctx context.Context, limit int) ([]models.GistSummary, error) {
	limit = validateLimit(limit, defaultGistLimit, maxGistLimit)

	query := `
		SELECT id, title, language, theme, view_count, created_at
		FROM gists
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list gists: %w", err)
	}
	defer rows.Close()

	gists := []models.GistSummary{}
	for rows.Next() {
		var g models.GistSummary
		err := rows.Scan(&g.ID, &g.Title, &g.Language, &g.Theme, &g.ViewCount, &g.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gist row: %w", err)
		}
		gists = append(gists, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gists: %w", err)
	}

	return gists, nil
}

func (db *DB) DeleteGist(ctx context.Context, gistID string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM gists WHERE id = $1`, gistID)
	if err != nil {
		return fmt.Errorf("failed to delete gist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gist %s: %w", gistID, ErrNotFound)
	}

	log.Printf("Deleted gist: %s", gistID)
	return nil
}

func scanGist(row rowScanner) (*models.Gist, error) {
	var gist models.Gist
	err := row.Scan(
		&gist.ID,
		&gist.Title,
		&gist.Language,
		&gist.Code,
		&gist.Theme,
		&gist.ViewCount,
		&gist.CreatedAt,
		&gist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &gist, nil
}
