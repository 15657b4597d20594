package database

import (
	"context"
	"fmt"
	"log"

	"codeforge/models"

	"github.com/jackc/pgx/v5"
)

const (
	defaultProjectLimit = 20
	maxProjectLimit     = 100
)

const defaultIndexJS = "// Start coding here\nconsole.log(\"Hello, World!\");"

// CreateProject inserts a project and seeds the default file tree:
// a "src" folder, "src/index.js" and a README generated from the
// project metadata.
func (db *DB) CreateProject(ctx context.Context, name, description string) (*models.Project, error) {
	query := `
		INSERT INTO projects (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, created_at, updated_at
	`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, newID(), name, description))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	readmeDescription := description
	if readmeDescription == "" {
		readmeDescription = "A new project"
	}
	readme := fmt.Sprintf("# %s\n\n%s", name, readmeDescription)

	defaults := []struct {
		path     string
		content  string
		isFolder bool
	}{
		{path: "src", isFolder: true},
		{path: "src/index.js", content: defaultIndexJS},
		{path: "README.md", content: readme},
	}

	for _, f := range defaults {
		if _, err := db.CreateFile(ctx, project.ID, f.path, f.content, f.isFolder); err != nil {
			return nil, fmt.Errorf("failed to create default file %s: %w", f.path, err)
		}
	}

	log.Printf("Created project: %s (ID: %s)", project.Name, project.ID)
	return project, nil
}

// GetProject returns project metadata plus its files in canonical
// rendering order.
func (db *DB) GetProject(ctx context.Context, projectID string) (*models.ProjectWithFiles, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	files, err := db.ListFiles(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &models.ProjectWithFiles{Project: *project, Files: files}, nil
}

func (db *DB) ListProjects(ctx context.Context, limit int) ([]models.Project, error) {
	limit = validateLimit(limit, defaultProjectLimit, maxProjectLimit)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		ORDER BY updated_at DESC
		LIMIT $1
	`

	rows, err := db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// DeleteProject removes a project; its files go with it via the
// ON DELETE CASCADE foreign key.
func (db *DB) DeleteProject(ctx context.Context, projectID string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}

	log.Printf("Deleted project: %s", projectID)
	return nil
}

// touchProject bumps updated_at after any file-tree mutation so project
// listings sort recently-edited projects first.
func (db *DB) touchProject(ctx context.Context, projectID string) error {
	_, err := db.Pool.Exec(ctx, `UPDATE projects SET updated_at = NOW() WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to touch project: %w", err)
	}
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}
