package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"codeforge/models"

	"github.com/jackc/pgx/v5"
)

// CreateFile inserts a file or folder entry into a project's flat tree.
// parent_path is derived from path here, never supplied by the caller,
// so the two can't drift apart. Folders always store NULL content.
//
// Path uniqueness is enforced by the (project_id, path) constraint;
// concurrent creates at the same path can't both succeed. Violations
// surface as ErrDuplicatePath.
func (db *DB) CreateFile(ctx context.Context, projectID, path, content string, isFolder bool) (*models.ProjectFile, error) {
	var contentArg *string
	if !isFolder {
		contentArg = &content
	}

	query := `
		INSERT INTO project_files (id, project_id, path, content, is_folder, parent_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, project_id, path, content, is_folder, parent_path, created_at, updated_at
	`

	file, err := scanFile(db.Pool.QueryRow(ctx, query,
		newID(), projectID, path, contentArg, isFolder, ParentPath(path)))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s in project %s: %w", path, projectID, ErrDuplicatePath)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	if err := db.touchProject(ctx, projectID); err != nil {
		return nil, err
	}

	return file, nil
}

// UpdateFile updates only the supplied fields of a file. A nil content
// or path leaves that field unchanged. Changing the path re-derives
// parent_path; a collision with an existing sibling path is caught by
// the uniqueness constraint and returned as ErrDuplicatePath.
func (db *DB) UpdateFile(ctx context.Context, projectID, fileID string, content, path *string) error {
	query := `
		UPDATE project_files
		SET content = COALESCE($1::text, content),
		    path = COALESCE($2::text, path),
		    parent_path = CASE WHEN $2::text IS NULL THEN parent_path ELSE $3::text END,
		    updated_at = NOW()
		WHERE id = $4 AND project_id = $5
	`

	var parentArg *string
	if path != nil {
		parentArg = ParentPath(*path)
	}

	result, err := db.Pool.Exec(ctx, query, content, path, parentArg, fileID, projectID)
	if err != nil {
		if isUniqueViolation(err) && path != nil {
			return fmt.Errorf("%s in project %s: %w", *path, projectID, ErrDuplicatePath)
		}
		return fmt.Errorf("failed to update file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("file %s in project %s: %w", fileID, projectID, ErrNotFound)
	}

	return db.touchProject(ctx, projectID)
}

// DeleteFile removes a file, or a folder and its whole subtree.
//
// Folder deletion is one set-based sweep over the flat table, not a
// per-level recursion: every entry whose path sits under "<folder>/",
// plus every entry whose parent_path is the folder or sits under it.
// The "/" is appended before the prefix comparison on both columns so
// deleting "src" never sweeps a sibling like "src2/child".
func (db *DB) DeleteFile(ctx context.Context, projectID, fileID string) error {
	start := time.Now()

	var path string
	var isFolder bool
	lookup := `SELECT path, is_folder FROM project_files WHERE id = $1 AND project_id = $2`
	err := db.Pool.QueryRow(ctx, lookup, fileID, projectID).Scan(&path, &isFolder)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("file %s in project %s: %w", fileID, projectID, ErrNotFound)
		}
		return fmt.Errorf("failed to look up file: %w", err)
	}

	if isFolder {
		sweep := `
			DELETE FROM project_files
			WHERE project_id = $1
			  AND (path LIKE $2 OR parent_path = $3 OR parent_path LIKE $2)
		`
		result, err := db.Pool.Exec(ctx, sweep, projectID, likePrefix(path), path)
		if err != nil {
			return fmt.Errorf("failed to delete folder contents: %w", err)
		}
		log.Printf("DeleteFile: swept folder %q descendants=%d duration=%v",
			path, result.RowsAffected(), time.Since(start))
	}

	_, err = db.Pool.Exec(ctx, `DELETE FROM project_files WHERE id = $1 AND project_id = $2`, fileID, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return db.touchProject(ctx, projectID)
}

// ListFiles returns all entries of a project in canonical rendering
// order: folders before files, then lexicographic by path. The front
// end depends on this exact ordering.
func (db *DB) ListFiles(ctx context.Context, projectID string) ([]models.ProjectFile, error) {
	query := `
		SELECT id, project_id, path, content, is_folder, parent_path, created_at, updated_at
		FROM project_files
		WHERE project_id = $1
		ORDER BY is_folder DESC, path ASC
	`

	rows, err := db.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	return scanFiles(rows)
}

// FilesForArchive returns only non-folder entries ordered by path, the
// exact member set and order for the project zip download.
func (db *DB) FilesForArchive(ctx context.Context, projectID string) ([]models.ProjectFile, error) {
	query := `
		SELECT id, project_id, path, content, is_folder, parent_path, created_at, updated_at
		FROM project_files
		WHERE project_id = $1 AND is_folder = FALSE
		ORDER BY path ASC
	`

	rows, err := db.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive files: %w", err)
	}
	defer rows.Close()

	return scanFiles(rows)
}

// GetFile looks up one entry by id within a project.
func (db *DB) GetFile(ctx context.Context, projectID, fileID string) (*models.ProjectFile, error) {
	query := `
		SELECT id, project_id, path, content, is_folder, parent_path, created_at, updated_at
		FROM project_files
		WHERE id = $1 AND project_id = $2
	`

	file, err := scanFile(db.Pool.QueryRow(ctx, query, fileID, projectID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("file %s in project %s: %w", fileID, projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return file, nil
}

// Helper functions

// likePrefix builds the LIKE pattern matching strict descendants of a
// folder path. The trailing separator is the boundary check: "src/%"
// matches "src/a.js" but not "src2/child".
func likePrefix(path string) string {
	return path + "/%"
}

func scanFile(row rowScanner) (*models.ProjectFile, error) {
	var file models.ProjectFile
	err := row.Scan(
		&file.ID,
		&file.ProjectID,
		&file.Path,
		&file.Content,
		&file.IsFolder,
		&file.ParentPath,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanFiles(rows rowsScanner) ([]models.ProjectFile, error) {
	files := []models.ProjectFile{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		files = append(files, *file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating files: %w", err)
	}

	return files, nil
}
