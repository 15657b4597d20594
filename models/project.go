package models

import "time"

// Project is a named collection of files and folders.
// Its file tree is stored flat in project_files and reconstructed
// client-side from path/parent_path.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectFile is one entry in a project's flat file tree.
// Path is unique per project. ParentPath holds the containing folder's
// path, or nil for root-level entries; it is derived from Path by the
// storage layer, never supplied by callers. Content is nil for folders.
type ProjectFile struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Path       string    `json:"path"`
	Content    *string   `json:"content"`
	IsFolder   bool      `json:"is_folder"`
	ParentPath *string   `json:"parent_path"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProjectWithFiles is the detail shape: project metadata plus the full
// file listing in canonical rendering order (folders first, then path).
type ProjectWithFiles struct {
	Project
	Files []ProjectFile `json:"files"`
}

// CreateProjectRequest is the payload for creating a new project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateFileRequest creates a file or folder inside a project.
// The containing folder is derived from Path server-side, so only the
// path itself is accepted.
type CreateFileRequest struct {
	Path     string `json:"path" binding:"required"`
	Content  string `json:"content"`
	IsFolder bool   `json:"isFolder"`
}

// UpdateFileRequest updates only the supplied fields of a file.
// Nil pointers mean "leave unchanged".
type UpdateFileRequest struct {
	Content *string `json:"content"`
	Path    *string `json:"path"`
}
