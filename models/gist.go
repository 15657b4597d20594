package models

import "time"

// Gist represents a standalone, single-file code snippet.
// Gists are independent of projects; view_count is bumped on every read.
type Gist struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Code      string    `json:"code"`
	Theme     string    `json:"theme"`
	ViewCount int       `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GistSummary is the slim shape returned by listings (no code body).
type GistSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Theme     string    `json:"theme"`
	ViewCount int       `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGistRequest is the payload for creating a new gist.
// Title defaults to "Untitled" and theme to "vs-dark" when omitted.
type CreateGistRequest struct {
	Title    string `json:"title"`
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Theme    string `json:"theme"`
}

// UpdateGistRequest replaces a gist's editable fields in place.
type UpdateGistRequest struct {
	Title    string `json:"title"`
	Language string `json:"language" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Theme    string `json:"theme"`
}
