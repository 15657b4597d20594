package models

// ExecuteRequest is the normalized execute payload from the editor.
// Stdin and Args are optional and default to empty.
type ExecuteRequest struct {
	Language string   `json:"language" binding:"required"`
	Code     string   `json:"code" binding:"required"`
	Stdin    string   `json:"stdin"`
	Args     []string `json:"args"`
}
