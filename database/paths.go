package database

import "strings"

// ParentPath derives the containing folder's path from an entry's path.
// Returns nil for root-level entries. Paths use "/" separators with no
// leading slash ("src/utils/a.js" → "src/utils", "README.md" → nil).
//
// Deriving this in one place keeps path and parent_path consistent;
// callers never supply parent_path themselves.
func ParentPath(path string) *string {
	idx := strings.LastIndex(path, "/")
	if idx <= 0 {
		return nil
	}
	parent := path[:idx]
	return &parent
}
