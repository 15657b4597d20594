package piston

// Static lookup tables mapping the playground's language identifiers to
// Piston's runtime identifiers, pinned versions and conventional entry
// filenames. Unknown languages fall through: identifier passes through
// unchanged, version becomes the "*" wildcard (Piston picks a default)
// and the entry file falls back to main.txt.

var languageVersions = map[string]string{
	"javascript": "18.15.0",
	"typescript": "5.0.3",
	"python":     "3.10.0",
	"java":       "15.0.2",
	"cpp":        "10.2.0",
	"c":          "10.2.0",
	"csharp":     "6.12.0",
	"go":         "1.16.2",
	"rust":       "1.68.2",
	"ruby":       "3.0.1",
	"php":        "8.2.3",
	"swift":      "5.3.3",
	"kotlin":     "1.8.20",
	"bash":       "5.2.0",
}

var runtimeLanguages = map[string]string{
	"javascript": "javascript",
	"typescript": "typescript",
	"python":     "python",
	"java":       "java",
	"cpp":        "gcc",
	"c":          "gcc",
	"csharp":     "dotnet",
	"go":         "go",
	"rust":       "rust",
	"ruby":       "ruby",
	"php":        "php",
	"bash":       "bash",
}

var entryFilenames = map[string]string{
	"javascript": "main.js",
	"typescript": "main.ts",
	"python":     "main.py",
	"java":       "Main.java",
	"cpp":        "main.cpp",
	"c":          "main.c",
	"csharp":     "Main.cs",
	"go":         "main.go",
	"rust":       "main.rs",
	"ruby":       "main.rb",
	"php":        "main.php",
	"swift":      "main.swift",
	"kotlin":     "Main.kt",
	"bash":       "main.sh",
}

// Version returns the pinned runtime version for a language, or "*" for
// unknown languages so Piston picks its default.
func Version(language string) string {
	if v, ok := languageVersions[language]; ok {
		return v
	}
	return "*"
}

// RuntimeLanguage maps a playground language to Piston's identifier
// (e.g. cpp → gcc). Unknown languages pass through unchanged.
func RuntimeLanguage(language string) string {
	if l, ok := runtimeLanguages[language]; ok {
		return l
	}
	return language
}

// EntryFilename returns the conventional main-file name for a language.
func EntryFilename(language string) string {
	if f, ok := entryFilenames[language]; ok {
		return f
	}
	return "main.txt"
}
