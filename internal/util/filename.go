package util

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// languageExt maps code fence languages to file extensions.
var languageExt = map[string]string{
	"python":     "py",
	"py":         "py",
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"java":       "java",
	"c++":        "cpp",
	"cpp":        "cpp",
	"c":          "c",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"sh":         "sh",
	"php":        "php",
	"markdown":   "md",
	"md":         "md",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"xml":        "xml",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
	"text":       "txt",
	"toml":       "toml",
	"go":         "go",
	"golang":     "go",
	"ruby":       "rb",
	"rust":       "rs",
	"swift":      "swift",
	"kotlin":     "kt",
	"sql":        "sql",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"graphql":    "graphql",
	"mermaid":    "mmd",
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// knownExt holds the extensions accepted in filename hints, so that
// expressions like "fmt.Println" are not mistaken for file names.
var knownExt = func() map[string]bool {
	m := map[string]bool{"txt": true, "env": true, "ini": true, "cfg": true, "conf": true, "mod": true, "lock": true}
	for _, ext := range languageExt {
		m[ext] = true
	}
	return m
}()

// ExtFor returns the file extension for a fence language, "txt" when unknown.
func ExtFor(language string) string {
	ext, ok := languageExt[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return "txt"
	}
	return ext
}

// extractFilename returns the first filename-looking token in line.
func extractFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(match), "."))
		if knownExt[ext] && !strings.HasPrefix(match, ".") {
			return match
		}
	}
	return ""
}

// FilenameFor derives a file name for a code block.
//
// A filename mentioned in the first two lines (typically a comment such as
// "// main.go") wins; it gets the language extension appended unless it
// already carries it. Otherwise "readable.<ext>".
func FilenameFor(code string, language string) string {
	lines := strings.SplitN(strings.TrimSpace(code), "\n", 3)
	sample := strings.Join(lines[:min(len(lines), 2)], " ")
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := ExtFor(language)
	if name := extractFilename(sample); name != "" {
		if strings.HasSuffix(name, "."+ext) && len(name) <= 24 {
			return name
		}
		return name + "." + ext
	}
	return "readable." + ext
}

// UniqueFilename returns name, or name with a numeric suffix before the
// extension when it is already in taken. The result is recorded in taken.
func UniqueFilename(name string, taken map[string]bool) string {
	candidate := name
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; taken[candidate]; i++ {
		candidate = base + "_" + strconv.Itoa(i) + ext
	}
	taken[candidate] = true
	return candidate
}
