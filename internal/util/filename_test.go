package util

import "testing"

func TestExtFor(t *testing.T) {
	tests := map[string]string{
		"go":      "go",
		"Python":  "py",
		"yml":     "yaml",
		" bash ":  "sh",
		"mermaid": "mmd",
		"cobol":   "txt",
		"":        "txt",
	}
	for lang, want := range tests {
		if got := ExtFor(lang); got != want {
			t.Errorf("ExtFor(%q) = %q, want %q", lang, got, want)
		}
	}
}

func TestFilenameFor(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang string
		want string
	}{
		{name: "no hint", code: "print('hi')", lang: "python", want: "readable.py"},
		{name: "unknown language", code: "x", lang: "", want: "readable.txt"},
		{name: "comment hint", code: "// main.go\npackage main", lang: "go", want: "main.go"},
		{name: "hint on second line", code: "#!/bin/sh\n# deploy.sh\necho ok", lang: "bash", want: "deploy.sh"},
		{name: "hint with other ext", code: "# config.toml\nkey = 1", lang: "yaml", want: "config.toml.yaml"},
		{name: "method call is not a filename", code: "fmt.Println(1)", lang: "go", want: "readable.go"},
		{name: "hint beyond two lines ignored", code: "a\nb\n// late.go", lang: "go", want: "readable.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilenameFor(tt.code, tt.lang); got != tt.want {
				t.Errorf("FilenameFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqueFilename(t *testing.T) {
	taken := map[string]bool{}
	got := []string{
		UniqueFilename("readable.go", taken),
		UniqueFilename("readable.go", taken),
		UniqueFilename("readable.go", taken),
		UniqueFilename("main.go", taken),
	}
	want := []string{"readable.go", "readable_2.go", "readable_3.go", "main.go"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueFilename #%d = %q, want %q", i, got[i], want[i])
		}
	}
}
