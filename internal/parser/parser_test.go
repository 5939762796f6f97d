package parser

import (
	"strings"
	"sync"
	"testing"

	"github.com/riverfjs/mdplain/internal/types"
)

func TestParse_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "heading and emphasis",
			markdown: "# Title\n\nSome **bold** and *italic* text.",
			want:     "Title\n\nSome bold and italic text.",
		},
		{
			name:     "strikethrough",
			markdown: "This is ~~gone~~ here.",
			want:     "This is gone here.",
		},
		{
			name:     "unordered and task list",
			markdown: "- one\n- two\n- [x] done\n- [ ] todo",
			want:     "• one\n• two\n[x] done\n[ ] todo",
		},
		{
			name:     "ordered list keeps start",
			markdown: "3. a\n4. b",
			want:     "3. a\n4. b",
		},
		{
			name:     "nested list",
			markdown: "- a\n  - b",
			want:     "• a\n  • b",
		},
		{
			name:     "link and image",
			markdown: "See [the docs](https://x.io) and ![logo](logo.png).",
			want:     "See the docs and logo.",
		},
		{
			name:     "code block dropped",
			markdown: "Intro\n\n```go\nx := 1\n```\n\nOutro",
			want:     "Intro\n\nOutro",
		},
		{
			name:     "table",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:     "a | b\n1 | 2",
		},
		{
			name:     "blockquote",
			markdown: "> quoted\n> more",
			want:     "quoted\nmore",
		},
		{
			name:     "rule and html dropped",
			markdown: "a\n\n---\n\n<div>x</div>\n\nb",
			want:     "a\n\nb",
		},
		{
			name:     "inline code",
			markdown: "use `foo()` now",
			want:     "use foo() now",
		},
		{
			name:     "autolink",
			markdown: "Visit https://example.com today",
			want:     "Visit https://example.com today",
		},
		{
			name:     "footnote",
			markdown: "Text[^1].\n\n[^1]: Note.",
			want:     "Text[1].\n\n[1] Note.",
		},
		{
			name:     "entity reference",
			markdown: "a &amp; b",
			want:     "a & b",
		},
		{
			name:     "named and numeric references",
			markdown: "AT&amp;T &copy; &#50;024",
			want:     "AT&T © 2024",
		},
		{
			name:     "backslash escape",
			markdown: "\\*x\\*",
			want:     "*x*",
		},
		{
			name:     "escapes in table cells",
			markdown: "| a &amp; b |\n|---|\n| \\*x\\* |",
			want:     "a & b\n*x*",
		},
		{
			name:     "code span keeps escapes",
			markdown: "`&amp; \\*`",
			want:     "&amp; \\*",
		},
		{
			name:     "definition list",
			markdown: "Term\n: Definition one\n\nAfter",
			want:     "Term\n  Definition one\n\nAfter",
		},
		{
			name:     "empty",
			markdown: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Parse(tt.markdown, nil)
			if got != tt.want {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_KeepCodeBlocks(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	cfg.KeepCodeBlocks = true

	got, blocks := Parse("Intro\n\n```go\nx := 1\n```\n\nOutro", cfg)
	if got != "Intro\n\nx := 1\n\nOutro" {
		t.Errorf("Parse() = %q", got)
	}
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	want := types.CodeBlock{Language: "go", Code: "x := 1", Lines: 1, Filename: "readable.go"}
	if blocks[0] != want {
		t.Errorf("blocks[0] = %+v, want %+v", blocks[0], want)
	}
}

func TestParse_DiagramLinks(t *testing.T) {
	cfg := types.DefaultRenderConfig()
	cfg.DiagramLinks = true

	got, blocks := Parse("Flow:\n\n```mermaid\ngraph LR\n    A-->B\n```", cfg)
	if !strings.HasPrefix(got, "Flow:\n\nDiagram: https://mermaid.live/edit#pako:") {
		t.Errorf("Parse() = %q, want diagram link", got)
	}
	if len(blocks) != 1 || !blocks[0].Diagram || blocks[0].Lines != 2 {
		t.Fatalf("blocks = %+v", blocks)
	}
	if !strings.HasPrefix(blocks[0].PreviewURL, "https://mermaid.ink/img/pako:") {
		t.Errorf("PreviewURL = %q", blocks[0].PreviewURL)
	}
}

func TestParse_CodeBlocksInOrder(t *testing.T) {
	markdown := "```python\nprint(1)\n```\n\ntext\n\n    indented code\n\n```\n// main.go\npackage main\n```"

	_, blocks := Parse(markdown, nil)
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}
	if blocks[0].Language != "python" || blocks[0].Filename != "readable.py" {
		t.Errorf("blocks[0] = %+v", blocks[0])
	}
	if blocks[1].Language != "" || blocks[1].Code != "indented code" {
		t.Errorf("blocks[1] = %+v", blocks[1])
	}
	if blocks[2].Filename != "main.go.txt" || blocks[2].Lines != 2 {
		t.Errorf("blocks[2] = %+v", blocks[2])
	}
}

func TestParse_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _ := Parse("## Hello\n\n**world**", nil)
			if got != "Hello\n\nworld" {
				t.Errorf("Parse() = %q", got)
			}
		}()
	}
	wg.Wait()
}
