package converter

import (
	"strings"
	"testing"
	"unicode"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \t\n ", want: ""},
		{name: "bold asterisks", input: "**hello**", want: "hello"},
		{name: "bold underscores", input: "__hello__", want: "hello"},
		{name: "italic asterisk", input: "*hello*", want: "hello"},
		{name: "italic underscore", input: "_hello_", want: "hello"},
		{name: "bold in sentence", input: "foo **bar** baz", want: "foo bar baz"},
		{name: "multiple bold spans", input: "**a** and **b**", want: "a and b"},
		{name: "link", input: "[click here](https://example.com)", want: "click here"},
		{name: "link in sentence", input: "see [docs](/docs) now", want: "see docs now"},
		{name: "heading", input: "## Title\nBody", want: "Title\nBody"},
		{name: "heading h6", input: "###### Deep", want: "Deep"},
		{name: "hash mid-line untouched", input: "issue #42 is open", want: "issue #42 is open"},
		{name: "hash without space untouched", input: "#hashtag", want: "#hashtag"},
		{name: "blockquote", input: "> quoted text", want: "quoted text"},
		{name: "blockquote multi line", input: "> one\n> two", want: "one\ntwo"},
		{name: "gt mid-line untouched", input: "a > b", want: "a > b"},
		{
			name:  "fenced code removed",
			input: "before\n```\ncode line\n```\nafter",
			want:  "before\n\nafter",
		},
		{
			name:  "fenced code with language",
			input: "x\n```go\nfmt.Println()\n```\ny",
			want:  "x\n\ny",
		},
		{
			name:  "first closing fence ends block",
			input: "a\n```\none\n```\nb\n```\ntwo\n```\nc",
			want:  "a\n\nb\n\nc",
		},
		{
			name:  "unterminated fence left as is",
			input: "a\n```\nstill here",
			want:  "a\n```\nstill here",
		},
		{name: "inline code", input: "use `foo()` now", want: "use foo() now"},
		{name: "padding trimmed", input: "\n\n  hello  \n\n", want: "hello"},
		{
			name:  "bold inside link label",
			input: "[**docs**](https://example.com)",
			want:  "docs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdown(tt.input)
			if got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// 双星号只与双星号闭合，不会与单星号交叉匹配
func TestStripMarkdown_DelimiterPairing(t *testing.T) {
	got := StripMarkdown("**bold** and *italic*")
	if got != "bold and italic" {
		t.Errorf("StripMarkdown() = %q, want %q", got, "bold and italic")
	}

	got = StripMarkdown("__a__ *b*")
	if got != "a b" {
		t.Errorf("StripMarkdown() = %q, want %q", got, "a b")
	}
}

// 强调标记不跨行匹配
func TestStripMarkdown_EmphasisSingleLine(t *testing.T) {
	input := "*start\nend*"
	if got := StripMarkdown(input); got != input {
		t.Errorf("StripMarkdown(%q) = %q, want unchanged", input, got)
	}
}

// 行内代码与强调不同，可以跨行匹配，但不跨越另一个反引号
func TestStripMarkdown_InlineCodeAcrossLines(t *testing.T) {
	if got := StripMarkdown("a `b\nc` d"); got != "a b\nc d" {
		t.Errorf("StripMarkdown() = %q, want %q", got, "a b\nc d")
	}
	if got := StripMarkdown("`a` `b\nc`"); got != "a b\nc" {
		t.Errorf("StripMarkdown() = %q, want %q", got, "a b\nc")
	}
}

// 阶段顺序决定嵌套标记的结果：强调先于行内代码处理
func TestStripMarkdown_StageOrder(t *testing.T) {
	got := StripMarkdown("`snake_case_name`")
	if got != "snakecasename" {
		t.Errorf("StripMarkdown() = %q, want %q", got, "snakecasename")
	}

	got = StripMarkdown("**bold *italic* bold**")
	if got != "bold italic bold" {
		t.Errorf("StripMarkdown() = %q, want %q", got, "bold italic bold")
	}
}

func TestStripMarkdown_PlainTextIsTrimOnly(t *testing.T) {
	inputs := []string{
		"hello world",
		"  leading spaces",
		"trailing newline\n",
		"line one\nline two\n\nline three",
		"numbers 1, 2 and 3.",
		"中文内容，没有标记",
	}
	for _, in := range inputs {
		if got, want := StripMarkdown(in), strings.TrimSpace(in); got != want {
			t.Errorf("StripMarkdown(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripMarkdown_NoSurroundingWhitespace(t *testing.T) {
	inputs := []string{
		"\n# Title\n",
		"  **bold**  ",
		"```\ncode\n```\n\ntext\n",
		"\t> quote\n\n",
		"text\n```\ncode\n```",
	}
	for _, in := range inputs {
		got := StripMarkdown(in)
		if got == "" {
			continue
		}
		runes := []rune(got)
		if unicode.IsSpace(runes[0]) || unicode.IsSpace(runes[len(runes)-1]) {
			t.Errorf("StripMarkdown(%q) = %q has surrounding whitespace", in, got)
		}
	}
}
