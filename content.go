package mdplain

import "time"

// Document is the result of Process.
type Document struct {
	// Text is the stripped body.
	Text string `json:"text" yaml:"text"`

	// FrontMatter is zero when the source has none or splitting is disabled.
	FrontMatter FrontMatter `json:"front_matter" yaml:"front_matter"`

	// Excerpt is a single-line preview built from the summary or the text.
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`

	Words       int           `json:"words" yaml:"words"`
	Runes       int           `json:"runes" yaml:"runes"`
	ReadingTime time.Duration `json:"reading_time" yaml:"reading_time"`

	// CodeBlocks is populated only with WithCodeBlocks(true).
	CodeBlocks []CodeBlock `json:"code_blocks,omitempty" yaml:"code_blocks,omitempty"`
}

// Title returns the front matter title, falling back to the first line of Text.
func (d *Document) Title() string {
	if d.FrontMatter.Title != "" {
		return d.FrontMatter.Title
	}
	for i, r := range d.Text {
		if r == '\n' {
			return d.Text[:i]
		}
	}
	return d.Text
}
