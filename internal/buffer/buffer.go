package buffer

import "unicode/utf8"

// TextBuffer accumulates plain text and tracks the current rune offset.
type TextBuffer struct {
	parts      []string
	runeOffset int
	byteOffset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.runeOffset += utf8.RuneCountInString(text)
	tb.byteOffset += len(text)
}

// RuneOffset returns the number of runes written so far.
func (tb *TextBuffer) RuneOffset() int {
	return tb.runeOffset
}

// ByteOffset returns the current byte offset (total string length).
func (tb *TextBuffer) ByteOffset() int {
	return tb.byteOffset
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// EndsWithSpace reports whether the last written byte is a space or tab.
func (tb *TextBuffer) EndsWithSpace() bool {
	if len(tb.parts) == 0 {
		return false
	}
	last := tb.parts[len(tb.parts)-1]
	c := last[len(last)-1]
	return c == ' ' || c == '\t'
}

// PopLast removes and returns the last written part.
// Used for replacing just-written bullet prefixes in task lists.
func (tb *TextBuffer) PopLast() string {
	if len(tb.parts) == 0 {
		return ""
	}
	last := tb.parts[len(tb.parts)-1]
	tb.parts = tb.parts[:len(tb.parts)-1]
	tb.runeOffset -= utf8.RuneCountInString(last)
	tb.byteOffset -= len(last)
	return last
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.byteOffset)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.runeOffset = 0
	tb.byteOffset = 0
}
