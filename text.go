package mdplain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuneLen returns the length of text in runes (Unicode code points).
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Browsers and most JSON consumers count string length in UTF-16 code units.
// Characters outside the BMP (codepoint > 0xFFFF) take 2 units; all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// SplitText splits text into chunks of at most maxRunes runes.
//
// Tries to split right after the last newline that fits; falls back to a hard
// split at maxRunes. Leading and trailing newlines of every chunk are stripped
// and empty chunks are dropped. maxRunes <= 0 returns the whole text as one chunk.
func SplitText(text string, maxRunes int) []string {
	var chunks []string
	emit := func(chunk string) {
		if chunk = strings.Trim(chunk, "\n"); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	runes := []rune(text)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		emit(text)
		return chunks
	}

	start := 0
	for start < len(runes) {
		if len(runes)-start <= maxRunes {
			emit(string(runes[start:]))
			break
		}

		// Find the last newline that fits within budget
		end := -1
		for i := start + maxRunes - 1; i >= start; i-- {
			if runes[i] == '\n' {
				end = i + 1
				break
			}
		}
		if end == -1 {
			// No newline fits -- hard split at maxRunes boundary
			end = start + maxRunes
		}

		emit(string(runes[start:end]))
		start = end
	}

	return chunks
}

// Excerpt builds a single-line preview of at most maxRunes runes.
//
// Whitespace runs are collapsed to one space. Text that does not fit is cut
// at the last word boundary, trailing punctuation is dropped and "…" appended;
// the ellipsis counts towards maxRunes. maxRunes <= 0 returns "".
func Excerpt(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= maxRunes {
		return collapsed
	}

	budget := maxRunes - 1
	cut := runes[:budget]
	if runes[budget] != ' ' {
		for i := len(cut) - 1; i > 0; i-- {
			if cut[i] == ' ' {
				cut = cut[:i]
				break
			}
		}
	}

	trimmed := strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	if trimmed == "" {
		trimmed = strings.TrimSpace(string(runes[:budget]))
	}
	return trimmed + "…"
}
