package mdplain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a strip mode other than ModeRegex or ModeAST.
var ErrUnknownMode = errors.New("unknown strip mode")

// Mode selects how markdown is turned into plain text.
type Mode string

const (
	// ModeRegex uses Strip: ordered pattern substitutions.
	ModeRegex Mode = "regex"
	// ModeAST uses StripAST: a goldmark parse and tree walk.
	ModeAST Mode = "ast"
)

// DefaultExcerptLength is the excerpt size in runes used by Process.
const DefaultExcerptLength = 160

// ParseMode parses a mode name, case-insensitively. Empty selects ModeRegex.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeRegex:
		return ModeRegex, nil
	case ModeAST:
		return ModeAST, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ProcessOptions holds options for Process.
type ProcessOptions struct {
	Mode           Mode
	FrontMatter    bool
	ExcerptLength  int
	WordsPerMinute int
	CodeBlocks     bool
	Config         *RenderConfig
}

// Option is a function that configures ProcessOptions.
type Option func(*ProcessOptions)

// WithMode sets the strip mode.
func WithMode(mode Mode) Option {
	return func(opts *ProcessOptions) {
		opts.Mode = mode
	}
}

// WithFrontMatter sets whether a leading front matter block is split off.
func WithFrontMatter(enable bool) Option {
	return func(opts *ProcessOptions) {
		opts.FrontMatter = enable
	}
}

// WithExcerptLength sets the maximum excerpt length in runes; 0 disables it.
func WithExcerptLength(n int) Option {
	return func(opts *ProcessOptions) {
		opts.ExcerptLength = n
	}
}

// WithWordsPerMinute sets the reading speed used for ReadingTime.
func WithWordsPerMinute(wpm int) Option {
	return func(opts *ProcessOptions) {
		opts.WordsPerMinute = wpm
	}
}

// WithCodeBlocks sets whether code blocks are collected into the Document.
func WithCodeBlocks(enable bool) Option {
	return func(opts *ProcessOptions) {
		opts.CodeBlocks = enable
	}
}

// WithConfig sets a custom RenderConfig for ModeAST.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ProcessOptions) {
		opts.Config = config
	}
}

// defaultProcessOptions returns the default processing options.
func defaultProcessOptions() *ProcessOptions {
	return &ProcessOptions{
		Mode:           ModeRegex,
		FrontMatter:    true,
		ExcerptLength:  DefaultExcerptLength,
		WordsPerMinute: DefaultWordsPerMinute,
		Config:         DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ProcessOptions {
	options := defaultProcessOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}
