package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/riverfjs/mdplain"
)

// ConfigOption describes one configuration key and its default.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns every supported key with its default value.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "mode", Default: string(mdplain.ModeRegex), Comment: "strip mode: regex | ast"},
		{Key: "front_matter", Default: true, Comment: "split YAML/TOML/JSON front matter before stripping"},
		{Key: "format", Default: "text", Comment: "output format: text | json | yaml"},
		{Key: "excerpt_length", Default: mdplain.DefaultExcerptLength, Comment: "excerpt length in runes (0 disables)"},
		{Key: "words_per_minute", Default: mdplain.DefaultWordsPerMinute, Comment: "reading speed for reading time"},
		{Key: "keep_code", Default: false, Comment: "ast mode: keep code block contents"},
		{Key: "diagram_links", Default: false, Comment: "ast mode: replace mermaid blocks with mermaid.live links"},
		{Key: "log_level", Default: "warn", Comment: "debug | info | warn | error"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// Flags bound with BindPFlag take precedence over all of them.
func Load(v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdplain"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdplain"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: MDPLAIN_*
	v.SetEnvPrefix("mdplain")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return nil
}

// Settings is the resolved configuration used by the CLI.
type Settings struct {
	Mode           mdplain.Mode
	FrontMatter    bool
	Format         string
	ExcerptLength  int
	WordsPerMinute int
	KeepCode       bool
	DiagramLinks   bool
	LogLevel       string
}

// FromViper validates and extracts Settings from a loaded Viper instance.
func FromViper(v *viper.Viper) (Settings, error) {
	mode, err := mdplain.ParseMode(v.GetString("mode"))
	if err != nil {
		return Settings{}, err
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString("format")))
	switch format {
	case "text", "json", "yaml":
	default:
		return Settings{}, fmt.Errorf("unknown output format %q", format)
	}

	return Settings{
		Mode:           mode,
		FrontMatter:    v.GetBool("front_matter"),
		Format:         format,
		ExcerptLength:  v.GetInt("excerpt_length"),
		WordsPerMinute: v.GetInt("words_per_minute"),
		KeepCode:       v.GetBool("keep_code"),
		DiagramLinks:   v.GetBool("diagram_links"),
		LogLevel:       v.GetString("log_level"),
	}, nil
}

// Options converts Settings into processing options.
func (s Settings) Options() []mdplain.Option {
	cfg := *mdplain.DefaultConfig()
	cfg.KeepCodeBlocks = s.KeepCode
	cfg.DiagramLinks = s.DiagramLinks

	return []mdplain.Option{
		mdplain.WithMode(s.Mode),
		mdplain.WithFrontMatter(s.FrontMatter),
		mdplain.WithExcerptLength(s.ExcerptLength),
		mdplain.WithWordsPerMinute(s.WordsPerMinute),
		mdplain.WithConfig(&cfg),
	}
}
