package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/mdplain"
)

type result struct {
	Source      string              `json:"source" yaml:"source"`
	Title       string              `json:"title,omitempty" yaml:"title,omitempty"`
	Text        string              `json:"text" yaml:"text"`
	Excerpt     string              `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Words       int                 `json:"words" yaml:"words"`
	Runes       int                 `json:"runes" yaml:"runes"`
	ReadingTime string              `json:"reading_time" yaml:"reading_time"`
	FrontMatter map[string]any      `json:"front_matter,omitempty" yaml:"front_matter,omitempty"`
	CodeBlocks  []mdplain.CodeBlock `json:"code_blocks,omitempty" yaml:"code_blocks,omitempty"`
}

func newResult(source string, doc *mdplain.Document) result {
	return result{
		Source:      source,
		Title:       doc.Title(),
		Text:        doc.Text,
		Excerpt:     doc.Excerpt,
		Words:       doc.Words,
		Runes:       doc.Runes,
		ReadingTime: doc.ReadingTime.String(),
		FrontMatter: doc.FrontMatter.Raw,
		CodeBlocks:  doc.CodeBlocks,
	}
}

func newStripCmd(v *viper.Viper) *cobra.Command {
	var (
		excerptOnly bool
		withCode    bool
	)

	cmd := &cobra.Command{
		Use:   "strip [files...]",
		Short: "Print markdown files as plain text (stdin when no file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := getSettings(cmd)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			opts := append(settings.Options(), mdplain.WithCodeBlocks(withCode))
			results := make([]result, 0, len(inputs))
			for _, in := range inputs {
				doc, err := mdplain.ProcessBytes(cmd.Context(), in.Data, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Name, err)
				}
				mdplain.Logger.Info("stripped", "source", in.Name, "words", doc.Words)
				results = append(results, newResult(in.Name, doc))
			}

			return writeResults(cmd.OutOrStdout(), settings.Format, results, excerptOnly)
		},
	}

	f := cmd.Flags()
	f.String("mode", string(mdplain.ModeRegex), "strip mode: regex|ast")
	f.Bool("front-matter", true, "split front matter before stripping")
	f.String("format", "text", "output format: text|json|yaml")
	f.Int("excerpt-length", mdplain.DefaultExcerptLength, "excerpt length in runes (0 disables)")
	f.Bool("keep-code", false, "ast mode: keep code block contents")
	f.Bool("diagram-links", false, "ast mode: replace mermaid blocks with mermaid.live links")
	f.BoolVar(&excerptOnly, "excerpt", false, "print the excerpt instead of the full text (text format)")
	f.BoolVar(&withCode, "code-blocks", false, "include code blocks in json/yaml output")

	for key, flag := range map[string]string{
		"mode":           "mode",
		"front_matter":   "front-matter",
		"format":         "format",
		"excerpt_length": "excerpt-length",
		"keep_code":      "keep-code",
		"diagram_links":  "diagram-links",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

func writeResults(w io.Writer, format string, results []result, excerptOnly bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			text := r.Text
			if excerptOnly {
				text = r.Excerpt
			}
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		}
		return nil
	}
}
