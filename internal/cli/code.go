package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mdplain"
	"github.com/riverfjs/mdplain/internal/util"
)

func newCodeCmd() *cobra.Command {
	var (
		outDir string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "code [files...]",
		Short: "Extract fenced and indented code blocks into files",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := getSettings(cmd)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			taken := map[string]bool{}
			for _, in := range inputs {
				body := in.Data
				if settings.FrontMatter {
					if _, rest, err := mdplain.SplitFrontMatter(in.Data); err == nil {
						body = rest
					} else {
						mdplain.Logger.Warn("ignoring front matter", "source", in.Name, "err", err)
					}
				}

				for _, block := range mdplain.ExtractCodeBlocks(string(body)) {
					if lang != "" && !strings.EqualFold(block.Language, lang) {
						continue
					}
					name := util.UniqueFilename(block.Filename, taken)
					path := filepath.Join(outDir, name)
					if err := os.WriteFile(path, []byte(block.Code+"\n"), 0o644); err != nil {
						return fmt.Errorf("write %s: %w", path, err)
					}
					mdplain.Logger.Info("extracted code block", "source", in.Name, "language", block.Language, "lines", block.Lines)
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write code blocks into")
	cmd.Flags().StringVar(&lang, "lang", "", "only extract blocks of this language")

	return cmd
}
