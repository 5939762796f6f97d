package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riverfjs/mdplain"
	"github.com/riverfjs/mdplain/internal/config"
	"github.com/riverfjs/mdplain/internal/logger"
)

type ctxKey string

const settingsKey ctxKey = "settings"

// Execute builds the root command and runs it.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the Cobra root command and wires configuration.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "mdplain",
		Short:         "Turn CMS markdown into plain text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(v); err != nil {
				return err
			}
			settings, err := config.FromViper(v)
			if err != nil {
				return err
			}

			l, err := logger.New(cmd.ErrOrStderr(), settings.LogLevel)
			if err != nil {
				return err
			}
			mdplain.SetLogger(l)
			if used := v.ConfigFileUsed(); used != "" {
				l.Debug("loaded config", "path", used)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, settingsKey, settings))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug|info|warn|error")
	_ = v.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newStripCmd(v))
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newCodeCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getSettings(cmd *cobra.Command) (config.Settings, error) {
	s, ok := cmd.Context().Value(settingsKey).(config.Settings)
	if !ok {
		return config.Settings{}, fmt.Errorf("internal error: settings not initialized")
	}
	return s, nil
}
