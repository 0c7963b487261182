package main

import (
	"fmt"
	"strings"

	"github.com/danmuck/ufr/internal/config"
	"github.com/danmuck/ufr/internal/logging"
	"github.com/danmuck/ufr/internal/output"
	"github.com/danmuck/ufr/internal/plugins"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	outputFormat string

	// set during PersistentPreRunE
	cfg       config.Config
	logger    zerolog.Logger
	formatter output.Formatter
	registry  *plugins.Registry
)

var rootCmd = &cobra.Command{
	Use:   "ufrctl",
	Short: "Inspect ufr command texts and buffers",
	Long: `ufrctl exercises the ufr argument binder and dynamic buffer from the shell:
tokenize command texts, look up named values, strip nesting levels and
render formatted buffers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		if cfgFile != "" {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		lc := cfg.Logging()
		lc.Out = cmd.ErrOrStderr()
		logging.Install(lc)
		logger = logging.Component("ufrctl")

		registry = newRegistry()
		f, err := registry.Resolve("output", strings.ToLower(outputFormat), "")
		if err != nil {
			return fmt.Errorf("output format %q: %w", outputFormat, err)
		}
		formatter = f.(output.Formatter)
		logger.Debug().Str("config", cfgFile).Str("output", outputFormat).Msg("ufrctl ready")
		return nil
	},
}

// newRegistry returns the components the CLI can resolve by name.
func newRegistry() *plugins.Registry {
	r := plugins.NewRegistry()
	r.Register("output", "table", "", output.TableFormatter{})
	r.Register("output", "json", "", output.JSONFormatter{})
	r.Register("output", "yaml", "", output.YAMLFormatter{})
	r.Register("output", "yml", "", output.YAMLFormatter{})
	return r
}

// RootCmd returns the root command for tests.
func RootCmd() *cobra.Command {
	return rootCmd
}

func render(cmd *cobra.Command, data any) error {
	out, err := formatter.Format(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, yaml")
}
