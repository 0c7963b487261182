package main

import (
	"fmt"

	"github.com/danmuck/ufr/internal/config"
	"github.com/spf13/cobra"
)

var (
	initKind  string
	initForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write and check ufrctl config files",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a default config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		if err := config.WriteTemplate(argv[0], initKind, initForce); err != nil {
			return err
		}
		logger.Info().Str("path", argv[0]).Str("kind", initKind).Msg("config written")
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", argv[0])
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Load a config file and print the effective values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		loaded, err := config.Load(argv[0])
		if err != nil {
			return err
		}
		return render(cmd, loaded)
	},
}

func init() {
	configInitCmd.Flags().StringVar(&initKind, "kind", "toml", "config format: toml or yaml")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
