package main

import (
	"fmt"

	"github.com/danmuck/ufr/internal/args"
	"github.com/spf13/cobra"
)

var (
	tokensDiv string
	tokensMax int
)

type tokenRow struct {
	Index  int    `json:"index" yaml:"index"`
	Token  string `json:"token" yaml:"token"`
	Cursor int    `json:"cursor" yaml:"cursor"`
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <text>",
	Short: "Split a command text into tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		opts := cfg.ScanOptions()
		if cmd.Flags().Changed("div") {
			if len(tokensDiv) != 1 {
				return fmt.Errorf("--div must be a single byte, got %q", tokensDiv)
			}
			opts = append(opts, args.WithDelimiter(tokensDiv[0]))
		}
		if cmd.Flags().Changed("max") {
			opts = append(opts, args.WithTokenMax(tokensMax))
		}

		rows := []tokenRow{}
		s := args.NewScanner(argv[0], opts...)
		for s.Scan() {
			rows = append(rows, tokenRow{Index: len(rows), Token: s.Token(), Cursor: s.Cursor()})
		}
		logger.Debug().Int("tokens", len(rows)).Msg("scanned")
		return render(cmd, rows)
	},
}

func init() {
	tokensCmd.Flags().StringVar(&tokensDiv, "div", " ", "token delimiter")
	tokensCmd.Flags().IntVar(&tokensMax, "max", args.TokenMax, "max characters kept per token (0 keeps all)")
	rootCmd.AddCommand(tokensCmd)
}
