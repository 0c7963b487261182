package main

import (
	"github.com/danmuck/ufr/internal/args"
	"github.com/spf13/cobra"
)

type decreaseRow struct {
	Text      string `json:"text" yaml:"text"`
	Decreased string `json:"decreased" yaml:"decreased"`
}

var decreaseCmd = &cobra.Command{
	Use:   "decrease <text>",
	Short: "Strip one nesting level from a command text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, argv []string) error {
		return render(cmd, decreaseRow{Text: argv[0], Decreased: args.DecreaseLevel(argv[0])})
	},
}

func init() {
	rootCmd.AddCommand(decreaseCmd)
}
