package main

import "github.com/spf13/cobra"

type componentRow struct {
	Kind  string `json:"kind" yaml:"kind"`
	Name  string `json:"name" yaml:"name"`
	Class string `json:"class" yaml:"class"`
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List components resolvable by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, argv []string) error {
		rows := []componentRow{}
		for _, k := range registry.Keys() {
			rows = append(rows, componentRow{Kind: k.Kind, Name: k.Name, Class: k.Class})
		}
		return render(cmd, rows)
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}
