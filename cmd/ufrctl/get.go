package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/ufr/internal/args"
	"github.com/spf13/cobra"
)

var (
	getType    string
	getDefault string
	getKind    string
)

type getRow struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

var getCmd = &cobra.Command{
	Use:   "get <text> <name>",
	Short: "Look up the value that follows a name in a command text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, argv []string) error {
		a := args.Args{Text: argv[0]}
		name := argv[1]
		value, err := lookup(&a, name)
		if err != nil {
			return err
		}
		return render(cmd, getRow{Name: name, Type: getType, Value: value})
	},
}

func lookup(a *args.Args, name string) (string, error) {
	def := getDefault
	if def == "" && getType != "string" && getType != "func" {
		def = "0"
	}
	invalid := func(err error) error {
		return fmt.Errorf("invalid --default %q for type %s: %w", def, getType, err)
	}
	switch getType {
	case "uint":
		d, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return "", invalid(err)
		}
		return strconv.FormatUint(a.GetUint(name, d), 10), nil
	case "int":
		d, err := strconv.Atoi(def)
		if err != nil {
			return "", invalid(err)
		}
		return strconv.Itoa(a.GetInt(name, d)), nil
	case "float":
		d, err := strconv.ParseFloat(def, 32)
		if err != nil {
			return "", invalid(err)
		}
		return strconv.FormatFloat(float64(a.GetFloat(name, float32(d))), 'f', -1, 32), nil
	case "string":
		return a.GetString(name, def), nil
	case "func":
		h := a.GetFunc(registry, getKind, name, nil)
		if h == nil {
			return def, nil
		}
		return fmt.Sprintf("%T", h), nil
	default:
		return "", fmt.Errorf("unknown --type %q (want uint, int, float, string or func)", getType)
	}
}

func init() {
	getCmd.Flags().StringVar(&getType, "type", "string", "value type: uint, int, float, string, func")
	getCmd.Flags().StringVar(&getDefault, "default", "", "value returned when the name is absent")
	getCmd.Flags().StringVar(&getKind, "kind", "output", "component kind resolved by --type func")
	rootCmd.AddCommand(getCmd)
}
