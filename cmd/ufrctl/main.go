package main

import (
	"fmt"
	"os"

	"github.com/danmuck/ufr/internal/logging"
)

func main() {
	// replaced by the configured logger once flags are parsed
	logging.ConfigureRuntime()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ufrctl:", err)
		os.Exit(1)
	}
}
