package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Arithmetic evaluator with last-result memory",
		Long:          "calc evaluates basic arithmetic, remembers the most recent result, and reports every operation on a timestamped diagnostic stream.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML display configuration")

	root.AddCommand(
		newAddCmd(&configPath),
		newSubtractCmd(&configPath),
		newMultiplyCmd(&configPath),
		newDivideCmd(&configPath),
		newPowerCmd(&configPath),
		newDemoCmd(&configPath),
	)
	return root
}
