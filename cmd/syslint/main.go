package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// exitCode is set by the check command so lint findings can drive the
// process exit status without aborting cobra's normal flow.
var exitCode int

func main() {
	rootCmd := &cobra.Command{
		Use:     "syslint",
		Short:   "A linter for SysML v2 textual notation",
		Version: version,
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
