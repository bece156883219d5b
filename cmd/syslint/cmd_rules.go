package main

import (
	"fmt"

	"github.com/dhamidi/syslint/sysml"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List all lint rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range sysml.RuleCatalog() {
				fmt.Printf("%-6s %-8s %s\n", info.ID, info.Severity, info.Summary)
			}
			return nil
		},
	}
}
