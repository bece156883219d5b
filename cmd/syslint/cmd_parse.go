package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dhamidi/syslint/sysml/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a SysML v2 file and dump the element tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			file := parser.Parse(src, args[0])

			switch outputFormat {
			case "json":
				data, err := json.MarshalIndent(file, "", "  ")
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println(string(data))
			case "tree":
				for _, elem := range file.Elements {
					fmt.Print(elem.String())
				}
				for _, d := range file.Diagnostics {
					fmt.Fprintf(os.Stderr, "%s:%d:%d: %s [%s] %s\n",
						d.Path, d.Span.Start.Line, d.Span.Start.Column,
						d.Severity, d.Code, d.Message)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	return cmd
}
