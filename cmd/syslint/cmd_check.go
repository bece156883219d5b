package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/syslint/format"
	"github.com/dhamidi/syslint/sysml"
	"github.com/dhamidi/syslint/sysml/parser"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var outputFormat string
	var ruleList string
	var minSeverity string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Lint SysML v2 source files",
		Long: `Lint SysML v2 source files and report diagnostics.

Exit codes:
  0  no issues found
  1  warnings or infos found, but no errors
  2  errors found`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch minSeverity {
			case "error", "warning", "info":
			default:
				return fmt.Errorf("unknown severity: %s", minSeverity)
			}

			opts := sysml.DefaultOptions()
			opts.MinSeverity = parser.ParseSeverity(minSeverity)
			if ruleList != "" {
				opts.Rules = strings.Split(ruleList, ",")
			}

			var all []parser.Diagnostic
			for _, path := range args {
				diags, err := sysml.LintFile(path, opts)
				if err != nil {
					fmt.Fprintf(os.Stderr, "syslint: cannot read %q: %v\n", path, err)
					continue
				}
				all = append(all, diags...)
			}
			parser.SortDiagnostics(all)

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				color := !noColor && isatty.IsTerminal(os.Stdout.Fd())
				encoder = format.NewTextEncoder(os.Stdout, color)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(&format.Report{Diagnostics: all}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			exitCode = sysml.ExitCode(all)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVar(&ruleList, "rules", "", "comma-separated rule IDs to enable, e.g. W001,W010 (default: all)")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "info", "minimum severity to report (error, warning, info)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color output")
	return cmd
}
