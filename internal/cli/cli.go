// Package cli implements the command-line interface of rcol.
package cli

import (
	"fmt"
	"os"

	"github.com/bjaus/rcol"
	"github.com/spf13/cobra"
)

// die prints a message to stderr and exits with a non-zero status. The
// pipeline is all-or-nothing: no partial output survives an error.
func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// DoCLI reads the command-line arguments, runs the pipeline, and writes
// the result to stdout.
func DoCLI() {
	cfg := rcol.DefaultConfig()

	var (
		file    string
		useCSV  bool
		useTSV  bool
		useJSON bool
		useYAML bool
		useHTML bool
		useMD   bool
		columns bool
		borders bool
		verify  bool
	)

	rootCmd := &cobra.Command{
		Use:   "rcol [flags] [COLUMN|START:END...]",
		Short: "Format and shape line-oriented text into columns",
		Long: `rcol reads lines from a file and/or stdin, splits them into fields,
and renders an aligned table. Trailing arguments select and reorder the
output columns: 1-based numbers or START:END ranges, reversed ranges
allowed, repeats allowed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cfg.Columns = args
			if borders {
				cfg.Border = rcol.BorderFull
			} else if columns {
				cfg.Border = rcol.BorderColumns
			}
			if verify {
				fmt.Printf("Config: %+v\n", cfg)
				return
			}
			run(file, cfg, pickFormat(useCSV, useTSV, useJSON, useYAML, useHTML, useMD))
		},
	}

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&file, "file", "f", "", "read input from FILENAME")
	flags.StringVarP(&cfg.Header, "header", "H", "", "define a custom header line")
	flags.StringVarP(&cfg.Separator, "sep", "s", cfg.Separator, "input field separator")
	flags.BoolVarP(&cfg.Collapse, "collapse", "m", false, "treat runs of whitespace as one delimiter")
	flags.IntVarP(&cfg.Padding, "pad", "w", cfg.Padding, "padding width on each side of a cell")
	flags.StringVarP(&cfg.ColSep, "colsep", "C", cfg.ColSep, "column separator string for --cs mode")
	flags.StringVarP(&cfg.Filter, "filter", "F", "", "process only lines matching REGEX")
	flags.IntVarP(&cfg.SortColumn, "sortcol", "S", 0, "sort by output column N (1-based)")
	flags.IntVarP(&cfg.GroupColumn, "gcol", "g", 0, "group by output column N (1-based)")
	flags.BoolVar(&cfg.KeepGroupValues, "gcolval", false, "keep repeated group values visible")
	flags.BoolVar(&cfg.NoFormat, "nf", false, "no format: do not align columns")
	flags.BoolVar(&cfg.NoNumeric, "nn", false, "no numerical: do not right-align numbers")
	flags.BoolVar(&cfg.NoHeadline, "nhl", false, "treat the first line as data, not a header")
	flags.BoolVar(&cfg.RemoveHeader, "rh", false, "discard the first line of input")
	flags.BoolVar(&cfg.TitleSep, "ts", false, "draw a line between header and data")
	flags.BoolVar(&cfg.FooterSep, "fs", false, "draw a line before the last data row")
	flags.BoolVar(&columns, "cs", false, "draw a vertical line between columns")
	flags.BoolVarP(&borders, "pp", "p", false, "pretty print: draw a border around the table")
	flags.BoolVarP(&cfg.Numbering, "num", "n", false, "add a row with column numbers at the top")
	flags.BoolVar(&useCSV, "csv", false, "output as CSV")
	flags.BoolVar(&useTSV, "tsv", false, "output as TSV")
	flags.BoolVar(&useJSON, "json", false, "output as JSON")
	flags.BoolVar(&useYAML, "yaml", false, "output as YAML")
	flags.BoolVar(&useHTML, "html", false, "output as HTML")
	flags.BoolVar(&useMD, "md", false, "output as Markdown")
	flags.BoolVar(&cfg.TitleColumn, "jtc", false, "key JSON/YAML objects by the first column")
	flags.BoolVarP(&verify, "verify", "v", false, "print the resolved configuration and exit")

	if err := rootCmd.Execute(); err != nil {
		die("Error: %v", err)
	}
}

func pickFormat(useCSV, useTSV, useJSON, useYAML, useHTML, useMD bool) rcol.Format {
	switch {
	case useCSV:
		return rcol.CSV
	case useTSV:
		return rcol.TSV
	case useJSON:
		return rcol.JSON
	case useYAML:
		return rcol.YAML
	case useHTML:
		return rcol.HTML
	case useMD:
		return rcol.Markdown
	default:
		return rcol.Text
	}
}

func run(file string, cfg rcol.Config, format rcol.Format) {
	lines, err := readInput(file)
	if err != nil {
		die("Error reading input: %v", err)
	}
	t, err := rcol.Process(lines, cfg)
	if err != nil {
		die("Error processing input: %v", err)
	}
	if err := rcol.Write(os.Stdout, format, t, cfg); err != nil {
		die("Error formatting output: %v", err)
	}
}
