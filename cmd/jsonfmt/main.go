// Package main provides the CLI entry point for the JSON formatter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cheatsheet-go/pkg/jsonfmt"
)

var (
	key    string
	indent int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsonfmt [file|-]",
		Short: "Read JSON file and print to stdout",
		Long: `jsonfmt pretty-prints a JSON document read from a file or from stdin ("-").
With --key only the value at the dotted path is kept. Pretty output of a file
is written back to that file; compact output (--indent 0) always goes to stdout.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := jsonfmt.Stdin
			if len(args) == 1 {
				file = args[0]
			}
			return jsonfmt.Run(jsonfmt.Options{
				File:   file,
				Key:    key,
				Indent: indent,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&key, "key", "k", "", "Key to print (dot-separated for nested)")
	rootCmd.Flags().IntVarP(&indent, "indent", "i", jsonfmt.DefaultIndent, "Pretty-print indent (0 for compact)")
	return rootCmd
}
