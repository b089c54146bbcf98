package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treepick",
	Short: "Terminal selection widgets around a tri-state tree picker",
	Long: `treepick opens a document (JSON or YAML) in a terminal UI with a tree
dropdown, a tag input, an autocomplete and a date-range picker, and prints
the final selection as JSON when it exits.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Document to load (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().StringSlice("value", nil, "Initial tree selection, comma separated keys")
}
