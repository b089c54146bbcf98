package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"treepick/internal/core/selection"
	"treepick/internal/core/tree"
	"treepick/internal/source"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print the selected keys and chips for a value without opening the UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := settings(cmd)
		if err != nil {
			return err
		}
		if cfg.File == "" {
			return errNoDocument
		}
		return runSummarize(cmd.OutOrStdout(), cfg.File, initialValue(cmd))
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

type summary struct {
	Selected []tree.Key           `json:"selected"`
	Tags     []selection.TagEntry `json:"tags"`
}

// runSummarize syncs value (or the document's own value when nil) into a
// fresh selection and prints its keys and chips.
func runSummarize(out io.Writer, path string, value []tree.Key) error {
	doc, err := source.Load(path)
	if err != nil {
		return err
	}
	if value == nil {
		value = doc.Value
	}
	f := tree.NewForest(doc.Tree)
	s := selection.SyncFromExternalValue(f, value)

	res := summary{Selected: s.SelectedKeys(f), Tags: selection.Summarize(s, f)}
	if res.Tags == nil {
		res.Tags = []selection.TagEntry{}
	}
	b, err := source.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
