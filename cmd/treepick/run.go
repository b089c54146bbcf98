package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"treepick/internal/config"
	"treepick/internal/core/tree"
	"treepick/internal/infra/logx"
	"treepick/internal/infra/watch"
	"treepick/internal/source"
	"treepick/internal/ui"
)

var errNoDocument = errors.New("no document: pass --file or set " + config.KeyFile)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the widgets for a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("watch", "w", false, "Reload the document when it changes on disk")
	runCmd.Flags().Bool("debug", false, "Write debug logs to debug.log")
	runCmd.Flags().Int("chip-width", 0, "Maximum width of a chip label")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

// settings resolves rc file, environment and flags, flags winning.
func settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File, _ = flags.GetString("file")
	}
	if flags.Lookup("watch") != nil && flags.Changed("watch") {
		cfg.Watch, _ = flags.GetBool("watch")
	}
	if flags.Lookup("chip-width") != nil && flags.Changed("chip-width") {
		w, _ := flags.GetInt("chip-width")
		if w <= 0 {
			return cfg, fmt.Errorf("--chip-width must be positive, got %d", w)
		}
		cfg.MaxChipWidth = w
	}
	return cfg, nil
}

// initialValue returns nil when --value was not given so the document's
// own value applies.
func initialValue(cmd *cobra.Command) []tree.Key {
	if !cmd.Flags().Changed("value") {
		return nil
	}
	raw, _ := cmd.Flags().GetStringSlice("value")
	keys := make([]tree.Key, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			keys = append(keys, tree.Key(r))
		}
	}
	return keys
}

func debugEnabled(cmd *cobra.Command) bool {
	if d, _ := cmd.Flags().GetBool("debug"); d {
		return true
	}
	return len(os.Getenv("DEBUG")) > 0
}

func runTUI(cmd *cobra.Command, out io.Writer) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	if cfg.File == "" {
		return errNoDocument
	}

	if debugEnabled(cmd) {
		f, err := tea.LogToFile("debug.log", "treepick")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.LevelDebug)
		log.SetOutput(logx.StdlogWriter(logx.LevelInfo, f))
		fmt.Fprintln(cmd.ErrOrStderr(), "Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	doc, err := source.Load(cfg.File)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var w *watch.Watcher
	if cfg.Watch {
		w, err = watch.New(cfg.File, watch.WithOnError(func(err error) {
			logx.Warnf("watch %s: %v", cfg.File, err)
		}))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("watch %s: %w", cfg.File, err)
		}
		defer w.Stop()
	}

	model := ui.New(ui.Options{
		Config:   cfg,
		Path:     cfg.File,
		Document: doc,
		Value:    initialValue(cmd),
		Watcher:  w,
	})
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result := final.(ui.Model).Result()
	logx.Infow("exit", logx.Fields{"tree": len(result.Tree), "tags": len(result.Tags)})
	b, err := source.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
