package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"taskflows/internal/bootstrap"
	"taskflows/internal/platform/config"
)

type rootOptions struct {
	dataDir    string
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "taskflows",
		Short:         "Local tasks, notes, documents, calendar and goals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default $TASKFLOWS_DATA_DIR or ~/.local/share/taskflows)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/taskflows.yaml)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newActivityCmd(opts))
	root.AddCommand(newTaskCmd(opts))
	root.AddCommand(newNoteCmd(opts))
	root.AddCommand(newQuickCmd(opts))
	root.AddCommand(newDocCmd(opts))
	root.AddCommand(newEventCmd(opts))
	root.AddCommand(newGoalCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newClearCmd(opts))
	return root
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.dataDir, opts.configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(context.Background(), app)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				s := app.StoreCLI.Stats(ctx)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tasks: %d (%d completed)\nproductivity: %d%%\nnotes: %d\nquick notes: %d\ndocuments: %d\nevents: %d\n",
					s.TotalTasks, s.CompletedTasks, s.Productivity, s.TotalNotes, s.TotalQuickNotes, s.TotalDocuments, s.TotalEvents)
				return nil
			})
		},
	}
}

func newActivityCmd(opts *rootOptions) *cobra.Command {
	var limit int
	activity := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				entries := app.StoreCLI.RecentActivity(ctx, limit)
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no activity")
					return nil
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", humanize.Time(e.Timestamp), e.Type, e.Title)
				}
				return nil
			})
		},
	}
	activity.Flags().IntVar(&limit, "limit", 10, "number of entries (0 for all)")
	return activity
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outDir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of all data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SettingsCLI.Export(ctx)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, out.FileName)
				if err := os.WriteFile(path, out.Content, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s (%s)\n", path, humanize.Bytes(uint64(out.Size)))
				return nil
			})
		},
	}
	export.Flags().StringVar(&outDir, "out", ".", "output directory")
	return export
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear --yes",
		Short: "Erase all data and restore the seeded defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear data without --yes")
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SettingsCLI.ClearAll(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm erasing all data")
	return clearCmd
}

func requireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}
