package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"taskflows/internal/bootstrap"
	caldto "taskflows/internal/modules/calendar/dto"
)

func newDocCmd(opts *rootOptions) *cobra.Command {
	doc := &cobra.Command{Use: "doc", Short: "Manage editor documents"}

	newDoc := &cobra.Command{
		Use:   "new [title]",
		Short: "Create an empty document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.DocumentCLI.Create(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", out.Title, out.ID)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				docs, err := app.DocumentCLI.List(ctx)
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no documents")
					return nil
				}
				for _, d := range docs {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  modified %s\n", d.ID, d.Title, humanize.Bytes(uint64(d.Size)), humanize.Time(d.LastModified))
				}
				return nil
			})
		},
	}

	var title, content, file string
	save := &cobra.Command{
		Use:   "save <id>",
		Short: "Replace a document's title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := content
			if file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read content file: %w", err)
				}
				body = string(raw)
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.DocumentCLI.Save(ctx, args[0], title, body)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", out.Title, humanize.Bytes(uint64(out.Size)))
				return nil
			})
		},
	}
	save.Flags().StringVar(&title, "title", "", "new title (keeps the current one when empty)")
	save.Flags().StringVar(&content, "content", "", "document content")
	save.Flags().StringVar(&file, "file", "", "read content from a file")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.DocumentCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	var outDir string
	export := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a document as markdown with frontmatter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.DocumentCLI.Export(ctx, args[0])
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, out.FileName)
				if err := os.WriteFile(path, []byte(out.Content), 0o644); err != nil {
					return fmt.Errorf("write document: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s (%s)\n", path, humanize.Bytes(uint64(len(out.Content))))
				return nil
			})
		},
	}
	export.Flags().StringVar(&outDir, "out", ".", "output directory")

	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a markdown file as a new document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read markdown: %w", err)
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.DocumentCLI.Import(ctx, filepath.Base(args[0]), string(raw))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s)\n", out.Title, out.ID)
				return nil
			})
		},
	}

	doc.AddCommand(newDoc, list, save, del, export, importCmd)
	return doc
}

func newEventCmd(opts *rootOptions) *cobra.Command {
	event := &cobra.Command{Use: "event", Short: "Manage calendar events"}

	var date, at, location, color string
	var attendees []string
	add := &cobra.Command{
		Use:   "add <title> --date YYYY-MM-DD --time <time>",
		Short: "Add an event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.CalendarCLI.Add(ctx, caldto.AddInput{
					Title:     strings.Join(args, " "),
					Date:      date,
					Time:      at,
					Location:  location,
					Attendees: attendees,
					Color:     color,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) on %s at %s\n", out.Title, out.ID, out.Date, out.Time)
				return nil
			})
		},
	}
	add.Flags().StringVar(&date, "date", "", "event date YYYY-MM-DD")
	add.Flags().StringVar(&at, "time", "", "event time, e.g. 10:00 AM")
	add.Flags().StringVar(&location, "location", "", "location")
	add.Flags().StringSliceVar(&attendees, "attendees", nil, "attendees")
	add.Flags().StringVar(&color, "color", "", "display color (default blue)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				events, err := app.CalendarCLI.List(ctx)
				if err != nil {
					return err
				}
				printEvents(cmd, events)
				return nil
			})
		},
	}

	day := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "List events on a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				target = args[0]
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				events, err := app.CalendarCLI.Day(ctx, target)
				if err != nil {
					return err
				}
				printEvents(cmd, events)
				return nil
			})
		},
	}

	month := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month grid (default this month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := time.Now()
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("month must be YYYY-MM: %w", err)
				}
				ref = parsed
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				grid, err := app.CalendarCLI.Month(ctx, ref.Year(), int(ref.Month()))
				if err != nil {
					return err
				}
				printMonth(cmd, grid)
				return nil
			})
		},
	}

	var limit int
	upcoming := &cobra.Command{
		Use:   "upcoming",
		Short: "List events from today onwards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				events, err := app.CalendarCLI.Upcoming(ctx, limit)
				if err != nil {
					return err
				}
				printEvents(cmd, events)
				return nil
			})
		},
	}
	upcoming.Flags().IntVar(&limit, "limit", 5, "maximum number of events")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.CalendarCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	event.AddCommand(add, list, day, month, upcoming, del)
	return event
}

func printEvents(cmd *cobra.Command, events []caldto.EventOutput) {
	if len(events) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no events")
		return
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %s %s  %s", e.ID, e.Date, e.Time, e.Title)
		if e.Location != "" {
			line += " @ " + e.Location
		}
		if len(e.Attendees) > 0 {
			line += " with " + strings.Join(e.Attendees, ", ")
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

func printMonth(cmd *cobra.Command, grid caldto.MonthOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %d\n", time.Month(grid.Month), grid.Year)
	_, _ = fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")
	var sb strings.Builder
	for i := 0; i < grid.Offset; i++ {
		sb.WriteString("    ")
	}
	col := grid.Offset
	for _, cell := range grid.Days {
		mark := " "
		if len(cell.Events) > 0 {
			mark = "*"
		}
		fmt.Fprintf(&sb, "%3d%s", cell.Day, mark)
		col++
		if col%7 == 0 {
			sb.WriteString("\n")
		}
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(sb.String(), "\n"))
	for _, cell := range grid.Days {
		for _, e := range cell.Events {
			_, _ = fmt.Fprintf(w, "%s %s  %s\n", cell.Date, e.Time, e.Title)
		}
	}
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage goals"}

	var target int
	var deadline string
	add := &cobra.Command{
		Use:   "add <title> --target <n>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Add(ctx, strings.Join(args, " "), target, deadline)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) target=%d deadline=%s\n", out.Title, out.ID, out.Target, out.Deadline)
				return nil
			})
		},
	}
	add.Flags().IntVar(&target, "target", 1, "target count")
	add.Flags().StringVar(&deadline, "deadline", "", "free-text deadline")

	list := &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				goals, err := app.GoalCLI.List(ctx)
				if err != nil {
					return err
				}
				if len(goals) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
					return nil
				}
				for _, g := range goals {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d/%d (%d%%)  %s\n", g.ID, g.Title, g.Current, g.Target, g.Percent, g.Deadline)
				}
				return nil
			})
		},
	}

	progress := &cobra.Command{
		Use:   "progress <id> <current>",
		Short: "Set a goal's progress, clamped to its target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("current must be a number: %w", err)
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Progress(ctx, args[0], current)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %d/%d (%d%%)\n", out.Title, out.Current, out.Target, out.Percent)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.GoalCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	goal.AddCommand(add, list, progress, del)
	return goal
}
