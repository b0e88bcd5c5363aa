package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"taskflows/internal/bootstrap"
	notedto "taskflows/internal/modules/notes/dto"
	taskdto "taskflows/internal/modules/tasks/dto"
)

func newTaskCmd(opts *rootOptions) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Manage tasks"}

	var priority, category, due string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TaskCLI.Add(ctx, strings.Join(args, " "), priority, category, due)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) priority=%s category=%s\n", out.Title, out.ID, out.Priority, out.Category)
				return nil
			})
		},
	}
	add.Flags().StringVar(&priority, "priority", "medium", "priority: low|medium|high")
	add.Flags().StringVar(&category, "category", "Work", "category")
	add.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD")

	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				tasks, err := app.TaskCLI.List(ctx, filter)
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
					return nil
				}
				for _, t := range tasks {
					printTask(cmd, t)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&filter, "filter", "all", "filter: all|completed|pending|high|medium|low")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TaskCLI.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				printTask(cmd, out)
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.TaskCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	breakdown := &cobra.Command{
		Use:   "breakdown",
		Short: "Count tasks by status, priority and category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TaskCLI.Breakdown(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "total: %d completed: %d pending: %d\n", out.Total, out.Completed, out.Pending)
				printCounts(cmd, "priority", out.ByPriority)
				printCounts(cmd, "category", out.ByCategory)
				return nil
			})
		},
	}

	task.AddCommand(add, list, toggle, del, breakdown)
	return task
}

func printTask(cmd *cobra.Command, t taskdto.TaskOutput) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	due := ""
	if t.DueDate != "" {
		due = " due=" + t.DueDate
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s (%s/%s)%s\n", mark, t.ID, t.Title, t.Priority, t.Category, due)
}

func printCounts(cmd *cobra.Command, label string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d\n", label, k, counts[k])
	}
}

func newNoteCmd(opts *rootOptions) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Manage notes"}

	var title, content string
	var tags []string
	add := &cobra.Command{
		Use:   "add --title <title> --content <text>",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("title", title); err != nil {
				return err
			}
			if err := requireFlag("content", content); err != nil {
				return err
			}
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NoteCLI.Create(ctx, title, content, tags)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", out.Title, out.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "note title")
	add.Flags().StringVar(&content, "content", "", "note content")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List or search notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				notes, err := app.NoteCLI.Search(ctx, search)
				if err != nil {
					return err
				}
				if len(notes) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
					return nil
				}
				for _, n := range notes {
					printNote(cmd, n)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&search, "search", "", "case-insensitive search over title, content and tags")

	var newTitle, newContent string
	var newTags []string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a note's title, content or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setTags := cmd.Flags().Changed("tags")
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NoteCLI.Update(ctx, args[0], newTitle, newContent, newTags, setTags)
				if err != nil {
					return err
				}
				printNote(cmd, out)
				return nil
			})
		},
	}
	update.Flags().StringVar(&newTitle, "title", "", "new title")
	update.Flags().StringVar(&newContent, "content", "", "new content")
	update.Flags().StringSliceVar(&newTags, "tags", nil, "replacement tags (empty to clear)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.NoteCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List distinct note tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				all, err := app.NoteCLI.Tags(ctx)
				if err != nil {
					return err
				}
				for _, tag := range all {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), tag)
				}
				return nil
			})
		},
	}

	note.AddCommand(add, list, update, del, tagsCmd)
	return note
}

func printNote(cmd *cobra.Command, n notedto.NoteOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s [%s] updated=%s\n", n.ID, n.Title, strings.Join(n.Tags, ","), n.UpdatedAt.Format("2006-01-02 15:04"))
}

func newQuickCmd(opts *rootOptions) *cobra.Command {
	quick := &cobra.Command{Use: "quick", Short: "Manage quick notes"}

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Capture a quick note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NoteCLI.AddQuick(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added quick note %s\n", out.ID)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List quick notes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				notes, err := app.NoteCLI.ListQuick(ctx)
				if err != nil {
					return err
				}
				if len(notes) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no quick notes")
					return nil
				}
				for _, n := range notes {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", n.ID, n.Content)
				}
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quick note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.NoteCLI.DeleteQuick(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	quick.AddCommand(add, list, del)
	return quick
}
