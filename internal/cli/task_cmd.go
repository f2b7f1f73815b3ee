package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/taskora/internal/cli/formatter"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTaskID accepts a full task ID or an unambiguous prefix of one of
// the current user's tasks.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.ListByUser(ctx, app.Config.UserID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskStatusCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var in taskInput
	var tribeID string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				in.Title = args[0]
			}
			if in.Title == "" {
				if !app.interactive() {
					return fmt.Errorf("a title is required")
				}
				if err := taskForm(&in).Run(); err != nil {
					return err
				}
			}

			priority, err := domain.ParsePriority(in.Priority)
			if err != nil {
				return err
			}
			due, err := parseOptionalDate(in.Due)
			if err != nil {
				return err
			}

			t := &domain.Task{
				Title:       in.Title,
				Description: in.Description,
				Priority:    priority,
				Status:      domain.TaskTodo,
				DueDate:     due,
				UserID:      app.Config.UserID,
				Tags:        splitTags(in.Tags),
			}
			if tribeID != "" {
				t.TribeID = &tribeID
			}

			if err := app.Tasks.Create(cmd.Context(), t); err != nil {
				return err
			}
			printLine(cmd, fmt.Sprintf("Created task %s %s", formatter.TruncID(t.ID), t.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Description, "desc", "", "Task description")
	cmd.Flags().StringVarP(&in.Priority, "priority", "p", string(domain.PriorityNotUrgentImportant),
		"Matrix quadrant: urgent-important, not-urgent-important, urgent-not-important, not-urgent-not-important")
	cmd.Flags().StringVar(&in.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&tribeID, "tribe", "", "Share the task with a tribe")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var tribeID, status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				tasks []domain.Task
				err   error
			)
			if tribeID != "" {
				tasks, err = app.Tasks.ListByTribe(cmd.Context(), tribeID)
			} else {
				tasks, err = app.Tasks.ListByUser(cmd.Context(), app.Config.UserID)
			}
			if err != nil {
				return err
			}

			if status != "" {
				want, err := domain.ParseTaskStatus(status)
				if err != nil {
					return err
				}
				filtered := tasks[:0]
				for _, t := range tasks {
					if t.Status == want {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
			}

			if asJSON {
				return printJSON(cmd, tasks)
			}
			printLine(cmd, formatter.FormatTaskList(tasks, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&tribeID, "tribe", "", "List a tribe's shared tasks instead of your own")
	cmd.Flags().StringVar(&status, "status", "", "Only show tasks with this status")
	addJSONFlag(cmd.Flags(), &asJSON)

	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <todo|in-progress|completed>",
		Short: "Move a task to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseTaskStatus(args[1])
			if err != nil {
				return err
			}
			return setTaskStatus(cmd, app, args[0], status)
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTaskStatus(cmd, app, args[0], domain.TaskCompleted)
		},
	}
}

func setTaskStatus(cmd *cobra.Command, app *App, input string, status domain.TaskStatus) error {
	id, err := resolveTaskID(cmd.Context(), app, input)
	if err != nil {
		return err
	}
	t, err := app.Tasks.SetStatus(cmd.Context(), id, status)
	if err != nil {
		return err
	}
	printLine(cmd, fmt.Sprintf("%s %s", formatter.StatusPill(t.Status), t.Title))
	return nil
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if !force && app.interactive() {
				confirmed := false
				if err := confirmForm("Delete this task?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					printLine(cmd, "Cancelled.")
					return nil
				}
			}
			if err := app.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			printLine(cmd, "Deleted task "+formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
