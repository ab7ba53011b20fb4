package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// rule separates sections of menu and list output.
var rule = strings.Repeat("=", 60)

// newAddCommand creates the add command for creating a new task.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Body     string
		Priority string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task to the end of the list.

Multiple arguments are joined with spaces to form the title.
Priority accepts high, medium or low (also h, m, l). The default is medium.

Examples:
  # Add a task
  todo add Buy milk

  # Add a task with a description and priority
  todo add "Write report" --body "Quarterly numbers" --priority high`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Title:       strings.Join(args, " "),
				Description: opts.Body,
				Priority:    opts.Priority,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", out.Position, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Body, "body", "b", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Task priority (high, medium, low)")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the task list.

By default completed tasks are hidden. Numbers always refer to the
position in the full list, so they can be passed to done and rm.

Examples:
  # List pending tasks
  todo list

  # List all tasks including completed
  todo list --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				ShowCompleted: all,
			})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all tasks including completed")

	return cmd
}

// newDoneCommand creates the done command for completing a task.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <n>",
		Short: "Mark a task as completed",
		Long: `Mark the task at position n as completed.

Examples:
  todo done 2
  todo done "#2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				Position: position,
			})
			if err != nil {
				return err
			}

			if out.AlreadyCompleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is already completed: %s\n", position, out.Task.Title)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", position, out.Task.Title)
			return nil
		},
	}
	return cmd
}

// newRmCommand creates the rm command for deleting a task.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <n>",
		Short: "Delete a task",
		Long: `Delete the task at position n. Later tasks move up by one.

Examples:
  todo rm 1
  todo rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{
				Position: position,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", position, out.Task.Title)
			return nil
		},
	}
	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GetStatisticsUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			printStatistics(cmd.OutOrStdout(), out.Statistics)
			return nil
		},
	}
	return cmd
}

// parsePosition parses a task number, allowing a leading #.
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q: %w", s, errors.Unwrap(err))
	}
	return n, nil
}

// printTaskList prints list entries as blocks, one per task.
func printTaskList(w io.Writer, out *usecase.ListTasksOutput) {
	if out.Total == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, "TASK LIST")
	_, _ = fmt.Fprintln(w, rule)

	for _, e := range out.Entries {
		printTask(w, e.Position, e.Task)
	}
}

// printTask prints a single task block.
func printTask(w io.Writer, position int, task *domain.Task) {
	status := "○"
	if task.Completed {
		status = "✓"
	}

	_, _ = fmt.Fprintf(w, "\n%d. %s %s\n", position, status, task.Title)
	_, _ = fmt.Fprintf(w, "   %s Priority: %s\n", task.Priority.Icon(), task.Priority)
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "   Description: %s\n", task.Description)
	}
	_, _ = fmt.Fprintf(w, "   Created: %s\n", task.CreatedAt)
}

// printStatistics prints the statistics block.
func printStatistics(w io.Writer, s domain.Statistics) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, "STATISTICS")
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintf(w, "Total tasks: %d\n", s.Total)
	_, _ = fmt.Fprintf(w, "Completed: %d\n", s.Completed)
	_, _ = fmt.Fprintf(w, "Pending: %d\n", s.Pending)
	if s.HasPercentage() {
		_, _ = fmt.Fprintf(w, "Progress: %.1f%%\n", s.Percentage)
	}
}
