// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// FileFlag is the persistent flag selecting the task file.
// main reads it with StorePathFromArgs before the container is built.
const FileFlag = "file"

// runMenuFunc is a function variable for running the interactive menu, allowing it to be mocked in tests.
var runMenuFunc = runMenu

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var storePath string

	root := &cobra.Command{
		Use:   "todo",
		Short: "Personal to-do list manager",
		Long: `todo keeps a personal task list in a JSON file.

Run without arguments to open the interactive menu, or use the
subcommands below for one-shot operations.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if c.ConfigErr != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", c.ConfigErr)
			}
			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenuFunc(cmd, c)
		},
	}

	root.PersistentFlags().StringVarP(&storePath, FileFlag, "f", "", "Task file (default: [store] path from config, then tasks.json)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		rmCmd,
		statsCmd,
		exportCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// StorePathFromArgs returns the --file value args would set, or "" when unset.
// args are parsed against the same command tree Execute uses, so values of
// other flags are never taken for the task file. Parse errors yield "" and
// surface again when the command runs.
func StorePathFromArgs(args []string) string {
	root := NewRootCommand(nil, "")
	cmd, rest, err := root.Find(args)
	if err != nil {
		return ""
	}
	cmd.InitDefaultHelpFlag()
	cmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
	if err := cmd.ParseFlags(rest); err != nil {
		return ""
	}
	path, err := cmd.Flags().GetString(FileFlag)
	if err != nil {
		return ""
	}
	return path
}

// launchTUI runs the full-screen task browser until the user quits.
// The list reloads when the task file changes on disk.
func launchTUI(c *app.Container) error {
	model := tui.New(c)

	w, err := c.WatchTaskFile()
	if err != nil {
		c.Logger.Warn("tui", "file watching disabled: "+err.Error())
	} else {
		defer func() { _ = w.Close() }()
		model.WatchChanges(w.Changes())
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
