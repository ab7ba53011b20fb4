package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch the full-screen task browser.

Keys: ↑/k ↓/j move, space/enter complete, d delete, a show all,
n add, r reload, ? help, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}
