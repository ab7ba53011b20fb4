package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print all tasks as JSON, YAML or TOML",
		Long: fmt.Sprintf(`Print every task, completed or not, in list order.

Supported formats: %s.

Examples:
  # Export as JSON (same layout as the task file)
  todo export

  # Export as YAML
  todo export --format yaml > tasks.yaml`, strings.Join(usecase.ExportFormats(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportTasksInput{
				Format: format,
			})
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out.Data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "F", usecase.ExportFormatJSON, "Output format (json, yaml, toml)")

	return cmd
}
