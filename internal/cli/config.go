package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var initFlag, global, template bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration",
		Long: `Display the configuration files and the effective configuration.

Sources, later taking precedence:
  1. Built-in defaults
  2. Global config ($XDG_CONFIG_HOME/todo/config.toml)
  3. Local config (./.todo.toml)

Use --init to write a commented template to ./.todo.toml,
or to the global file with --global. --template prints the
template without writing it.

Examples:
  # Show configuration
  todo config

  # Create ./.todo.toml
  todo config --init

  # Create the global config file
  todo config --init --global

  # Print the template
  todo config --template`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if global && !initFlag {
				return errors.New("--global can only be used with --init")
			}

			if template {
				uc := c.ShowConfigTemplateUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
				return nil
			}

			if initFlag {
				uc := c.InitConfigUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
					Global: global,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
				return nil
			}

			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			printConfigSource(w, out.LocalConfig)
			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}

	cmd.Flags().BoolVar(&initFlag, "init", false, "Write a config template")
	cmd.Flags().BoolVar(&global, "global", false, "With --init, write the global config instead of ./.todo.toml")
	cmd.Flags().BoolVar(&template, "template", false, "Print the config template")
	cmd.MarkFlagsMutuallyExclusive("init", "template")

	return cmd
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	if info.Path == "" {
		return
	}
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	} else {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	output := map[string]any{
		"store": map[string]any{
			"path": cfg.Store.Path,
		},
		"log": map[string]any{
			"level":    cfg.Log.Level,
			"dir":      cfg.Log.Dir,
			"disabled": cfg.Log.Disabled,
		},
	}

	enc := toml.NewEncoder(w)
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
