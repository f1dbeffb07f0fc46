package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/divvy/internal/config"
)

func newConfigCmd(app func() *App) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app().Config
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "divider.thickness      = %d\n", cfg.Divider.Thickness)
			fmt.Fprintf(out, "divider.insets         = %d\n", cfg.Divider.Insets)
			fmt.Fprintf(out, "divider.touch_slop     = %d\n", cfg.Divider.TouchSlop)
			fmt.Fprintf(out, "display                = %dx%d\n", cfg.Display.Width, cfg.Display.Height)
			fmt.Fprintf(out, "snap.fixed_ratio       = %g\n", cfg.Snap.FixedRatio)
			fmt.Fprintf(out, "snap.min_fling         = %g px/s\n", cfg.Snap.MinFlingVelocity)
			fmt.Fprintf(out, "snap.min_dismiss       = %g px/s\n", cfg.Snap.MinDismissVelocity)
			fmt.Fprintf(out, "logging                = %s/%s\n", cfg.Logging.Level, cfg.Logging.Format)
			fmt.Fprintf(out, "grow_recents           = %t\n", cfg.GrowRecents)
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.GenerateSchemaFile(); err != nil {
				return err
			}
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema written to %s/config.schema.json\n", dir)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configCmd.AddCommand(showCmd, schemaCmd, pathCmd)
	return configCmd
}
