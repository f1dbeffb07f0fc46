// Package cli provides the command-line interface for divvy.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/divvy/internal/config"
	"github.com/bnema/divvy/internal/logging"
	"github.com/rs/zerolog"
)

// App holds the configuration and logger shared by the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger

	manager *config.Manager
}

// NewApp loads the configuration and builds the shared logger.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	return &App{
		Config:  cfg,
		Logger:  logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format),
		manager: manager,
	}, nil
}

// Watch starts config hot-reload and forwards changes to fn.
func (a *App) Watch(fn func(*config.Config)) error {
	a.manager.OnConfigChange(fn)
	return a.manager.Watch()
}

// NewRootCmd creates the root command for divvy.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	var app *App

	rootCmd := &cobra.Command{
		Use:   "divvy",
		Short: "A split-screen divider engine",
		Long: `Divvy - the interactive engine behind a split-screen divider.

Divvy converts pointer input into a divider position, snaps it onto
meaningful targets (dismiss, split points) and computes the rectangles the
two regions should occupy each frame, including hole minimization and the
dismiss parallax effect.

Use 'divvy playground' to drive the engine interactively in the terminal.`,
		Version: fmt.Sprintf("%s (%s, built %s)", version, commit, buildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "about":
				return nil
			}
			var err error
			app, err = NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newPlaygroundCmd(func() *App { return app }))
	rootCmd.AddCommand(newConfigCmd(func() *App { return app }))
	rootCmd.AddCommand(newAboutCmd(version, commit, buildDate))

	return rootCmd
}

// Execute runs the root command.
func Execute(version, commit, buildDate string) {
	if err := NewRootCmd(version, commit, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
