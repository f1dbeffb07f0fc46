package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/divvy/internal/cli/model"
	"github.com/bnema/divvy/internal/config"
)

func newPlaygroundCmd(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "playground",
		Short: "Drive the divider engine interactively",
		Long: `Open a terminal playground wired to the divider engine.

Key presses feed synthetic touch events into the drag state machine; the
view renders the region rectangles the engine publishes each frame,
including the settle animation after a release.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a := app()
			m, err := model.NewPlayground(a.Config, a.Logger)
			if err != nil {
				return fmt.Errorf("build playground: %w", err)
			}
			p := tea.NewProgram(m, tea.WithAltScreen())

			// Config edits rebuild the divider geometry while the
			// playground runs. A watch failure only disables reload.
			if err := a.Watch(func(cfg *config.Config) {
				p.Send(model.ConfigReloadedMsg{Config: cfg})
			}); err != nil {
				a.Logger.Warn().Err(err).Msg("config hot reload unavailable")
			}

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run playground: %w", err)
			}
			return nil
		},
	}
}
