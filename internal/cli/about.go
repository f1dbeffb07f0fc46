package cli

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/divvy/internal/cli/styles"
)

func newAboutCmd(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show version and build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme := styles.NewTheme()
			label := theme.Subtle.Width(12)

			rows := []string{
				theme.Title.Render("divvy"),
				theme.Subtle.Render("a split-screen divider engine"),
				"",
				lipgloss.JoinHorizontal(lipgloss.Top, label.Render("version"), theme.Highlight.Render(version)),
				lipgloss.JoinHorizontal(lipgloss.Top, label.Render("commit"), commit),
				lipgloss.JoinHorizontal(lipgloss.Top, label.Render("built"), buildDate),
				lipgloss.JoinHorizontal(lipgloss.Top, label.Render("go"), runtime.Version()),
				lipgloss.JoinHorizontal(lipgloss.Top, label.Render("platform"), runtime.GOOS+"/"+runtime.GOARCH),
			}
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left, rows...))
			return nil
		},
	}
}
