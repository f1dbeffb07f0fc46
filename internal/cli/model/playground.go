// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/divvy/internal/cli/styles"
	"github.com/bnema/divvy/internal/config"
	"github.com/bnema/divvy/internal/divider"
	"github.com/bnema/divvy/internal/geometry"
	"github.com/bnema/divvy/internal/snap"
)

// dragStep is the synthetic pointer travel per key press, comfortably above
// the touch slop so the first step already promotes the drag.
const dragStep = 40

// frameInterval approximates a 60Hz display refresh.
const frameInterval = 16 * time.Millisecond

type frameMsg time.Time

// ConfigReloadedMsg carries a hot-reloaded configuration into the model.
// The config watcher sends it from its own goroutine via Program.Send.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// PlaygroundModel is the Bubble Tea model for the interactive divider
// playground. It feeds synthetic touch events into the engine and renders
// the rectangles the engine publishes.
type PlaygroundModel struct {
	theme *styles.Theme
	keys  playgroundKeyMap
	help  help.Model

	engine   *divider.Engine
	proxy    *publishProxy
	provider snap.Provider
	metrics  divider.Metrics

	pointerX int
	pointerY int
	dragging bool

	width  int
	height int
	err    error
}

type playgroundKeyMap struct {
	Shrink  key.Binding
	Grow    key.Binding
	Release key.Binding
	Settle  key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k playgroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shrink, k.Grow, k.Release, k.Settle, k.Reset, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k playgroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shrink, k.Grow, k.Release},
		{k.Settle, k.Reset},
		{k.Help, k.Quit},
	}
}

func defaultPlaygroundKeyMap() playgroundKeyMap {
	return playgroundKeyMap{
		Shrink: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "drag toward start"),
		),
		Grow: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "drag toward end"),
		),
		Release: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "release"),
		),
		Settle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "settle at middle"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset split"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// buildGeometry derives the divider metrics and snap provider from cfg.
func buildGeometry(cfg *config.Config) (divider.Metrics, snap.Provider, error) {
	display := geometry.Display{Width: cfg.Display.Width, Height: cfg.Display.Height}
	metrics := divider.Metrics{
		Display:     display,
		DividerSize: cfg.Divider.Size(),
		TouchSlop:   cfg.Divider.TouchSlop,
		Horizontal:  false,
	}
	provider, err := snap.NewAlgorithm(display, metrics.DividerSize, metrics.Horizontal, geometry.Insets{}, snap.Params{
		FixedRatio:         cfg.Snap.FixedRatio,
		MinFlingVelocity:   cfg.Snap.MinFlingVelocity,
		MinDismissVelocity: cfg.Snap.MinDismissVelocity,
	})
	if err != nil {
		return divider.Metrics{}, nil, fmt.Errorf("build snap algorithm: %w", err)
	}
	return metrics, provider, nil
}

// NewPlayground builds the playground from the loaded configuration.
func NewPlayground(cfg *config.Config, log zerolog.Logger) (*PlaygroundModel, error) {
	metrics, provider, err := buildGeometry(cfg)
	if err != nil {
		return nil, err
	}

	proxy := &publishProxy{side: geometry.DockLeft}
	engine := divider.NewEngine(log, proxy, provider, metrics)
	engine.GrowRecents = cfg.GrowRecents

	return &PlaygroundModel{
		theme:    styles.NewTheme(),
		keys:     defaultPlaygroundKeyMap(),
		help:     help.New(),
		engine:   engine,
		proxy:    proxy,
		provider: provider,
		metrics:  metrics,
	}, nil
}

// Init implements tea.Model.
func (m *PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.engine.Frame(time.Time(msg)) {
			return m, frameTick()
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Shrink):
			return m, m.step(-dragStep)
		case key.Matches(msg, m.keys.Grow):
			return m, m.step(dragStep)
		case key.Matches(msg, m.keys.Release):
			return m, m.release()
		case key.Matches(msg, m.keys.Settle):
			return m, m.settleMiddle()
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		}
	}
	return m, nil
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// applyConfig rebuilds the divider geometry after a config hot reload.
// When the engine is idle the divider is re-centered so its position is
// valid for the new display.
func (m *PlaygroundModel) applyConfig(cfg *config.Config) {
	metrics, provider, err := buildGeometry(cfg)
	if err != nil {
		m.err = err
		return
	}
	m.metrics = metrics
	m.provider = provider
	m.engine.UpdateMetrics(metrics, provider)
	m.engine.GrowRecents = cfg.GrowRecents
	if m.engine.State() == divider.StateIdle {
		m.engine.SetPosition(provider.MiddleTarget().Position)
	}
	m.err = nil
}

// step moves the synthetic pointer along the active axis, opening a drag
// session on the first step.
func (m *PlaygroundModel) step(delta int) tea.Cmd {
	now := time.Now()
	if !m.dragging {
		m.pointerX = m.engine.Position()
		m.pointerY = m.metrics.Display.Height / 2
		if m.metrics.Horizontal {
			m.pointerX, m.pointerY = m.metrics.Display.Width/2, m.engine.Position()
		}
		if err := m.engine.HandleTouch(divider.TouchEvent{Type: divider.TouchDown, X: m.pointerX, Y: m.pointerY, Time: now}); err != nil {
			m.err = err
			return nil
		}
		m.dragging = true
		m.err = nil
	}
	if m.metrics.Horizontal {
		m.pointerY += delta
	} else {
		m.pointerX += delta
	}
	m.err = m.engine.HandleTouch(divider.TouchEvent{Type: divider.TouchMove, X: m.pointerX, Y: m.pointerY, Time: now})
	return nil
}

// release lifts the synthetic pointer and drives the settle animation.
func (m *PlaygroundModel) release() tea.Cmd {
	if !m.dragging {
		return nil
	}
	m.dragging = false
	m.err = m.engine.HandleTouch(divider.TouchEvent{Type: divider.TouchUp, X: m.pointerX, Y: m.pointerY, Time: time.Now()})
	return frameTick()
}

// settleMiddle runs the programmatic docking settle through the lifecycle
// entry point.
func (m *PlaygroundModel) settleMiddle() tea.Cmd {
	if m.dragging {
		return nil
	}
	m.engine.HandleLifecycle(divider.DockingTask{Mode: divider.DragModeNone})
	m.engine.HandleLifecycle(divider.RecentsDrawn{})
	if m.engine.State() == divider.StateReleasing {
		return frameTick()
	}
	return nil
}

// reset restores a left-docked split at the middle target after a commit.
func (m *PlaygroundModel) reset() {
	if m.engine.State() != divider.StateIdle {
		return
	}
	m.proxy.side = geometry.DockLeft
	m.proxy.committed = ""
	m.proxy.published = false
	m.engine.SetPosition(m.provider.MiddleTarget().Position)
	m.err = nil
}

// View implements tea.Model.
func (m *PlaygroundModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := m.theme.Title.Render("divvy playground")
	display := m.renderDisplay()
	status := m.renderStatus()
	helpView := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", display, "", status, helpView)
}

// renderDisplay draws the two regions and the divider, scaled to the
// terminal width.
func (m *PlaygroundModel) renderDisplay() string {
	usable := m.width - 4
	if usable < 20 {
		usable = 20
	}
	regionHeight := 8

	if m.proxy.committed != "" {
		full := m.theme.OtherRegion.Width(usable).Height(regionHeight).Render(m.proxy.committed)
		return lipgloss.NewStyle().MarginLeft(2).Render(full)
	}

	position := m.engine.Position()
	scale := float64(usable) / float64(m.metrics.Display.Width)
	dockedCols := int(float64(position) * scale)
	dividerCols := int(float64(m.metrics.DividerSize) * scale)
	if dividerCols < 1 {
		dividerCols = 1
	}
	if dockedCols < 0 {
		dockedCols = 0
	}
	if dockedCols > usable-dividerCols {
		dockedCols = usable - dividerCols
	}
	otherCols := usable - dockedCols - dividerCols

	dockedLabel := fmt.Sprintf("docked %s", rectLabel(m.proxy.dockedTask))
	otherLabel := fmt.Sprintf("other %s", rectLabel(m.proxy.otherTask))

	docked := m.theme.DockedRegion.Width(dockedCols).Height(regionHeight).Render(dockedLabel)
	div := m.theme.Divider.Width(dividerCols).Height(regionHeight).Render("")
	other := m.theme.OtherRegion.Width(otherCols).Height(regionHeight).Render(otherLabel)

	row := lipgloss.JoinHorizontal(lipgloss.Top, docked, div, other)
	return lipgloss.NewStyle().MarginLeft(2).Render(row)
}

func rectLabel(r *geometry.Rect) string {
	if r == nil {
		return ""
	}
	return r.String()
}

func (m *PlaygroundModel) renderStatus() string {
	state := m.engine.State().String()
	line := fmt.Sprintf("state: %s  position: %d  dim: %.2f (%s)",
		state, m.engine.Position(), m.proxy.dimFraction, m.proxy.dimTarget)
	if m.err != nil {
		line += "  " + lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.err.Error())
	}
	return m.theme.StatusBar.Render(line)
}
