package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/pflag"

	"github.com/Takumouse/sales-dashboard2/internal/cli"
	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/filter"
)

const (
	numberOfPanels = 2
	defaultWidth   = 120
	defaultHeight  = 30
)

var lightStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("69"))

var darkStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240")).
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("235"))

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type tuiCommand struct {
	filters cli.FilterFlags
}

func NewCommand() cli.Command {
	return &tuiCommand{}
}

func (c *tuiCommand) Description() string {
	return "Interactive terminal user interface"
}

func (c *tuiCommand) SetFlags(fs *pflag.FlagSet) {
	c.filters.SetFlags(fs)
}

type keymap struct {
	Next  key.Binding
	Prev  key.Binding
	Sort  key.Binding
	View  key.Binding
	Theme key.Binding
	Reset key.Binding
	Up    key.Binding
	Down  key.Binding
	Exit  key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Sort, k.View, k.Theme, k.Reset, k.Exit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next}, // first column
		{k.Sort, k.View, k.Theme, k.Reset},
		{k.Exit},
	}
}

func defaultKeyMap() keymap {
	return keymap{
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous page"),
		),
		Sort: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "sort column"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "chart view"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "exit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// snapshotMsg carries the result of a dispatched command back into Update.
type snapshotMsg dashboard.Snapshot

type errMsg struct {
	err error
}

type model struct {
	ctx        context.Context
	controller *dashboard.Controller
	snapshot   dashboard.Snapshot

	orders ordersTable
	chart  chartPanel
	help   help.Model
	keys   keymap

	err error

	width  int
	height int
}

func initialModel(ctx context.Context, controller *dashboard.Controller, width, height int) model {
	snapshot := controller.Snapshot()

	m := model{
		ctx:        ctx,
		controller: controller,
		snapshot:   snapshot,

		orders: newOrdersTable(snapshot, width),
		chart:  newChartPanel(snapshot, width),
		help:   help.New(),
		keys:   defaultKeyMap(),

		width:  width,
		height: height,
	}
	m.resize()

	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// dispatch runs cmd off the event loop and reports back with a snapshotMsg.
func (m model) dispatch(cmd dashboard.Command) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.controller.Dispatch(m.ctx, cmd)
		if err != nil {
			return errMsg{err: err}
		}
		return snapshotMsg(snapshot)
	}
}

// commandForKey maps a key press to a dashboard command.
func (m model) commandForKey(msg tea.KeyMsg) (dashboard.Command, bool) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return dashboard.NextPage{}, true
	case key.Matches(msg, m.keys.Prev):
		return dashboard.PrevPage{}, true
	case key.Matches(msg, m.keys.Sort):
		i, err := strconv.Atoi(msg.String())
		if err != nil || i < 1 || i > len(filter.SortFields) {
			return nil, false
		}
		return dashboard.SortBy{Field: filter.SortFields[i-1]}, true
	case key.Matches(msg, m.keys.View):
		return dashboard.SelectView{Mode: m.snapshot.State.Mode.Next()}, true
	case key.Matches(msg, m.keys.Theme):
		return dashboard.ToggleTheme{}, true
	case key.Matches(msg, m.keys.Reset):
		return dashboard.ResetFilters{}, true
	}

	return nil, false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		m.SetHeight(msg.Height)
		m.resize()
	case snapshotMsg:
		m.err = nil
		m.setSnapshot(dashboard.Snapshot(msg))
	case errMsg:
		m.err = msg.err
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Exit) {
			return m, tea.Quit
		}

		if command, ok := m.commandForKey(msg); ok {
			return m, m.dispatch(command)
		}

		m.orders, cmd = m.orders.Update(msg)
	}

	return m, cmd
}

func (m *model) setSnapshot(snapshot dashboard.Snapshot) {
	m.snapshot = snapshot
	m.orders = m.orders.SetSnapshot(snapshot, m.width)
	m.chart = newChartPanel(snapshot, m.width)
	m.resize()
}

func (m *model) resize() {
	m.orders = m.orders.UpdateDimensions(m.width, m.height/numberOfPanels)
	m.chart = m.chart.UpdateDimensions(m.width/numberOfPanels, m.height/numberOfPanels-4)
}

func (m model) View() string {
	page := m.snapshot.Page
	status := fmt.Sprintf("Page %d / %d  ·  %d orders  ·  view: %s  ·  sort: %s",
		page.Current, page.Count, page.Total, m.snapshot.State.Mode, m.snapshot.State.Sort)

	if m.err != nil {
		status = lipgloss.JoinVertical(lipgloss.Left, status, errorStyle.Render(m.err.Error()))
	}

	main := lipgloss.JoinVertical(lipgloss.Top,
		m.chart.View(),
		m.orders.View(),
		status,
		m.help.View(m.keys),
	)

	return m.style().Render(main)
}

func (m model) style() lipgloss.Style {
	if m.snapshot.State.Theme == dashboard.ThemeDark {
		return darkStyle
	}
	return lightStyle
}

func (m *model) SetHeight(height int) {
	m.height = height
}

func (m *model) SetWidth(width int) {
	m.width = width
}

func (c *tuiCommand) Run(ctx context.Context, app *cli.App) error {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		app.Logger.Debug("Unable to read terminal size, using defaults", "error", err)
		w, h = defaultWidth, defaultHeight
	}

	if len(os.Getenv("SALESDASH_DEBUG")) > 0 {
		f, logErr := tea.LogToFile("debug.log", "debug")
		if logErr != nil {
			return fmt.Errorf("failed to log to file: %w", logErr)
		}
		defer f.Close()
	}

	if err = c.filters.Dispatch(ctx, app.Controller); err != nil {
		return err
	}

	m := initialModel(ctx, app.Controller, w, h)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
