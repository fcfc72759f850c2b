// Package tui provides the BubbleTea-based chart preview.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/nestchart/internal/chart"
	"github.com/jmylchreest/nestchart/internal/config"
	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/render"
	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

var indicatorCycle = []chart.Indicator{chart.IndicatorDot, chart.IndicatorLine, chart.IndicatorDashed}

// Model is the preview TUI model. It walks the dataset rows and shows the
// tooltip and legend a chart would display while each row is hovered.
type Model struct {
	// Configuration
	cfg     *config.Config
	series  *series.Config
	numbers chart.NumberFormatter
	chartID string

	data model.Dataset

	// State
	row       int
	indicator chart.Indicator
	hideLabel bool
	dark      bool
	showHelp  bool
	width     int
	height    int

	keys KeyMap
	help help.Model

	// Status message
	statusMsg string
	statusErr bool

	// Series reload subscription
	changes <-chan struct{}
	current func() *series.Config
}

// Options configures a preview model.
type Options struct {
	Config  *config.Config
	Series  *series.Config
	Data    model.Dataset
	Numbers chart.NumberFormatter

	// Changes signals that Current holds a newly loaded configuration.
	Changes <-chan struct{}
	Current func() *series.Config
}

// New creates a new preview model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return Model{
		cfg:       cfg,
		series:    opts.Series,
		numbers:   opts.Numbers,
		chartID:   "preview",
		data:      opts.Data,
		indicator: cfg.Indicator(),
		dark:      cfg.Render.Dark,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		changes:   opts.Changes,
		current:   opts.Current,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.watchForChanges
}

type seriesChangedMsg struct{}

type copyResultMsg struct {
	err error
}

// watchForChanges waits for the next series reload.
func (m Model) watchForChanges() tea.Msg {
	if m.changes == nil {
		return nil
	}
	if _, ok := <-m.changes; !ok {
		return nil
	}
	return seriesChangedMsg{}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case seriesChangedMsg:
		if m.current != nil {
			m.series = m.current()
		}
		m.setStatus(fmt.Sprintf("Reloaded %d series", m.series.Len()), false)
		return m, m.watchForChanges

	case copyResultMsg:
		if msg.err != nil {
			m.setStatus("Copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Stylesheet copied", false)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	last := max(m.data.Len()-1, 0)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Prev):
		m.row = max(m.row-1, 0)
	case key.Matches(msg, m.keys.Next):
		m.row = min(m.row+1, last)
	case key.Matches(msg, m.keys.First):
		m.row = 0
	case key.Matches(msg, m.keys.Last):
		m.row = last
	case key.Matches(msg, m.keys.Indicator):
		m.indicator = nextIndicator(m.indicator)
	case key.Matches(msg, m.keys.ToggleLabel):
		m.hideLabel = !m.hideLabel
	case key.Matches(msg, m.keys.ToggleTheme):
		m.dark = !m.dark
	case key.Matches(msg, m.keys.Copy):
		css, ok, err := m.container().Stylesheet()
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		if !ok {
			m.setStatus("No colors configured", true)
			return m, nil
		}
		cfg := m.cfg
		return m, func() tea.Msg {
			return copyResultMsg{err: copyStylesheet(css, cfg)}
		}
	}

	return m, nil
}

func nextIndicator(cur chart.Indicator) chart.Indicator {
	for i, ind := range indicatorCycle {
		if ind == cur {
			return indicatorCycle[(i+1)%len(indicatorCycle)]
		}
	}
	return chart.IndicatorDot
}

func (m Model) container() *chart.Container {
	return chart.Provide(m.chartID, m.series, chart.WithNumberFormatter(m.numbers))
}

func (m Model) themeName() string {
	if m.dark {
		return theme.Dark
	}
	return theme.Light
}

// payload returns the data points for the current row.
func (m Model) payload() []model.DataPoint {
	return m.data.Payload(m.row, m.series.Keys())
}

// View renders the TUI.
func (m Model) View() string {
	c := m.container()
	term := render.NewTerminal(m.series, m.themeName())
	payload := m.payload()

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Chart Preview"))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  row %d/%d  %s  %s",
		min(m.row+1, m.data.Len()), m.data.Len(), m.indicator, m.themeName())))
	sb.WriteString("\n\n")

	tip, err := c.Tooltip(chart.TooltipOptions{
		Active:    true,
		Indicator: m.indicator,
		HideLabel: m.hideLabel,
		Label:     m.data.Label(m.row),
		NameKey:   m.cfg.Chart.NameKey,
		LabelKey:  m.cfg.Chart.LabelKey,
	}, payload)
	if err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(err.Error()))
		sb.WriteString("\n")
		return sb.String()
	}

	if tip == nil {
		sb.WriteString(mutedStyle.Render("No data for this row"))
	} else {
		sb.WriteString(term.Tooltip(tip))
	}
	sb.WriteString("\n\n")

	legend, _ := c.Legend(chart.LegendOptions{NameKey: m.cfg.Chart.NameKey}, payload)
	if legend != nil {
		sb.WriteString(term.Legend(legend))
		sb.WriteString("\n\n")
	}

	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
		if m.statusErr {
			statusStyle = statusStyle.Foreground(lipgloss.Color("9"))
		}
		sb.WriteString(statusStyle.Render(m.statusMsg))
		sb.WriteString("\n")
	}

	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return sb.String()
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config     *config.Config
	Registry   *theme.Registry
	SeriesPath string
	Data       model.Dataset
	Watch      bool
	Logger     *slog.Logger
}

// Run starts the preview with the given options.
func Run(opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	numbers, err := cfg.NumberFormatter()
	if err != nil {
		return err
	}

	watcher, err := series.NewWatcher(opts.SeriesPath, opts.Registry, logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	var changes chan struct{}
	if opts.Watch {
		changes = make(chan struct{}, 1)
		watcher.OnChange(func(*series.Config) {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		if err := watcher.Start(); err != nil {
			logger.Warn("failed to start series watcher", "file", opts.SeriesPath, "error", err)
		}
	}

	m := New(Options{
		Config:  cfg,
		Series:  watcher.Current(),
		Data:    opts.Data,
		Numbers: numbers,
		Changes: changes,
		Current: watcher.Current,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
