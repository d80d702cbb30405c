package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/grading"
	"github.com/abhisek/grafiz/internal/insights"
	"github.com/abhisek/grafiz/internal/questiongen"
	"github.com/abhisek/grafiz/internal/router"
	"github.com/abhisek/grafiz/internal/screen"
	insightsscreen "github.com/abhisek/grafiz/internal/screens/insights"
	"github.com/abhisek/grafiz/internal/screens/learn"
	"github.com/abhisek/grafiz/internal/screens/overview"
	"github.com/abhisek/grafiz/internal/screens/practice"
	progressscreen "github.com/abhisek/grafiz/internal/screens/progress"
	"github.com/abhisek/grafiz/internal/session"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/abhisek/grafiz/internal/ui/layout"
)

// Options carries the dependencies the TUI runs with. Any field may be
// nil; screens degrade to offline behavior.
type Options struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Generator questiongen.Generator
	Grader    *grading.TheoryGrader
	Coach     *insights.Coach

	// StartTab selects the initial tab (0 = Overview).
	StartTab int
}

// headerStatsMsg refreshes the streak and accuracy in the header.
type headerStatsMsg struct {
	Streak   int
	Accuracy float64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	streak   int
	accuracy float64
}

// newAppModel wires the five tabs.
func newAppModel(opts Options) AppModel {
	runner := &session.Runner{Events: opts.Events, Grader: opts.Grader}

	tabs := []router.Tab{
		{Name: "Overview", Screen: overview.New(opts.Events, opts.Snapshots)},
		{Name: "Learn", Screen: learn.New()},
		{Name: "Practice", Screen: practice.New(opts.Events, opts.Generator, runner)},
		{Name: "Progress", Screen: progressscreen.New(opts.Events)},
		{Name: "Insights", Screen: insightsscreen.New(opts.Events, opts.Coach)},
	}

	r := router.New(tabs)
	r.Select(opts.StartTab)

	return AppModel{
		router: r,
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadHeaderStats())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.streak = msg.Streak
		m.accuracy = msg.Accuracy
		return m, nil

	case screen.StatsInvalidatedMsg:
		// Forward so the active screen can reload too.
		return m, tea.Batch(m.loadHeaderStats(), m.router.Update(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			switch msg.String() {
			case "1", "2", "3", "4", "5":
				idx := int(msg.String()[0] - '1')
				return m, m.router.Select(idx)
			case "tab":
				return m, m.router.Next()
			case "shift+tab":
				return m, m.router.Prev()
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen owns raw text input.
func (m AppModel) capturing() bool {
	if c, ok := m.router.Active().(screen.InputCapturer); ok {
		return c.CapturingInput()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.accuracy, m.width) +
		"\n" + layout.RenderTabs(m.router.Names(), m.router.ActiveIndex(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "1-5", Description: "Tabs"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// loadHeaderStats replays the log for the header numbers.
func (m AppModel) loadHeaderStats() tea.Cmd {
	if m.opts.Events == nil {
		return nil
	}
	events := m.opts.Events
	return func() tea.Msg {
		log, err := events.AttemptHistory(context.Background())
		if err != nil {
			return headerStatsMsg{}
		}
		return headerStatsMsg{
			Streak:   analytics.CurrentStreak(log),
			Accuracy: analytics.OverallAccuracy(log),
		}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
