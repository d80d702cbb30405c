package insights

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grafiz/internal/analytics"
	coaching "github.com/abhisek/grafiz/internal/insights"
	"github.com/abhisek/grafiz/internal/screen"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/abhisek/grafiz/internal/ui/layout"
	"github.com/abhisek/grafiz/internal/ui/theme"
)

type insightsMsg struct {
	Insights []coaching.Insight
	Report   *analytics.Report
	Err      error
}

type adviceMsg struct {
	Text string
	Err  error
}

// InsightsScreen renders the rule-based study insights plus on-demand
// AI coach advice.
type InsightsScreen struct {
	events store.EventRepo
	coach  *coaching.Coach

	insights []coaching.Insight
	report   *analytics.Report
	advice   string
	thinking bool
	errMsg   string
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New creates the insights screen. The coach may be nil; the advice
// section then explains how to enable it.
func New(events store.EventRepo, coach *coaching.Coach) *InsightsScreen {
	return &InsightsScreen{events: events, coach: coach}
}

func (s *InsightsScreen) Init() tea.Cmd {
	return s.loadInsights()
}

func (s *InsightsScreen) Title() string {
	return "Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-5", Description: "Switch tab"},
	}
	if s.coach != nil {
		hints = append([]layout.KeyHint{{Key: "A", Description: "Ask the coach"}}, hints...)
	}
	return hints
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.insights = msg.Insights
			s.report = msg.Report
			s.errMsg = ""
		}

	case adviceMsg:
		s.thinking = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.advice = msg.Text
		}

	case screen.StatsInvalidatedMsg:
		s.advice = ""
		return s, s.loadInsights()

	case tea.KeyMsg:
		if msg.String() == "a" && s.coach != nil && !s.thinking && s.report != nil {
			s.thinking = true
			s.errMsg = ""
			return s, s.askCoach()
		}
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	var b strings.Builder

	if len(s.insights) == 0 {
		b.WriteString(theme.Card.Render(
			theme.Body.Render("No insights yet.") + "\n" +
				theme.Hint.Render("Insights appear after your first graded answers.")))
	} else {
		b.WriteString(theme.Body.Bold(true).Render("  Study insights") + "\n\n")
		for _, in := range s.insights {
			title := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(in.Title)
			b.WriteString(theme.Card.Width(width-4).Render(title+"\n"+theme.Body.Render(in.Body)) + "\n")
		}
	}

	b.WriteString("\n" + theme.Body.Bold(true).Render("  Coach") + "\n\n")
	switch {
	case s.coach == nil:
		b.WriteString(theme.Hint.Render("  Configure an AI provider to get personalized advice."))
	case s.thinking:
		b.WriteString(theme.Hint.Render("  Thinking..."))
	case s.advice != "":
		b.WriteString(theme.Card.Width(width - 4).Render(theme.Body.Render(s.advice)))
	default:
		b.WriteString(theme.Hint.Render("  Press A for personalized study advice."))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render("  "+s.errMsg))
	}
	return b.String()
}

func (s *InsightsScreen) loadInsights() tea.Cmd {
	if s.events == nil {
		return nil
	}
	return func() tea.Msg {
		log, err := s.events.AttemptHistory(context.Background())
		if err != nil {
			return insightsMsg{Err: err}
		}
		return insightsMsg{
			Insights: coaching.Build(log),
			Report:   analytics.BuildReport(log),
		}
	}
}

func (s *InsightsScreen) askCoach() tea.Cmd {
	report := s.report
	return func() tea.Msg {
		text, err := s.coach.Advise(context.Background(), report)
		return adviceMsg{Text: text, Err: err}
	}
}
