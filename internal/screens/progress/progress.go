package progress

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/abhisek/grafiz/internal/screen"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/abhisek/grafiz/internal/ui/components"
	"github.com/abhisek/grafiz/internal/ui/layout"
	"github.com/abhisek/grafiz/internal/ui/theme"
)

type reportMsg struct {
	Report *analytics.Report
	Err    error
}

// ProgressScreen shows the full analytics report: concept badges,
// objective accuracy, and the efficiency metrics.
type ProgressScreen struct {
	events store.EventRepo
	report *analytics.Report
	errMsg string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

func New(events store.EventRepo) *ProgressScreen {
	return &ProgressScreen{events: events}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return s.loadReport()
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-5", Description: "Switch tab"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.report = msg.Report
		}
	case screen.StatsInvalidatedMsg:
		return s, s.loadReport()
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Incorrect.Render("  Could not load progress: " + s.errMsg)
	}
	if s.report == nil {
		return theme.Hint.Render("  Loading...")
	}
	if s.report.EvaluatedAttempts == 0 {
		return theme.Card.Render(
			theme.Body.Render("Nothing to report yet.") + "\n" +
				theme.Hint.Render("Answer a few questions and come back."))
	}

	left := s.renderConcepts(width/2 - 2)
	right := s.renderMetrics(width/2-2) + "\n" + s.renderObjectives(width/2-2)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (s *ProgressScreen) renderConcepts(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("  Concept mastery") + "\n\n")

	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}

	for _, cs := range s.report.Concepts {
		name := ontology.DescribeConcept(cs.ConceptID).Name
		bar := components.NewProgressBar("", cs.Accuracy, true, barWidth)
		b.WriteString(fmt.Sprintf("  %s %s\n", cs.Badge.Icon(), theme.Body.Render(name)))
		b.WriteString(fmt.Sprintf("    %s %s\n",
			bar.View(),
			theme.Hint.Render(fmt.Sprintf("%s · %d tries", cs.Badge, cs.Attempts))))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *ProgressScreen) renderMetrics(width int) string {
	r := s.report
	row := func(label, value string) string {
		return theme.Hint.Render(fmt.Sprintf("  %-20s", label)) + theme.Body.Bold(true).Render(value)
	}

	improvement := fmt.Sprintf("%+.0f%%", r.LearningImprovement*100)

	lines := []string{
		row("Accuracy", fmt.Sprintf("%.0f%% (%d of %d)", r.OverallAccuracy*100, r.CorrectAnswers, r.EvaluatedAttempts)),
		row("Current streak", fmt.Sprintf("%d", r.CurrentStreak)),
		row("Study days", fmt.Sprintf("%d", r.StudyDays)),
		row("Avg hints", fmt.Sprintf("%.1f", r.AverageHints)),
		row("Efficiency", fmt.Sprintf("%.0f%%", r.LearningEfficiency*100)),
		row("Improvement", improvement),
		row("Suggested level", string(r.SuggestedDifficulty)),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *ProgressScreen) renderObjectives(width int) string {
	if len(s.report.ObjectiveAccuracy) == 0 {
		return ""
	}

	ids := make([]string, 0, len(s.report.ObjectiveAccuracy))
	for id := range s.report.ObjectiveAccuracy {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("\n" + theme.Body.Bold(true).Render("  Objectives") + "\n\n")
	for _, id := range ids {
		name := id
		if obj, err := ontology.GetObjective(id); err == nil {
			name = obj.Name
		}
		acc := s.report.ObjectiveAccuracy[id]
		b.WriteString(fmt.Sprintf("  %s %s\n",
			theme.Body.Render(name),
			theme.Hint.Render(fmt.Sprintf("%.0f%%", acc*100))))
	}
	return b.String()
}

func (s *ProgressScreen) loadReport() tea.Cmd {
	if s.events == nil {
		return nil
	}
	return func() tea.Msg {
		log, err := s.events.AttemptHistory(context.Background())
		if err != nil {
			return reportMsg{Err: err}
		}
		return reportMsg{Report: analytics.BuildReport(log)}
	}
}
