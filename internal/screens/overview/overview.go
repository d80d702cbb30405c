package overview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/abhisek/grafiz/internal/screen"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/abhisek/grafiz/internal/ui/layout"
	"github.com/abhisek/grafiz/internal/ui/theme"
)

// reportMsg carries the replayed analytics report.
type reportMsg struct {
	Report *analytics.Report
	Err    error
}

// snapshotMsg carries the cached stats shown while the log replays.
type snapshotMsg struct {
	Data *store.SnapshotData
}

// OverviewScreen is the landing tab: headline stats and the objective list.
type OverviewScreen struct {
	events store.EventRepo
	snaps  store.SnapshotRepo

	report *analytics.Report
	cached *store.SnapshotData
	errMsg string
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates the overview screen. Both repos may be nil; the screen
// then renders the objective list without stats.
func New(events store.EventRepo, snaps store.SnapshotRepo) *OverviewScreen {
	return &OverviewScreen{events: events, snaps: snaps}
}

func (s *OverviewScreen) Init() tea.Cmd {
	return tea.Batch(s.loadSnapshot(), s.loadReport())
}

func (s *OverviewScreen) Title() string {
	return "Overview"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-5", Description: "Switch tab"},
		{Key: "Tab", Description: "Next tab"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		s.cached = msg.Data
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

func (s *OverviewScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Graph Neural Network Tutor"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Learn GNNs through adaptive practice"))
	b.WriteString("\n\n")

	b.WriteString(s.renderStats(width))
	b.WriteString("\n")
	b.WriteString(s.renderObjectives(width))

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Hint.Render("  stats unavailable: "+s.errMsg))
	}

	return b.String()
}

// renderStats renders the headline numbers. The report wins; until it
// arrives, the last snapshot fills in.
func (s *OverviewScreen) renderStats(width int) string {
	attempts, streak, days := 0, 0, 0
	accuracy := 0.0
	suggested := analytics.DifficultyEasy

	switch {
	case s.report != nil:
		attempts = s.report.TotalAttempts
		streak = s.report.CurrentStreak
		days = s.report.StudyDays
		accuracy = s.report.OverallAccuracy
		suggested = s.report.SuggestedDifficulty
	case s.cached != nil:
		attempts = s.cached.Attempts
		streak = s.cached.Streak
		days = s.cached.StudyDays
		accuracy = s.cached.Accuracy
	}

	if attempts == 0 {
		return theme.Card.Render(
			theme.Body.Render("No practice yet.") + "\n" +
				theme.Hint.Render("Press 3 to start your first session."))
	}

	row := func(label, value string) string {
		return theme.Hint.Render(fmt.Sprintf("  %-16s", label)) + theme.Body.Bold(true).Render(value)
	}

	lines := []string{
		row("Questions", fmt.Sprintf("%d", attempts)),
		row("Accuracy", fmt.Sprintf("%.0f%%", accuracy*100)),
		row("Streak", fmt.Sprintf("%d correct in a row", streak)),
		row("Study days", fmt.Sprintf("%d", days)),
		row("Suggested level", string(suggested)),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *OverviewScreen) renderObjectives(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("  Learning objectives") + "\n\n")

	for _, obj := range ontology.Objectives() {
		level := lipgloss.NewStyle().Foreground(theme.Secondary).Render("[" + obj.Level + "]")
		b.WriteString(fmt.Sprintf("  %s %s\n", theme.Body.Render(obj.Name), level))
		b.WriteString(theme.Hint.Render("    "+obj.Description) + "\n")
	}
	return b.String()
}

// loadSnapshot serves cached stats for instant display on startup.
func (s *OverviewScreen) loadSnapshot() tea.Cmd {
	if s.snaps == nil {
		return nil
	}
	return func() tea.Msg {
		snap, err := s.snaps.Latest(context.Background())
		if err != nil || snap == nil {
			return snapshotMsg{}
		}
		return snapshotMsg{Data: &snap.Data}
	}
}

// loadReport replays the attempt log and refreshes the cached snapshot.
func (s *OverviewScreen) loadReport() tea.Cmd {
	if s.events == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		log, err := s.events.AttemptHistory(ctx)
		if err != nil {
			return reportMsg{Err: err}
		}
		report := analytics.BuildReport(log)

		if s.snaps != nil && report.TotalAttempts > 0 {
			saveSnapshot(ctx, s.snaps, report)
		}
		return reportMsg{Report: report}
	}
}

// snapshotKeep bounds how many snapshots survive pruning.
const snapshotKeep = 20

func saveSnapshot(ctx context.Context, snaps store.SnapshotRepo, report *analytics.Report) {
	badges := make(map[string]string, len(report.Concepts))
	for _, cs := range report.Concepts {
		badges[cs.ConceptID] = string(cs.Badge)
	}
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:   1,
			Attempts:  report.TotalAttempts,
			Accuracy:  report.OverallAccuracy,
			Streak:    report.CurrentStreak,
			StudyDays: report.StudyDays,
			Badges:    badges,
		},
	}
	// Snapshot failures are cosmetic; the log remains the source of truth.
	if err := snaps.Save(ctx, snap); err == nil {
		_ = snaps.Prune(ctx, snapshotKeep)
	}
}
