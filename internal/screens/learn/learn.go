package learn

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/abhisek/grafiz/internal/screen"
	"github.com/abhisek/grafiz/internal/ui/layout"
	"github.com/abhisek/grafiz/internal/ui/theme"
)

// LearnScreen browses the concept graph: objectives on the left, the
// selected objective's tasks and concepts on the right.
type LearnScreen struct {
	objectives []ontology.Objective
	selected   int
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

func New() *LearnScreen {
	return &LearnScreen{objectives: ontology.Objectives()}
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select objective"},
		{Key: "1-5", Description: "Switch tab"},
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.objectives)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *LearnScreen) View(width, height int) string {
	if len(s.objectives) == 0 {
		return theme.Hint.Render("  No objectives defined.")
	}

	listWidth := width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	detailWidth := width - listWidth - 4
	if detailWidth < 20 {
		detailWidth = 20
	}

	list := s.renderList(listWidth)
	detail := s.renderDetail(s.objectives[s.selected], detailWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
}

func (s *LearnScreen) renderList(width int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("  Objectives") + "\n\n")

	for i, obj := range s.objectives {
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+obj.Name) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+obj.Name) + "\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *LearnScreen) renderDetail(obj ontology.Objective, width int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render(obj.Name))
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Render("["+obj.Level+"]"))
	b.WriteString("\n" + theme.Hint.Render(obj.Description) + "\n\n")

	tasks := ontology.TasksForObjective(obj.ID)
	if len(tasks) > 0 {
		b.WriteString(theme.Body.Bold(true).Render("Tasks") + "\n")
		for _, t := range tasks {
			kind := lipgloss.NewStyle().Foreground(theme.Secondary).Render(string(t.Kind))
			b.WriteString(fmt.Sprintf("  • %s %s\n", theme.Body.Render(t.Name), kind))
			meta := fmt.Sprintf("    %s, about %s", t.Difficulty, t.EstimatedTime)
			if t.RequiresCoding {
				meta += ", hands-on coding"
			}
			b.WriteString(theme.Hint.Render(meta) + "\n")
		}
		b.WriteString("\n")
	}

	concepts := s.conceptsFor(tasks)
	if len(concepts) > 0 {
		b.WriteString(theme.Body.Bold(true).Render("Concepts") + "\n")
		for _, info := range concepts {
			b.WriteString("  • " + theme.Body.Render(info.Name) + "\n")
			if desc := info.Details["description"]; desc != "" {
				b.WriteString(theme.Hint.Render("    "+desc) + "\n")
			}
		}
	}

	assessments := ontology.AssessmentsForObjective(obj.ID)
	if len(assessments) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Assessment") + "\n")
		for _, a := range assessments {
			b.WriteString(fmt.Sprintf("  %s (pass at %.0f/%.0f)\n",
				theme.Body.Render(a.Name), a.PassingScore, a.MaxScore))
		}
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// conceptsFor collects the distinct concepts referenced by the tasks,
// in first-mention order.
func (s *LearnScreen) conceptsFor(tasks []ontology.Task) []ontology.ConceptInfo {
	seen := make(map[string]bool)
	var infos []ontology.ConceptInfo
	for _, t := range tasks {
		for _, id := range t.ConceptIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			infos = append(infos, ontology.DescribeConcept(id))
		}
	}
	return infos
}
