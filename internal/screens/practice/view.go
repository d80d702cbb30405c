package practice

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/session"
	"github.com/abhisek/grafiz/internal/ui/components"
	"github.com/abhisek/grafiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *PracticeScreen) View(width, height int) string {
	switch {
	case s.loading:
		return s.renderLoading(width)
	case s.summary != nil:
		return s.renderSummary(width)
	case s.state == nil:
		return s.renderSetup(width)
	case s.state.Phase == session.PhaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *PracticeScreen) renderSetup(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Practice Session") + "\n\n")

	switch s.step {
	case stepObjective:
		b.WriteString(theme.Body.Bold(true).Render("  What do you want to practice?") + "\n\n")
		b.WriteString(s.objMenu.View())
	case stepDifficulty:
		b.WriteString(theme.Body.Bold(true).Render("  Pick a difficulty") + "\n\n")
		b.WriteString(s.diffMenu.View())
	case stepSource:
		b.WriteString(theme.Body.Bold(true).Render("  Question source") + "\n\n")
		b.WriteString(s.srcMenu.View())
		if s.gen == nil {
			b.WriteString("\n" + theme.Hint.Render("  AI generation needs a configured provider."))
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render("  "+s.errMsg))
	}
	return b.String()
}

func (s *PracticeScreen) renderLoading(width int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	label := "Preparing questions..."
	if s.useAI {
		label = "Generating questions..."
	}
	return "\n\n" + theme.Title.Width(width).Render(frame+" "+label)
}

func (s *PracticeScreen) renderQuestion(width int) string {
	item := s.state.Current()
	if item == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderProgress(width) + "\n\n")

	if item.Type == analytics.TypeMultipleChoice {
		b.WriteString(s.mc.View())
	} else {
		b.WriteString(theme.Body.Bold(true).Render(item.Text) + "\n\n")
		b.WriteString(s.input.View() + "\n")
		if item.Type == analytics.TypeReflection {
			b.WriteString(theme.Hint.Render("  Free-form; there is no wrong answer.") + "\n")
		}
	}

	if s.hint != "" {
		b.WriteString("\n" + theme.Card.Render(theme.Hint.Render("Hint: "+s.hint)))
	}
	if s.grading {
		b.WriteString("\n" + theme.Hint.Render("  Grading..."))
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg))
	}
	return b.String()
}

func (s *PracticeScreen) renderProgress(width int) string {
	st := s.state
	label := fmt.Sprintf("%s · %s", st.Topic, st.Difficulty)
	if s.fromBank {
		label += " · built-in"
	}
	done := float64(st.Index) / float64(len(st.Queue))
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", st.Index+1, len(st.Queue)),
		done, false, width/2)
	return theme.Hint.Render("  "+label) + "\n  " + bar.View()
}

func (s *PracticeScreen) renderFeedback(width int) string {
	out := s.state.LastOutcome
	if out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderProgress(width) + "\n\n")

	item := s.state.Current()
	switch {
	case !out.Evaluated:
		b.WriteString(theme.Body.Bold(true).Render("  Noted.") + "\n")
	case out.Correct:
		b.WriteString(theme.Correct.Render("  Correct!") + "\n")
	case out.Mark > 0:
		b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("  Partial credit: %.1f", out.Mark)) + "\n")
	default:
		b.WriteString(theme.Incorrect.Render("  Not quite.") + "\n")
		if item != nil && out.CorrectChoice >= 0 && out.CorrectChoice < len(item.Choices) {
			b.WriteString(theme.Body.Render("  Answer: "+item.Choices[out.CorrectChoice]) + "\n")
		}
	}

	if out.Feedback != "" {
		b.WriteString("\n" + theme.Card.Width(width-4).Render(theme.Body.Render(out.Feedback)) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("  Press any key to continue."))
	return b.String()
}

func (s *PracticeScreen) renderSummary(width int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Session Complete") + "\n\n")

	row := func(label, value string) string {
		return theme.Hint.Render(fmt.Sprintf("  %-18s", label)) + theme.Body.Bold(true).Render(value)
	}

	lines := []string{
		row("Questions", fmt.Sprintf("%d", sum.TotalQuestions)),
		row("Duration", sum.Duration.Round(time.Second).String()),
	}
	if sum.MCTotal > 0 {
		lines = append(lines, row("Correct", fmt.Sprintf("%d / %d", sum.MCCorrect, sum.MCTotal)))
	}
	if sum.TheoryTotal > 0 {
		lines = append(lines, row("Theory marks", fmt.Sprintf("%.1f / %d", sum.TheoryMarks, sum.TheoryTotal)))
	}
	if sum.Reflections > 0 {
		lines = append(lines, row("Reflections", fmt.Sprintf("%d", sum.Reflections)))
	}
	lines = append(lines,
		row("Accuracy", fmt.Sprintf("%.0f%%", sum.Accuracy*100)),
		row("Next level", string(sum.SuggestedDifficulty)),
	)

	b.WriteString(theme.Card.Render(strings.Join(lines, "\n")))

	verdict := "Keep practicing!"
	if sum.Accuracy >= 0.8 {
		verdict = "Excellent work!"
	} else if sum.Accuracy >= 0.6 {
		verdict = "Good progress!"
	}
	b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  "+verdict))

	return b.String()
}
