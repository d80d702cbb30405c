package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/abhisek/grafiz/internal/questionbank"
	"github.com/abhisek/grafiz/internal/questiongen"
	"github.com/abhisek/grafiz/internal/screen"
	"github.com/abhisek/grafiz/internal/session"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/abhisek/grafiz/internal/ui/components"
	"github.com/abhisek/grafiz/internal/ui/layout"

	"github.com/google/uuid"
)

// questionsPerSession is how many questions a session serves.
const questionsPerSession = 5

type setupStep int

const (
	stepObjective setupStep = iota
	stepDifficulty
	stepSource
)

// objectiveChosenMsg, difficultyChosenMsg and sourceChosenMsg drive the
// setup wizard; each carries the selected menu index.
type objectiveChosenMsg struct{ Index int }
type difficultyChosenMsg struct{ Index int }
type sourceChosenMsg struct{ Index int }

// PracticeScreen runs the full practice loop: setup wizard, question
// loop with hints and feedback, and the end-of-session summary.
type PracticeScreen struct {
	events store.EventRepo
	gen    questiongen.Generator
	runner *session.Runner

	step       setupStep
	objMenu    components.Menu
	diffMenu   components.Menu
	srcMenu    components.Menu
	objectives []ontology.Objective

	chosenObj  ontology.Objective
	chosenDiff analytics.Difficulty
	useAI      bool

	suggested   analytics.Difficulty
	suggestedOK bool

	state    *session.State
	mc       components.MultiChoice
	input    components.TextInput
	hint     string
	fromBank bool
	grading  bool
	loading  bool
	spinner  int
	summary  *session.Summary
	errMsg   string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.InputCapturer = (*PracticeScreen)(nil)

// New creates the practice screen. The generator may be nil; the
// screen then serves built-in questions only.
func New(events store.EventRepo, gen questiongen.Generator, runner *session.Runner) *PracticeScreen {
	return &PracticeScreen{
		events: events,
		gen:    gen,
		runner: runner,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	// Re-entering the tab must not discard a session in progress.
	if s.state != nil && !s.state.Done() && s.summary == nil {
		return nil
	}

	s.step = stepObjective
	s.state = nil
	s.summary = nil
	s.errMsg = ""
	s.loading = false
	s.grading = false
	s.objectives = ontology.Objectives()

	items := make([]components.MenuItem, 0, len(s.objectives))
	for i, obj := range s.objectives {
		i := i
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  [%s]", obj.Name, obj.Level),
			Action: func() tea.Cmd {
				return func() tea.Msg { return objectiveChosenMsg{Index: i} }
			},
		})
	}
	s.objMenu = components.NewMenu(items)

	return s.loadSuggestion()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// CapturingInput reports whether the screen owns raw keystrokes, so
// the app leaves the number keys alone while an answer is typed.
func (s *PracticeScreen) CapturingInput() bool {
	if s.state == nil || s.state.Phase != session.PhaseActive || s.grading {
		return false
	}
	item := s.state.Current()
	return item != nil && item.Type != analytics.TypeMultipleChoice
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.summary != nil:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry questions"},
			{Key: "Enter", Description: "New session"},
		}
	case s.state == nil:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	case s.state.Phase == session.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+H", Description: "Hint"},
			{Key: "Esc", Description: "End session"},
		}
		return hints
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionMsg:
		if msg.Evaluated > 0 {
			s.suggested = analytics.Difficulty(msg.Difficulty)
			s.suggestedOK = true
		}
		return s, nil

	case objectiveChosenMsg:
		s.chosenObj = s.objectives[msg.Index]
		s.step = stepDifficulty
		s.diffMenu = s.buildDifficultyMenu()
		return s, nil

	case difficultyChosenMsg:
		s.chosenDiff = s.difficultyAt(msg.Index)
		s.step = stepSource
		s.srcMenu = s.buildSourceMenu()
		return s, nil

	case sourceChosenMsg:
		s.useAI = msg.Index == 0
		s.loading = true
		s.errMsg = ""
		return s, tea.Batch(s.buildQueue(), s.tickSpinner())

	case queueReadyMsg:
		return s.handleQueueReady(msg)

	case gradedMsg:
		s.grading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case hintMsg:
		s.hint = msg.Text
		return s, nil

	case summaryMsg:
		s.summary = msg.Summary
		return s, func() tea.Msg { return screen.StatsInvalidatedMsg{} }

	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinner++
		return s, s.tickSpinner()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading || s.grading {
		return s, nil
	}

	// Summary keys.
	if s.summary != nil {
		switch msg.String() {
		case "r":
			s.summary = nil
			s.state.Reset()
			s.prepareWidget()
			return s, nil
		case "enter":
			return s, s.Init()
		}
		return s, nil
	}

	// Setup wizard.
	if s.state == nil {
		return s.handleSetupKey(msg)
	}

	switch s.state.Phase {
	case session.PhaseActive:
		return s.handleActiveKey(msg)
	case session.PhaseFeedback:
		return s.advance()
	}
	return s, nil
}

func (s *PracticeScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" && s.step > stepObjective {
		s.step--
		return s, nil
	}

	var cmd tea.Cmd
	switch s.step {
	case stepObjective:
		s.objMenu, cmd = s.objMenu.Update(msg)
	case stepDifficulty:
		s.diffMenu, cmd = s.diffMenu.Update(msg)
	case stepSource:
		s.srcMenu, cmd = s.srcMenu.Update(msg)
	}
	return s, cmd
}

func (s *PracticeScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	item := s.state.Current()
	if item == nil {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		// End early; answered questions stay recorded.
		return s, s.finish()
	case "ctrl+h":
		return s, s.requestHint()
	}

	if item.Type == analytics.TypeMultipleChoice {
		if msg.String() == "h" {
			return s, s.requestHint()
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			s.grading = true
			return s, tea.Batch(cmd, s.submitChoice(s.mc.ChosenIndex))
		}
		return s, cmd
	}

	if msg.String() == "enter" {
		answer := s.input.Value()
		if strings.TrimSpace(answer) == "" {
			return s, nil
		}
		s.grading = true
		return s, s.submitText(answer)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	s.state.Advance()
	s.errMsg = ""
	if s.state.Done() {
		return s, s.finish()
	}
	s.prepareWidget()
	return s, nil
}

func (s *PracticeScreen) handleQueueReady(msg queueReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.state = nil
		return s, nil
	}
	s.state = msg.State
	s.fromBank = msg.FromBank
	s.prepareWidget()
	return s, s.begin()
}

// prepareWidget resets the answer widget for the current question.
func (s *PracticeScreen) prepareWidget() {
	s.hint = ""
	item := s.state.Current()
	if item == nil {
		return
	}
	switch item.Type {
	case analytics.TypeMultipleChoice:
		s.mc = components.NewMultiChoice(item.Text, item.Choices, item.CorrectIndex)
	case analytics.TypeNumeric:
		s.input = components.NewTextInput("Type a number...", true, 24)
	default:
		s.input = components.NewTextInput("Type your answer...", false, 60)
	}
}

func (s *PracticeScreen) buildDifficultyMenu() components.Menu {
	levels := s.difficultyChoices()
	items := make([]components.MenuItem, 0, len(levels))
	for i, label := range levels {
		i := i
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyChosenMsg{Index: i} }
			},
		})
	}
	return components.NewMenu(items)
}

// difficultyChoices lists the menu labels; the suggested level leads
// when enough history exists.
func (s *PracticeScreen) difficultyChoices() []string {
	labels := make([]string, 0, 4)
	if s.suggestedOK {
		labels = append(labels, fmt.Sprintf("Suggested: %s", s.suggested))
	}
	for _, d := range analytics.AllDifficulties() {
		labels = append(labels, string(d))
	}
	return labels
}

func (s *PracticeScreen) difficultyAt(index int) analytics.Difficulty {
	if s.suggestedOK {
		if index == 0 {
			return s.suggested
		}
		index--
	}
	all := analytics.AllDifficulties()
	if index < 0 || index >= len(all) {
		return analytics.DifficultyEasy
	}
	return all[index]
}

func (s *PracticeScreen) buildSourceMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{
			Label:    "AI-generated questions",
			Disabled: s.gen == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg { return sourceChosenMsg{Index: 0} }
			},
		},
		{
			Label: "Built-in question bank",
			Action: func() tea.Cmd {
				return func() tea.Msg { return sourceChosenMsg{Index: 1} }
			},
		},
	})
}

// loadSuggestion replays history for the difficulty recommendation.
func (s *PracticeScreen) loadSuggestion() tea.Cmd {
	if s.events == nil {
		return nil
	}
	return func() tea.Msg {
		log, err := s.events.AttemptHistory(context.Background())
		if err != nil {
			return suggestionMsg{}
		}
		evaluated := 0
		for _, r := range log {
			if r.Evaluated {
				evaluated++
			}
		}
		return suggestionMsg{
			Difficulty: string(analytics.SuggestDifficulty(log)),
			Evaluated:  evaluated,
		}
	}
}

// buildQueue assembles the question queue, generating with the LLM or
// falling back to the built-in bank.
func (s *PracticeScreen) buildQueue() tea.Cmd {
	obj := s.chosenObj
	diff := s.chosenDiff
	useAI := s.useAI

	return func() tea.Msg {
		ctx := context.Background()
		fromBank := false

		var queue []session.Item
		if useAI && s.gen != nil {
			generated, err := s.gen.Generate(ctx, questiongen.GenerateInput{
				Topic:          ontology.CleanName(obj.Name),
				ObjectiveID:    obj.ID,
				ConceptID:      primaryConcept(obj.ID),
				Difficulty:     diff,
				Count:          questionsPerSession,
				PriorQuestions: s.recentQuestions(ctx),
			})
			if err == nil {
				for _, g := range generated {
					queue = append(queue, session.ItemFromGenerated(g))
				}
			} else {
				fromBank = true
			}
		} else {
			fromBank = !useAI
		}

		if len(queue) == 0 {
			for _, q := range questionbank.ForObjective(obj.ID) {
				queue = append(queue, session.ItemFromBank(q, diff))
				if len(queue) == questionsPerSession {
					break
				}
			}
			fromBank = true
		}

		if len(queue) == 0 {
			return queueReadyMsg{Err: fmt.Errorf("no questions available for %s", obj.Name)}
		}

		state := session.NewState(uuid.New().String(), obj.ID, ontology.CleanName(obj.Name), diff, queue)
		return queueReadyMsg{State: state, FromBank: fromBank}
	}
}

// recentQuestions returns the latest question texts for prompt dedup.
func (s *PracticeScreen) recentQuestions(ctx context.Context) []string {
	if s.events == nil {
		return nil
	}
	log, err := s.events.AttemptHistory(ctx)
	if err != nil {
		return nil
	}
	const keep = 8
	start := len(log) - keep
	if start < 0 {
		start = 0
	}
	texts := make([]string, 0, keep)
	for _, r := range log[start:] {
		texts = append(texts, r.QuestionText)
	}
	return texts
}

// primaryConcept picks the first concept an objective's tasks mention.
func primaryConcept(objectiveID string) string {
	for _, t := range ontology.TasksForObjective(objectiveID) {
		for _, id := range t.ConceptIDs {
			return id
		}
	}
	return ""
}

func (s *PracticeScreen) begin() tea.Cmd {
	st := s.state
	return func() tea.Msg {
		_ = s.runner.Begin(context.Background(), st)
		return nil
	}
}

func (s *PracticeScreen) submitChoice(choice int) tea.Cmd {
	st := s.state
	return func() tea.Msg {
		out, err := s.runner.SubmitChoice(context.Background(), st, choice)
		return gradedMsg{Outcome: out, Err: err}
	}
}

func (s *PracticeScreen) submitText(answer string) tea.Cmd {
	st := s.state
	return func() tea.Msg {
		out, err := s.runner.SubmitText(context.Background(), st, answer)
		return gradedMsg{Outcome: out, Err: err}
	}
}

func (s *PracticeScreen) requestHint() tea.Cmd {
	st := s.state
	return func() tea.Msg {
		hint, _ := s.runner.RequestHint(context.Background(), st)
		return hintMsg{Text: hint}
	}
}

// finish ends the session and builds the summary over full history so
// the difficulty suggestion reflects everything the learner has done.
func (s *PracticeScreen) finish() tea.Cmd {
	st := s.state
	return func() tea.Msg {
		ctx := context.Background()
		_ = s.runner.End(ctx, st)

		fullLog := st.Log
		if s.events != nil {
			if log, err := s.events.AttemptHistory(ctx); err == nil {
				fullLog = log
			}
		}
		return summaryMsg{Summary: session.BuildSummary(st, fullLog)}
	}
}

func (s *PracticeScreen) tickSpinner() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
