package session

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/grading"
	"github.com/abhisek/grafiz/internal/store"
)

// Runner drives a practice session: grading answers, recording hint
// usage, and appending events. Events and Grader may be nil; the runner
// then skips persistence and marks theory answers unevaluated.
type Runner struct {
	Events store.EventRepo
	Grader *grading.TheoryGrader
}

// Begin records the session start event.
func (r *Runner) Begin(ctx context.Context, st *State) error {
	if r.Events == nil {
		return nil
	}
	return r.Events.AppendSession(ctx, store.SessionEventData{
		SessionID:   st.SessionID,
		Action:      "start",
		ObjectiveID: st.ObjectiveID,
		Difficulty:  string(st.Difficulty),
	})
}

// End records the session end event with totals.
func (r *Runner) End(ctx context.Context, st *State) error {
	if r.Events == nil {
		return nil
	}
	return r.Events.AppendSession(ctx, store.SessionEventData{
		SessionID:       st.SessionID,
		Action:          "end",
		ObjectiveID:     st.ObjectiveID,
		Difficulty:      string(st.Difficulty),
		QuestionsServed: len(st.Log),
		CorrectAnswers:  st.TotalCorrect,
		DurationSecs:    int(time.Since(st.StartTime).Seconds()),
	})
}

// SubmitChoice grades a multiple-choice selection (0-based index).
func (r *Runner) SubmitChoice(ctx context.Context, st *State, choice int) (*Outcome, error) {
	item := st.Current()
	if item == nil {
		return nil, fmt.Errorf("no active question")
	}
	if item.Type != analytics.TypeMultipleChoice {
		return nil, fmt.Errorf("question %q is not multiple choice", item.Text)
	}

	correct := choice == item.CorrectIndex
	mark := 0.0
	if correct {
		mark = 1
	}
	out := &Outcome{
		Correct:       correct,
		Evaluated:     true,
		Mark:          mark,
		CorrectChoice: item.CorrectIndex,
	}

	answer := strconv.Itoa(choice)
	if choice >= 0 && choice < len(item.Choices) {
		answer = item.Choices[choice]
	}
	return out, r.record(ctx, st, item, answer, out)
}

// SubmitText grades a typed answer: parsed for numeric questions,
// LLM-graded for theory, and recorded unevaluated for reflections.
func (r *Runner) SubmitText(ctx context.Context, st *State, text string) (*Outcome, error) {
	item := st.Current()
	if item == nil {
		return nil, fmt.Errorf("no active question")
	}

	var out *Outcome
	switch item.Type {
	case analytics.TypeNumeric:
		out = gradeNumeric(item, text)
	case analytics.TypeTheory:
		res, err := r.gradeTheory(ctx, item, text)
		if err != nil {
			return nil, err
		}
		out = res
	case analytics.TypeReflection:
		out = &Outcome{
			Evaluated:     false,
			CorrectChoice: -1,
			Feedback:      "Reflection noted. There is no right answer here.",
		}
	default:
		return nil, fmt.Errorf("question %q expects a choice, not text", item.Text)
	}

	return out, r.record(ctx, st, item, text, out)
}

// RequestHint reveals the next hint for the current question and logs
// it. Returns the hint text, or "" when the item has none.
func (r *Runner) RequestHint(ctx context.Context, st *State) (string, error) {
	item := st.Current()
	if item == nil || len(item.Hints) == 0 {
		return "", nil
	}

	hint := item.Hint(st.HintLevel)
	level := st.HintLevel
	if st.HintLevel < len(item.Hints) {
		st.HintLevel++
	}

	if r.Events != nil {
		err := r.Events.AppendHint(ctx, store.HintEventData{
			SessionID:  st.SessionID,
			QuestionID: item.QuestionID,
			ConceptID:  item.ConceptID,
			Level:      level,
			HintText:   hint,
		})
		if err != nil {
			return hint, fmt.Errorf("record hint: %w", err)
		}
	}
	return hint, nil
}

func gradeNumeric(item *Item, text string) *Outcome {
	out := &Outcome{Evaluated: true, CorrectChoice: -1}
	val, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err == nil && math.Abs(val-item.NumericAnswer) <= item.Tolerance {
		out.Correct = true
		out.Mark = 1
	}
	return out
}

func (r *Runner) gradeTheory(ctx context.Context, item *Item, text string) (*Outcome, error) {
	if r.Grader == nil {
		// Without a grader the answer is kept but never scored,
		// like a reflection.
		return &Outcome{
			Evaluated:     false,
			CorrectChoice: -1,
			Feedback:      "Recorded. Theory grading needs an AI provider.",
		}, nil
	}

	res, err := r.Grader.Grade(ctx, item.Text, text)
	if err != nil {
		return nil, fmt.Errorf("grade theory answer: %w", err)
	}
	return &Outcome{
		Correct:       res.Mark >= 1,
		Evaluated:     true,
		Mark:          res.Mark,
		CorrectChoice: -1,
		Feedback:      res.Feedback,
	}, nil
}

// record updates session counters, appends to the in-memory log, and
// persists the attempt event.
func (r *Runner) record(ctx context.Context, st *State, item *Item, answer string, out *Outcome) error {
	rec := analytics.AttemptRecord{
		QuestionText: item.Text,
		Type:         item.Type,
		ConceptID:    item.ConceptID,
		ObjectiveID:  item.ObjectiveID,
		Mark:         out.Mark,
		Hints:        st.HintLevel,
		Timestamp:    time.Now(),
		Evaluated:    out.Evaluated,
	}
	st.Log = append(st.Log, rec)
	st.LastOutcome = out
	st.Phase = PhaseFeedback

	if rec.Correct() {
		st.TotalCorrect++
	}
	if item.Type == analytics.TypeTheory && out.Evaluated {
		st.TheoryMarks += out.Mark
	}

	if r.Events == nil {
		return nil
	}
	err := r.Events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:     st.SessionID,
		QuestionID:    item.QuestionID,
		QuestionText:  item.Text,
		QuestionType:  item.Type,
		ConceptID:     item.ConceptID,
		ObjectiveID:   item.ObjectiveID,
		Difficulty:    string(item.Difficulty),
		LearnerAnswer: answer,
		Mark:          out.Mark,
		HintsUsed:     st.HintLevel,
		Evaluated:     out.Evaluated,
		TimeMs:        int(time.Since(st.QuestionStartTime).Milliseconds()),
	})
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}
