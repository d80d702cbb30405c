package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/grading"
	"github.com/abhisek/grafiz/internal/llm"
	"github.com/abhisek/grafiz/internal/questionbank"
	"github.com/abhisek/grafiz/internal/questiongen"
)

func testQueue() []Item {
	return []Item{
		{
			Text:         "What does aggregation do?",
			Type:         analytics.TypeMultipleChoice,
			Choices:      []string{"combines neighbor info", "trains the model"},
			CorrectIndex: 0,
			ConceptID:    "message-passing",
			ObjectiveID:  "obj-implement-message-passing",
			Difficulty:   analytics.DifficultyEasy,
			Hints:        []string{"first hint", "second hint"},
		},
		{
			Text:          "How many edges in a 5-node chain?",
			Type:          analytics.TypeNumeric,
			NumericAnswer: 4,
			Tolerance:     0.0001,
			ConceptID:     "basic-graph-representation",
			ObjectiveID:   "obj-understand-graph-rep",
			Difficulty:    analytics.DifficultyEasy,
		},
		{
			Text:        "Reflect on your training run.",
			Type:        analytics.TypeReflection,
			ConceptID:   "training-workflow",
			ObjectiveID: "obj-evaluate-graph-accuracy",
			Difficulty:  analytics.DifficultyEasy,
		},
	}
}

func TestSessionFlow(t *testing.T) {
	r := &Runner{}
	st := NewState("sess-1", "obj-implement-message-passing", "Message Passing", analytics.DifficultyEasy, testQueue())
	ctx := context.Background()

	// Correct MC answer.
	out, err := r.SubmitChoice(ctx, st, 0)
	if err != nil {
		t.Fatalf("submit choice: %v", err)
	}
	if !out.Correct || out.Mark != 1 {
		t.Errorf("outcome = %+v, want correct", out)
	}
	if st.Phase != PhaseFeedback {
		t.Errorf("phase = %v, want feedback", st.Phase)
	}
	st.Advance()

	// Wrong numeric answer.
	out, err = r.SubmitText(ctx, st, "7")
	if err != nil {
		t.Fatalf("submit text: %v", err)
	}
	if out.Correct {
		t.Error("7 should be wrong")
	}
	st.Advance()

	// Reflection is never evaluated.
	out, err = r.SubmitText(ctx, st, "I think I overfit.")
	if err != nil {
		t.Fatalf("submit reflection: %v", err)
	}
	if out.Evaluated {
		t.Error("reflection must not be evaluated")
	}
	st.Advance()

	if !st.Done() || st.Phase != PhaseSummary {
		t.Errorf("expected summary phase, got %v (index %d)", st.Phase, st.Index)
	}
	if st.TotalCorrect != 1 {
		t.Errorf("total correct = %d, want 1", st.TotalCorrect)
	}

	sum := BuildSummary(st, st.Log)
	if sum.MCTotal != 2 || sum.MCCorrect != 1 {
		t.Errorf("summary MC = %d/%d, want 1/2", sum.MCCorrect, sum.MCTotal)
	}
	if sum.Reflections != 1 {
		t.Errorf("reflections = %d, want 1", sum.Reflections)
	}
	// Two evaluated attempts is below the suggestion floor.
	if sum.SuggestedDifficulty != analytics.DifficultyEasy {
		t.Errorf("suggested = %q, want Easy", sum.SuggestedDifficulty)
	}
}

func TestNumericBoundaries(t *testing.T) {
	r := &Runner{}
	ctx := context.Background()

	tests := []struct {
		answer  string
		correct bool
	}{
		{"4", true},
		{" 4.00005 ", true}, // within tolerance, whitespace trimmed
		{"3.99", false},
		{"four", false}, // unparseable is wrong, not an error
		{"", false},
	}
	for _, tt := range tests {
		st := NewState("s", "obj-understand-graph-rep", "t", analytics.DifficultyEasy, testQueue())
		st.Index = 1
		out, err := r.SubmitText(ctx, st, tt.answer)
		if err != nil {
			t.Fatalf("submit %q: %v", tt.answer, err)
		}
		if out.Correct != tt.correct {
			t.Errorf("answer %q correct = %v, want %v", tt.answer, out.Correct, tt.correct)
		}
	}
}

func TestTheoryGradingThroughRunner(t *testing.T) {
	ref, _ := json.Marshal("A reference answer.")
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: ref},
		llm.MockResponse{Content: json.RawMessage(`{"mark": 1, "feedback": "Good."}`)},
	)
	r := &Runner{Grader: grading.NewTheoryGrader(mock)}

	queue := []Item{{
		Text:        "Explain oversmoothing.",
		Type:        analytics.TypeTheory,
		ConceptID:   "gcn-layer-fundamentals",
		ObjectiveID: "obj-train-gcn-model",
		Difficulty:  analytics.DifficultyMedium,
	}}
	st := NewState("s", "obj-train-gcn-model", "t", analytics.DifficultyMedium, queue)

	out, err := r.SubmitText(context.Background(), st, "Deep stacks average features until nodes look alike.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Evaluated || out.Mark != 1 {
		t.Errorf("outcome = %+v, want evaluated mark 1", out)
	}
	if st.TheoryMarks != 1 {
		t.Errorf("theory marks = %v, want 1", st.TheoryMarks)
	}
}

func TestTheoryWithoutGraderIsUnevaluated(t *testing.T) {
	r := &Runner{}
	queue := []Item{{Text: "Explain GCNs.", Type: analytics.TypeTheory, ConceptID: "c", ObjectiveID: "o"}}
	st := NewState("s", "o", "t", analytics.DifficultyEasy, queue)

	out, err := r.SubmitText(context.Background(), st, "an answer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Evaluated {
		t.Error("theory without a grader must stay unevaluated")
	}
}

func TestHintLadderAndCounting(t *testing.T) {
	r := &Runner{}
	st := NewState("s", "o", "t", analytics.DifficultyEasy, testQueue())
	ctx := context.Background()

	h1, _ := r.RequestHint(ctx, st)
	h2, _ := r.RequestHint(ctx, st)
	h3, _ := r.RequestHint(ctx, st)
	if h1 != "first hint" || h2 != "second hint" {
		t.Errorf("hints = %q, %q", h1, h2)
	}
	if h3 != "second hint" {
		t.Errorf("past-the-end hint = %q, want clamp to last", h3)
	}
	if st.HintLevel != 2 {
		t.Errorf("hint level = %d, want 2 (clamped)", st.HintLevel)
	}

	// Hint count lands on the attempt record.
	if _, err := r.SubmitChoice(ctx, st, 1); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if st.Log[0].Hints != 2 {
		t.Errorf("recorded hints = %d, want 2", st.Log[0].Hints)
	}

	// Questions without hints return nothing.
	st.Advance()
	if h, _ := r.RequestHint(ctx, st); h != "" {
		t.Errorf("numeric item hint = %q, want empty", h)
	}
}

func TestSubmitTypeMismatch(t *testing.T) {
	r := &Runner{}
	st := NewState("s", "o", "t", analytics.DifficultyEasy, testQueue())
	ctx := context.Background()

	if _, err := r.SubmitText(ctx, st, "text"); err == nil {
		t.Error("expected error submitting text to a multiple choice item")
	}
	st.Index = 1
	if _, err := r.SubmitChoice(ctx, st, 0); err == nil {
		t.Error("expected error submitting a choice to a numeric item")
	}
}

func TestResetClearsProgressOnly(t *testing.T) {
	r := &Runner{}
	st := NewState("s", "o", "t", analytics.DifficultyEasy, testQueue())
	ctx := context.Background()

	if _, err := r.SubmitChoice(ctx, st, 0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	st.Advance()

	st.Reset()
	if st.Index != 0 || len(st.Log) != 0 || st.TotalCorrect != 0 {
		t.Errorf("reset left progress behind: index=%d log=%d correct=%d", st.Index, len(st.Log), st.TotalCorrect)
	}
	if len(st.Queue) != 3 {
		t.Errorf("reset dropped the queue: %d items", len(st.Queue))
	}
}

func TestItemConversions(t *testing.T) {
	bankQ := questionbank.Get("q-aggregation-role")
	if bankQ == nil {
		t.Fatal("bank question missing")
	}
	item := ItemFromBank(*bankQ, analytics.DifficultyMedium)
	if item.QuestionID != bankQ.ID || item.CorrectIndex != 1 {
		t.Errorf("bank item = %+v", item)
	}
	if len(item.Choices) != 4 {
		t.Errorf("choices = %d, want 4", len(item.Choices))
	}

	gen := questiongen.Generated{
		Text:         "Pick one",
		Type:         analytics.TypeMultipleChoice,
		Choices:      []string{"a", "b"},
		CorrectIndex: 1,
		ConceptID:    "message-passing",
		ObjectiveID:  "obj-implement-message-passing",
		Difficulty:   analytics.DifficultyHard,
	}
	genItem := ItemFromGenerated(gen)
	if genItem.QuestionID != "" || genItem.CorrectIndex != 1 || genItem.Difficulty != analytics.DifficultyHard {
		t.Errorf("generated item = %+v", genItem)
	}
}
