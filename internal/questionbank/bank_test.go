package questionbank

import (
	"testing"

	"github.com/abhisek/grafiz/internal/analytics"
)

func TestSeedShape(t *testing.T) {
	if len(All()) == 0 {
		t.Fatal("bank is empty")
	}
	for _, q := range All() {
		if q.ObjectiveID == "" || q.ConceptID == "" || q.Prompt == "" {
			t.Errorf("question %q missing linkage or prompt", q.ID)
		}
		if q.Type == analytics.TypeMultipleChoice {
			correct := 0
			for _, c := range q.Choices {
				if c.Correct {
					correct++
				}
			}
			if correct != 1 {
				t.Errorf("question %q has %d correct choices, want 1", q.ID, correct)
			}
		}
		if len(q.Hints) == 0 {
			t.Errorf("question %q has no hints", q.ID)
		}
	}
}

func TestNextRotation(t *testing.T) {
	qs := ForObjective("obj-understand-graph-rep")
	if len(qs) < 2 {
		t.Fatalf("need at least 2 questions for rotation, got %d", len(qs))
	}

	// Empty current ID starts at the first question.
	first := Next("obj-understand-graph-rep", "")
	if first != qs[0].ID {
		t.Errorf("Next(\"\") = %q, want %q", first, qs[0].ID)
	}

	// Advancing wraps around to the start.
	cur := first
	for range qs {
		cur = Next("obj-understand-graph-rep", cur)
	}
	if cur != first {
		t.Errorf("rotation did not wrap: got %q, want %q", cur, first)
	}

	// Unknown current ID resets to the first question.
	if got := Next("obj-understand-graph-rep", "not-in-bank"); got != qs[0].ID {
		t.Errorf("Next(unknown) = %q, want %q", got, qs[0].ID)
	}

	if got := Next("no-such-objective", ""); got != "" {
		t.Errorf("Next(no questions) = %q, want empty", got)
	}
}

func TestCheckAnswerMultipleChoice(t *testing.T) {
	q := Get("q-aggregation-role")
	if q == nil {
		t.Fatal("question missing from bank")
	}

	tests := []struct {
		answer  string
		correct bool
	}{
		{"B", true},
		{"b", true}, // case-insensitive
		{" B ", true},
		{"A", false},
		{"Z", false}, // unknown choice is wrong, not an error
		{"", false},
	}
	for _, tt := range tests {
		correct, evaluated := CheckAnswer(q, tt.answer)
		if !evaluated {
			t.Errorf("CheckAnswer(%q) not evaluated", tt.answer)
		}
		if correct != tt.correct {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, correct, tt.correct)
		}
	}
}

func TestCheckAnswerNumeric(t *testing.T) {
	q := Get("q-chain-nonzero")
	if q == nil {
		t.Fatal("question missing from bank")
	}

	tests := []struct {
		answer  string
		correct bool
	}{
		{"8", true},
		{"8.00005", true}, // within tolerance
		{"7", false},
		{"eight", false}, // unparseable input is wrong
	}
	for _, tt := range tests {
		correct, evaluated := CheckAnswer(q, tt.answer)
		if !evaluated {
			t.Errorf("CheckAnswer(%q) not evaluated", tt.answer)
		}
		if correct != tt.correct {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, correct, tt.correct)
		}
	}
}

func TestCheckAnswerReflectionNotGraded(t *testing.T) {
	q := Get("q-overfit-reflection")
	if q == nil {
		t.Fatal("question missing from bank")
	}
	if _, evaluated := CheckAnswer(q, "anything"); evaluated {
		t.Error("reflection question must not be auto-graded")
	}
}

func TestHintLadder(t *testing.T) {
	q := Get("q-adjacency-entry")
	if q.Hint(0) == "" {
		t.Error("first hint empty")
	}
	if q.Hint(10) != q.Hints[len(q.Hints)-1] {
		t.Error("past-the-end hint should clamp to last")
	}
	empty := &Question{}
	if empty.Hint(0) != "" {
		t.Error("question without hints should return empty string")
	}
}
