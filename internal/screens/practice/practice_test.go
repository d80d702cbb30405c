package practice

import (
	"testing"

	"github.com/abhisek/grafiz/internal/analytics"
)

func TestDifficultyChoicesWithoutHistory(t *testing.T) {
	s := New(nil, nil, nil)

	labels := s.difficultyChoices()
	if len(labels) != 3 {
		t.Fatalf("labels = %v, want the three base levels", labels)
	}
	if got := s.difficultyAt(1); got != analytics.DifficultyMedium {
		t.Errorf("difficultyAt(1) = %q, want Medium", got)
	}
}

func TestDifficultyChoicesWithSuggestion(t *testing.T) {
	s := New(nil, nil, nil)
	s.suggested = analytics.DifficultyHard
	s.suggestedOK = true

	labels := s.difficultyChoices()
	if len(labels) != 4 || labels[0] != "Suggested: Hard" {
		t.Fatalf("labels = %v, want suggestion first", labels)
	}
	if got := s.difficultyAt(0); got != analytics.DifficultyHard {
		t.Errorf("difficultyAt(0) = %q, want the suggestion", got)
	}
	if got := s.difficultyAt(1); got != analytics.DifficultyEasy {
		t.Errorf("difficultyAt(1) = %q, want Easy", got)
	}
	if got := s.difficultyAt(99); got != analytics.DifficultyEasy {
		t.Errorf("out-of-range index = %q, want Easy fallback", got)
	}
}

func TestPrimaryConcept(t *testing.T) {
	if got := primaryConcept("obj-implement-message-passing"); got == "" {
		t.Error("expected a concept for a seeded objective")
	}
	if got := primaryConcept("obj-missing"); got != "" {
		t.Errorf("unknown objective concept = %q, want empty", got)
	}
}
