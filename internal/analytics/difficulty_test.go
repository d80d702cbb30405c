package analytics

import (
	"testing"
	"time"
)

func windowAttempt(mark float64, hints int) AttemptRecord {
	return AttemptRecord{
		QuestionText: "q",
		ConceptID:    "c1",
		Mark:         mark,
		Hints:        hints,
		Evaluated:    true,
		Timestamp:    time.Now(),
	}
}

func windowLog(marks []float64, hints []int) []AttemptRecord {
	log := make([]AttemptRecord, len(marks))
	for i := range marks {
		h := 0
		if hints != nil {
			h = hints[i]
		}
		log[i] = windowAttempt(marks[i], h)
	}
	return log
}

func TestSuggestDifficultyEmptyLog(t *testing.T) {
	if got := SuggestDifficulty(nil); got != DifficultyEasy {
		t.Errorf("SuggestDifficulty(empty) = %v, want Easy", got)
	}
}

// Fewer than 5 evaluated attempts always yields Easy, even at 100% accuracy.
func TestSuggestDifficultyBelowMinimum(t *testing.T) {
	log := windowLog([]float64{1, 1, 1, 1}, nil)
	if got := SuggestDifficulty(log); got != DifficultyEasy {
		t.Errorf("SuggestDifficulty(4 perfect) = %v, want Easy", got)
	}
}

func TestSuggestDifficultyUnevaluatedDoNotCount(t *testing.T) {
	log := windowLog([]float64{1, 1, 1, 1}, nil)
	log = append(log, AttemptRecord{Evaluated: false, Timestamp: time.Now()})
	if got := SuggestDifficulty(log); got != DifficultyEasy {
		t.Errorf("4 evaluated + 1 pending = %v, want Easy", got)
	}
}

// 5 correct answers with 0 hints each → Hard.
func TestSuggestDifficultyPerfectWindow(t *testing.T) {
	log := windowLog([]float64{1, 1, 1, 1, 1}, nil)
	if got := SuggestDifficulty(log); got != DifficultyHard {
		t.Errorf("SuggestDifficulty(5 perfect, 0 hints) = %v, want Hard", got)
	}
}

// 3 of 5 correct is 60% exactly — inclusive boundary → Medium.
func TestSuggestDifficultyMediumBoundary(t *testing.T) {
	log := windowLog([]float64{1, 1, 1, 0, 0}, nil)
	if got := SuggestDifficulty(log); got != DifficultyMedium {
		t.Errorf("SuggestDifficulty(60%%) = %v, want Medium", got)
	}
}

func TestSuggestDifficultyLowAccuracy(t *testing.T) {
	log := windowLog([]float64{1, 0, 0, 0, 0}, nil)
	if got := SuggestDifficulty(log); got != DifficultyEasy {
		t.Errorf("SuggestDifficulty(20%%) = %v, want Easy", got)
	}
}

// High accuracy but heavy hint usage drops Hard to Medium:
// average hints must be strictly below 1.
func TestSuggestDifficultyHintGate(t *testing.T) {
	log := windowLog([]float64{1, 1, 1, 1, 1}, []int{1, 1, 1, 1, 1})
	if got := SuggestDifficulty(log); got != DifficultyMedium {
		t.Errorf("perfect accuracy, avg hints 1.0 = %v, want Medium", got)
	}

	log = windowLog([]float64{1, 1, 1, 1, 1}, []int{1, 0, 0, 0, 0})
	if got := SuggestDifficulty(log); got != DifficultyHard {
		t.Errorf("perfect accuracy, avg hints 0.2 = %v, want Hard", got)
	}
}

// Exactly 85% accuracy qualifies for Hard (inclusive boundary).
func TestSuggestDifficultyHardBoundary(t *testing.T) {
	// 17 of 20 in the full log, but only the trailing 10 count:
	// make the trailing window exactly 85% mark-weighted.
	marks := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 0.5}
	log := windowLog(marks, nil)
	if got := SuggestDifficulty(log); got != DifficultyHard {
		t.Errorf("SuggestDifficulty(85%%) = %v, want Hard", got)
	}
}

// Only the trailing window counts: a weak start must not drag down a
// strong recent run.
func TestSuggestDifficultyTrailingWindow(t *testing.T) {
	var log []AttemptRecord
	for i := 0; i < 20; i++ {
		log = append(log, windowAttempt(0, 0)) // old misses
	}
	for i := 0; i < DifficultyWindow; i++ {
		log = append(log, windowAttempt(1, 0)) // recent perfect run
	}
	if got := SuggestDifficulty(log); got != DifficultyHard {
		t.Errorf("SuggestDifficulty(recent perfect run) = %v, want Hard", got)
	}
}
