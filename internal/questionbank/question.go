package questionbank

import "github.com/abhisek/grafiz/internal/analytics"

// Choice is a single multiple-choice option.
type Choice struct {
	ID      string // "A".."D"
	Text    string
	Correct bool
}

// Question is one entry in the static bank. Every question links back
// into the concept graph via objective, task, and concept IDs.
type Question struct {
	ID          string
	ObjectiveID string
	TaskID      string
	ConceptID   string
	Type        analytics.QuestionType
	Prompt      string

	// Choices is populated for multiple-choice questions only.
	Choices []Choice

	// NumericAnswer and Tolerance apply to numeric questions only.
	// An answer within Tolerance of NumericAnswer is correct.
	NumericAnswer float64
	Tolerance     float64

	// Hints is a ladder of progressively more direct hints.
	Hints []string
}

// Hint returns the hint at the given level (0-based), or the last hint
// when the level runs past the ladder. Empty string if no hints exist.
func (q *Question) Hint(level int) string {
	if len(q.Hints) == 0 {
		return ""
	}
	if level >= len(q.Hints) {
		level = len(q.Hints) - 1
	}
	if level < 0 {
		level = 0
	}
	return q.Hints[level]
}
