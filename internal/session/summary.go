package session

import (
	"time"

	"github.com/abhisek/grafiz/internal/analytics"
)

// Summary holds the data displayed on the session results screen.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int

	// MCCorrect / MCTotal cover multiple choice and numeric items.
	MCCorrect int
	MCTotal   int

	// TheoryMarks / TheoryTotal cover LLM-graded theory items.
	TheoryMarks float64
	TheoryTotal int

	// Reflections counts unevaluated reflection answers.
	Reflections int

	Accuracy            float64
	SuggestedDifficulty analytics.Difficulty
}

// BuildSummary creates a Summary from the session state. The suggested
// difficulty is computed over the full history, not just this session,
// so callers pass the complete attempt log.
func BuildSummary(st *State, fullLog []analytics.AttemptRecord) *Summary {
	sum := &Summary{
		Duration:            time.Since(st.StartTime),
		TotalQuestions:      len(st.Log),
		Accuracy:            analytics.OverallAccuracy(st.Log),
		SuggestedDifficulty: analytics.SuggestDifficulty(fullLog),
	}

	for _, rec := range st.Log {
		switch rec.Type {
		case analytics.TypeTheory:
			sum.TheoryTotal++
			sum.TheoryMarks += rec.Mark
		case analytics.TypeReflection:
			sum.Reflections++
		default:
			sum.MCTotal++
			if rec.Correct() {
				sum.MCCorrect++
			}
		}
	}

	return sum
}
