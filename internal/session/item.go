package session

import (
	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/questionbank"
	"github.com/abhisek/grafiz/internal/questiongen"
)

// Item is one question queued in a practice session, whether it came
// from the static bank or from the generator.
type Item struct {
	// QuestionID is the bank ID, or empty for generated questions.
	QuestionID string

	Text    string
	Type    analytics.QuestionType
	Choices []string

	// CorrectIndex is the 0-based correct option for multiple choice.
	CorrectIndex int

	// NumericAnswer and Tolerance apply to numeric questions.
	NumericAnswer float64
	Tolerance     float64

	// Hints is the ladder of hints, most subtle first. Generated
	// questions have none.
	Hints []string

	ConceptID   string
	ObjectiveID string
	Difficulty  analytics.Difficulty
}

// ItemFromBank converts a bank question into a session item.
func ItemFromBank(q questionbank.Question, difficulty analytics.Difficulty) Item {
	item := Item{
		QuestionID:    q.ID,
		Text:          q.Prompt,
		Type:          q.Type,
		NumericAnswer: q.NumericAnswer,
		Tolerance:     q.Tolerance,
		Hints:         q.Hints,
		ConceptID:     q.ConceptID,
		ObjectiveID:   q.ObjectiveID,
		Difficulty:    difficulty,
	}
	for i, c := range q.Choices {
		item.Choices = append(item.Choices, c.Text)
		if c.Correct {
			item.CorrectIndex = i
		}
	}
	return item
}

// ItemFromGenerated converts a generated question into a session item.
func ItemFromGenerated(g questiongen.Generated) Item {
	return Item{
		Text:         g.Text,
		Type:         g.Type,
		Choices:      g.Choices,
		CorrectIndex: g.CorrectIndex,
		ConceptID:    g.ConceptID,
		ObjectiveID:  g.ObjectiveID,
		Difficulty:   g.Difficulty,
	}
}

// Hint returns the hint at the given 0-based level, clamped to the
// ladder. Empty string when the item has no hints.
func (it *Item) Hint(level int) string {
	if len(it.Hints) == 0 {
		return ""
	}
	if level < 0 {
		level = 0
	}
	if level >= len(it.Hints) {
		level = len(it.Hints) - 1
	}
	return it.Hints[level]
}
