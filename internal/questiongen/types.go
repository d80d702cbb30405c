package questiongen

import "github.com/abhisek/grafiz/internal/analytics"

// Generated represents one AI-generated practice question.
type Generated struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Type is either multiple choice or theory. Numeric and reflection
	// items come from the static bank, not from generation.
	Type analytics.QuestionType

	// Choices is populated only for multiple-choice questions.
	Choices []string

	// CorrectIndex is the 0-based index into Choices of the correct
	// option. Meaningless for theory questions.
	CorrectIndex int

	// ConceptID and ObjectiveID link the question back into the
	// concept graph for analytics.
	ConceptID   string
	ObjectiveID string

	// Difficulty is the level the question was generated at.
	Difficulty analytics.Difficulty
}

// GenerateInput holds all context needed to generate a question batch.
type GenerateInput struct {
	// Topic is the conceptual topic label used in the prompt. Callers
	// should pass it through ontology.CleanName first so raw graph
	// identifiers never reach the model.
	Topic string

	// ObjectiveID and ConceptID are stamped onto every generated
	// question for attempt logging.
	ObjectiveID string
	ConceptID   string

	// Difficulty is the requested level (usually the analytics suggestion).
	Difficulty analytics.Difficulty

	// Count is how many questions to generate.
	Count int

	// PriorQuestions contains the Text of questions already asked in
	// this session. Used for deduplication in the prompt.
	PriorQuestions []string
}
