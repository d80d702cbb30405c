package analytics

import "time"

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeNumeric        QuestionType = "numeric"
	TypeTheory         QuestionType = "theory"
	TypeReflection     QuestionType = "reflection"
)

// AttemptRecord is one graded response to one question. Records are
// immutable once appended; the log is append-only for the life of a
// session and insertion order equals timestamp order.
type AttemptRecord struct {
	// QuestionText is the prompt shown to the learner. Together with
	// ConceptID it identifies a question for first-attempt tracking.
	QuestionText string

	// Type discriminates grading: MC and numeric are boolean,
	// theory carries a 0/1 mark, reflection is never auto-graded.
	Type QuestionType

	// ConceptID and ObjectiveID are opaque references into the concept
	// graph. The engine never validates their existence.
	ConceptID   string
	ObjectiveID string

	// Mark is the grade in [0,1]. Boolean correctness maps to 0 or 1.
	// Meaningless until Evaluated is true.
	Mark float64

	// Hints is the number of hints the learner used on this attempt.
	Hints int

	// Timestamp is when the answer was submitted.
	Timestamp time.Time

	// Evaluated is false until grading completes (reflection items stay
	// unevaluated forever).
	Evaluated bool
}

// Correct reports whether the attempt earned a full mark.
func (r AttemptRecord) Correct() bool {
	return r.Evaluated && r.Mark >= 1
}
