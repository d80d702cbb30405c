package questiongen

import (
	"fmt"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/ontology"
)

// StructuralValidator checks that required fields are present, within
// length limits, and consistent with the question type.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Generated, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}

	switch q.Type {
	case analytics.TypeMultipleChoice:
		if len(q.Choices) < 2 || len(q.Choices) > 6 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("multiple choice needs 2-6 options, got %d", len(q.Choices)),
				Retryable: true,
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("correct_index %d out of range for %d options", q.CorrectIndex, len(q.Choices)),
				Retryable: true,
			}
		}
	case analytics.TypeTheory:
		if len(q.Choices) != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "theory questions must not have options",
				Retryable: true,
			}
		}
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unsupported question type %q", q.Type),
			Retryable: true,
		}
	}

	return nil
}

// ConceptLanguageValidator rejects questions that leak raw graph
// identifiers (ObjTrainGCNModel and friends) into learner-facing text.
type ConceptLanguageValidator struct{}

func (v *ConceptLanguageValidator) Name() string { return "concept-language" }

func (v *ConceptLanguageValidator) Validate(q *Generated, _ GenerateInput) *ValidationError {
	if ontology.ContainsTechnicalName(q.Text) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text contains a technical identifier",
			Retryable: true,
		}
	}
	for _, c := range q.Choices {
		if ontology.ContainsTechnicalName(c) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "an option contains a technical identifier",
				Retryable: true,
			}
		}
	}
	return nil
}
