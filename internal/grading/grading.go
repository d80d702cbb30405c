package grading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/abhisek/grafiz/internal/llm"
)

// Result is the outcome of grading one theory answer.
type Result struct {
	// Mark is 0 or 1. Theory answers get full credit when close in
	// meaning to the reference answer, otherwise nothing.
	Mark float64

	// Feedback is a short model-written explanation of the mark.
	Feedback string

	// Reference is the model answer the learner was compared against.
	Reference string
}

// AssessmentSchema defines the structured grading response.
var AssessmentSchema = &llm.Schema{
	Name:        "theory-assessment",
	Description: "Mark and feedback for a theory answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mark": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     1,
				"description": "1 if the student answer is close in meaning to the reference, else 0",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences telling the learner why",
			},
		},
		"required":             []any{"mark", "feedback"},
		"additionalProperties": false,
	},
}

// TheoryGrader grades open-ended theory answers with the LLM by first
// producing a reference answer and then comparing the learner's answer
// against it.
type TheoryGrader struct {
	provider llm.Provider
}

// NewTheoryGrader creates a grader backed by the given provider.
func NewTheoryGrader(provider llm.Provider) *TheoryGrader {
	return &TheoryGrader{provider: provider}
}

// Grade scores a learner's theory answer for the given question.
// An empty answer is marked 0 without spending an LLM call.
func (g *TheoryGrader) Grade(ctx context.Context, question, answer string) (*Result, error) {
	if answer == "" {
		return &Result{Mark: 0, Feedback: "No answer was given."}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeTheoryGrading)

	reference, err := g.referenceAnswer(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("generate reference answer: %w", err)
	}

	result, err := g.assess(ctx, reference, answer)
	if err != nil {
		return nil, fmt.Errorf("assess answer: %w", err)
	}
	result.Reference = reference
	return result, nil
}

func (g *TheoryGrader) referenceAnswer(ctx context.Context, question string) (string, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Provide a concise model answer for: " + question},
		},
		MaxTokens: 160,
	})
	if err != nil {
		return "", err
	}
	return rawText(resp.Content), nil
}

func (g *TheoryGrader) assess(ctx context.Context, reference, answer string) (*Result, error) {
	prompt := fmt.Sprintf(
		"Compare the following student answer to the reference answer. "+
			"If the student answer is close in meaning, assign 1 mark. Otherwise, assign 0.\n"+
			"Reference: %s\nStudent: %s",
		reference, answer,
	)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    AssessmentSchema,
		MaxTokens: 120,
	})
	if err != nil {
		// Looser models answer in prose like "Mark: 1 - good answer".
		// Salvage the mark with the fallback extractor before giving up.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) && len(invalid.Content) > 0 {
			text := rawText(invalid.Content)
			if mark, ok := ExtractMark(text); ok {
				return &Result{Mark: float64(mark), Feedback: text}, nil
			}
		}
		return nil, err
	}

	var out struct {
		Mark     int    `json:"mark"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse assessment: %w", err)
	}
	if out.Mark < 0 {
		out.Mark = 0
	}
	if out.Mark > 1 {
		out.Mark = 1
	}
	return &Result{Mark: float64(out.Mark), Feedback: out.Feedback}, nil
}

var markRe = regexp.MustCompile(`Mark\s*[:\-]?\s*(\d)`)

// ExtractMark pulls a "Mark: N" digit out of free-form assessment text.
// Marks other than 0 and 1 are clamped.
func ExtractMark(text string) (int, bool) {
	m := markRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	mark, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if mark > 1 {
		mark = 1
	}
	return mark, true
}

// rawText unwraps a JSON-string response body, falling back to the raw
// bytes when the content is not a JSON string.
func rawText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err != nil {
		return string(content)
	}
	return s
}
