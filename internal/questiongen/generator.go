package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/llm"
)

// Generator produces practice questions using an LLM provider.
type Generator interface {
	// Generate produces up to input.Count validated questions.
	// A short batch is not an error; callers decide whether to retry.
	Generate(ctx context.Context, input GenerateInput) ([]Generated, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw structured LLM response before validation.
type batchOutput struct {
	Questions []struct {
		QuestionText string   `json:"question_text"`
		QuestionType string   `json:"question_type"`
		Choices      []string `json:"choices"`
		CorrectIndex int      `json:"correct_index"`
	} `json:"questions"`
}

// Generate asks the provider for a question batch, validates it, and tops
// up dropped questions with further calls until the count is met or the
// round budget runs out.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Generated, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	var out []Generated
	prior := append([]string(nil), input.PriorQuestions...)

	rounds := g.config.MaxRounds
	if rounds < 1 {
		rounds = 1
	}

	for round := 0; round < rounds && len(out) < input.Count; round++ {
		req := input
		req.Count = input.Count - len(out)
		req.PriorQuestions = prior

		batch, err := g.generateOnce(ctx, req)
		if err != nil {
			if len(out) > 0 {
				// Partial batch beats a failed session.
				return out, nil
			}
			return nil, err
		}

		for _, q := range batch {
			if len(out) >= input.Count {
				break
			}
			if !g.accept(&q, input) {
				continue
			}
			q.ConceptID = input.ConceptID
			q.ObjectiveID = input.ObjectiveID
			q.Difficulty = input.Difficulty
			out = append(out, q)
			prior = append(prior, q.Text)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no usable questions after %d rounds", rounds)
	}
	return out, nil
}

// generateOnce makes a single structured request, falling back to the
// plain-text parser when the provider cannot honor the schema.
func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) ([]Generated, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) && len(invalid.Content) > 0 {
			return parseFallback(invalid.Content), nil
		}
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := make([]Generated, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		out = append(out, Generated{
			Text:         q.QuestionText,
			Type:         questionType(q.QuestionType),
			Choices:      q.Choices,
			CorrectIndex: q.CorrectIndex,
		})
	}
	return out, nil
}

// parseFallback treats non-conforming content as a numbered plain-text
// list, which is how looser models tend to answer.
func parseFallback(content json.RawMessage) []Generated {
	var text string
	if err := json.Unmarshal(content, &text); err != nil {
		text = string(content)
	}
	return ParseText(text)
}

// questionType maps the schema enum to the analytics type. Unknown
// values pass through unchanged and fail structural validation later.
func questionType(s string) analytics.QuestionType {
	switch s {
	case "multiple_choice":
		return analytics.TypeMultipleChoice
	case "theory":
		return analytics.TypeTheory
	default:
		return analytics.QuestionType(s)
	}
}

func (g *LLMGenerator) accept(q *Generated, input GenerateInput) bool {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return false
		}
	}
	return true
}
