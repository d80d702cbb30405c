package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/llm"
)

// Coach produces a short motivating note from the learner's numbers.
// It is optional; the rule-based insights cover the offline case.
type Coach struct {
	provider llm.Provider
}

// NewCoach creates a Coach backed by the given provider.
func NewCoach(provider llm.Provider) *Coach {
	return &Coach{provider: provider}
}

// Advise asks the model for personalized insights over the report.
func (c *Coach) Advise(ctx context.Context, report *analytics.Report) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCoach)

	prompt := fmt.Sprintf(
		`As an expert learning coach, provide personalized learning insights based on this student data:

- Total questions attempted: %d
- Correct answers: %d
- Accuracy: %.1f%%
- Study days: %d
- Hints used: %d

Provide:
1. One key strength to celebrate
2. One area for improvement
3. One specific action to take next

Keep response concise (3-4 sentences) and motivating.`,
		report.TotalAttempts,
		report.CorrectAnswers,
		report.OverallAccuracy*100,
		report.StudyDays,
		report.TotalHints,
	)

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("coach advice: %w", err)
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		text = string(resp.Content)
	}
	return text, nil
}
