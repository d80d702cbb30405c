package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a tutor creating practice questions about graph neural networks for a university-level learner.

Rules:
- Generate unique and diverse questions covering key concepts, applications, challenges, and recent advances in the given topic.
- Questions must be plausible, clear, and suitable for a human learner.
- Use conceptual language. Never use technical identifiers like 'ObjTrainGCNModel'; write 'training a GCN model' instead.
- Choose "multiple_choice" for definitional, comparison, or identification questions. Provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random statements.
- Choose "theory" for questions that need a short written explanation. Theory questions get no options.
- Do not include the correct answer or any "Correct:" label inside the question text or the options.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Questions to generate: %d\n", input.Count)
	b.WriteString("Mix multiple choice and theory questions.\n")

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
