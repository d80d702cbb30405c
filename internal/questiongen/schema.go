package questiongen

import "github.com/abhisek/grafiz/internal/llm"

// BatchSchema defines the JSON schema for LLM question generation responses.
var BatchSchema = &llm.Schema{
	Name:        "gnn-question-batch",
	Description: "A batch of practice questions about graph neural networks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, in plain conceptual language",
						},
						"question_type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "theory"},
							"description": "Multiple choice with 4 options, or open-ended theory",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple_choice. Empty array for theory.",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "0-based index of the correct option. 0 for theory.",
						},
					},
					"required":             []any{"question_text", "question_type", "choices", "correct_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
