package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; a failing question is
	// dropped from the batch.
	Validators []Validator

	// MaxTokens is the token budget for one LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxRounds caps how many LLM calls a single batch may make while
	// topping up dropped questions.
	MaxRounds int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ConceptLanguageValidator{},
		},
		MaxTokens:         1200,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
		MaxRounds:         3,
	}
}
