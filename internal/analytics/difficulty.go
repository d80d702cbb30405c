package analytics

// Difficulty is the suggested level for the next practice questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

const (
	// DifficultyWindow is the number of most-recent evaluated attempts
	// the suggestion is computed over.
	DifficultyWindow = 10

	// MinAttemptsForSuggestion is the evaluated-attempt floor below
	// which SuggestDifficulty returns the default.
	MinAttemptsForSuggestion = 5

	// Decision cut points. Operators are exact: >= on accuracy,
	// strict < on hints.
	HardAccuracyThreshold   = 0.85
	HardMaxAvgHints         = 1.0
	MediumAccuracyThreshold = 0.60
)

// SuggestDifficulty computes the next difficulty level from the trailing
// window of evaluated attempts. With fewer than MinAttemptsForSuggestion
// evaluated attempts it returns DifficultyEasy regardless of accuracy.
//
// Over the window: accuracy >= 0.85 and average hints < 1 suggests Hard;
// otherwise accuracy >= 0.60 suggests Medium; otherwise Easy.
func SuggestDifficulty(log []AttemptRecord) Difficulty {
	var window []AttemptRecord
	for i := len(log) - 1; i >= 0 && len(window) < DifficultyWindow; i-- {
		if log[i].Evaluated {
			window = append(window, log[i])
		}
	}
	if len(window) < MinAttemptsForSuggestion {
		return DifficultyEasy
	}

	var marks float64
	hints := 0
	for _, r := range window {
		marks += r.Mark
		hints += r.Hints
	}
	accuracy := marks / float64(len(window))
	avgHints := float64(hints) / float64(len(window))

	if accuracy >= HardAccuracyThreshold && avgHints < HardMaxAvgHints {
		return DifficultyHard
	}
	if accuracy >= MediumAccuracyThreshold {
		return DifficultyMedium
	}
	return DifficultyEasy
}
