package analytics

// Report bundles every metric for the progress and insights views, so a
// single pass over the log can be handed to the UI or the stats command.
type Report struct {
	TotalAttempts       int
	EvaluatedAttempts   int
	CorrectAnswers      int
	OverallAccuracy     float64
	CurrentStreak       int
	StudyDays           int
	TotalHints          int
	AverageHints        float64
	LearningEfficiency  float64
	LearningImprovement float64
	Concepts            []ConceptStats
	ObjectiveAccuracy   map[string]float64
	SuggestedDifficulty Difficulty
}

// BuildReport computes the full report. Safe on an empty log.
func BuildReport(log []AttemptRecord) *Report {
	evaluated := 0
	correct := 0
	for _, r := range log {
		if r.Evaluated {
			evaluated++
		}
		if r.Correct() {
			correct++
		}
	}

	return &Report{
		TotalAttempts:       len(log),
		EvaluatedAttempts:   evaluated,
		CorrectAnswers:      correct,
		OverallAccuracy:     OverallAccuracy(log),
		CurrentStreak:       CurrentStreak(log),
		StudyDays:           StudyDays(log),
		TotalHints:          TotalHints(log),
		AverageHints:        AverageHints(log),
		LearningEfficiency:  LearningEfficiency(log),
		LearningImprovement: LearningImprovement(log),
		Concepts:            ConceptMasteryList(log),
		ObjectiveAccuracy:   ObjectiveAccuracy(log),
		SuggestedDifficulty: SuggestDifficulty(log),
	}
}
