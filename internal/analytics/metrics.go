package analytics

// All metrics are pure functions of the log passed in. Every function is
// total over an empty log: degenerate input yields a documented zero
// value, never a division by zero or an error.

// OverallAccuracy returns the mark-weighted accuracy across evaluated
// attempts. Returns 0 when no evaluated attempts exist.
func OverallAccuracy(log []AttemptRecord) float64 {
	var sum float64
	n := 0
	for _, r := range log {
		if !r.Evaluated {
			continue
		}
		sum += r.Mark
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CurrentStreak counts consecutive correct attempts scanning from the
// most recent backward. The scan stops at the first incorrect or
// unevaluated attempt.
func CurrentStreak(log []AttemptRecord) int {
	streak := 0
	for i := len(log) - 1; i >= 0; i-- {
		if !log[i].Correct() {
			break
		}
		streak++
	}
	return streak
}

// StudyDays counts distinct calendar dates among attempt timestamps.
func StudyDays(log []AttemptRecord) int {
	days := make(map[string]struct{}, len(log))
	for _, r := range log {
		days[r.Timestamp.Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}

// TotalHints sums hint usage across all attempts.
func TotalHints(log []AttemptRecord) int {
	total := 0
	for _, r := range log {
		total += r.Hints
	}
	return total
}

// AverageHints returns the mean hint count per attempt, over all
// attempts including unevaluated ones. Returns 0 for an empty log.
func AverageHints(log []AttemptRecord) float64 {
	if len(log) == 0 {
		return 0
	}
	return float64(TotalHints(log)) / float64(len(log))
}

// LearningEfficiency returns the fraction of question/concept pairings
// whose first evaluated attempt was correct, over all pairings with at
// least one evaluated attempt. Returns 0 when no such pairing exists.
func LearningEfficiency(log []AttemptRecord) float64 {
	seen := make(map[string]struct{})
	pairings := 0
	firstCorrect := 0
	for _, r := range log {
		if !r.Evaluated {
			continue
		}
		key := r.QuestionText + "\x00" + r.ConceptID
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		pairings++
		if r.Correct() {
			firstCorrect++
		}
	}
	if pairings == 0 {
		return 0
	}
	return float64(firstCorrect) / float64(pairings)
}

// LearningImprovement returns second-half accuracy minus first-half
// accuracy over the chronologically ordered evaluated attempts. An
// odd-length log puts the extra attempt in the second half (floor
// split). Returns 0 when fewer than 2 evaluated attempts exist.
func LearningImprovement(log []AttemptRecord) float64 {
	var evaluated []AttemptRecord
	for _, r := range log {
		if r.Evaluated {
			evaluated = append(evaluated, r)
		}
	}
	if len(evaluated) < 2 {
		return 0
	}
	mid := len(evaluated) / 2
	return OverallAccuracy(evaluated[mid:]) - OverallAccuracy(evaluated[:mid])
}

// TypeAccuracy returns the accuracy across evaluated attempts of a
// single question type, and the count of those attempts.
func TypeAccuracy(log []AttemptRecord, qt QuestionType) (float64, int) {
	var sum float64
	n := 0
	for _, r := range log {
		if !r.Evaluated || r.Type != qt {
			continue
		}
		sum += r.Mark
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
