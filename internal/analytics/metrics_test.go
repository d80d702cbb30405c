package analytics

import (
	"math"
	"testing"
	"time"
)

func attempt(mark float64, evaluated bool) AttemptRecord {
	return AttemptRecord{
		QuestionText: "q",
		Type:         TypeMultipleChoice,
		ConceptID:    "c1",
		ObjectiveID:  "o1",
		Mark:         mark,
		Timestamp:    time.Now(),
		Evaluated:    evaluated,
	}
}

func logOf(marks ...float64) []AttemptRecord {
	log := make([]AttemptRecord, len(marks))
	for i, m := range marks {
		log[i] = attempt(m, true)
	}
	return log
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOverallAccuracyEmptyLog(t *testing.T) {
	if got := OverallAccuracy(nil); got != 0 {
		t.Errorf("OverallAccuracy(empty) = %v, want 0", got)
	}
}

func TestOverallAccuracy(t *testing.T) {
	tests := []struct {
		name string
		log  []AttemptRecord
		want float64
	}{
		{"all correct", logOf(1, 1, 1), 1.0},
		{"all wrong", logOf(0, 0), 0.0},
		{"mixed", logOf(1, 0, 1, 0), 0.5},
		{"mark weighted", logOf(1, 0.5, 0), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallAccuracy(tt.log); !almostEqual(got, tt.want) {
				t.Errorf("OverallAccuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverallAccuracySkipsUnevaluated(t *testing.T) {
	log := []AttemptRecord{
		attempt(1, true),
		attempt(0, false), // pending reflection, must not count
		attempt(1, true),
	}
	if got := OverallAccuracy(log); !almostEqual(got, 1.0) {
		t.Errorf("OverallAccuracy() = %v, want 1.0", got)
	}
}

func TestOverallAccuracyInRange(t *testing.T) {
	logs := [][]AttemptRecord{
		nil,
		logOf(0),
		logOf(1),
		logOf(0.3, 0.7, 1, 0),
	}
	for _, log := range logs {
		got := OverallAccuracy(log)
		if got < 0 || got > 1 {
			t.Errorf("OverallAccuracy() = %v, out of [0,1]", got)
		}
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		log  []AttemptRecord
		want int
	}{
		{"empty", nil, 0},
		{"all correct equals length", logOf(1, 1, 1, 1), 4},
		{"most recent wrong", logOf(1, 1, 0), 0},
		{"streak after miss", logOf(0, 1, 1), 2},
		{"single correct", logOf(1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.log); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakStopsAtUnevaluated(t *testing.T) {
	log := []AttemptRecord{
		attempt(1, true),
		attempt(0, false),
		attempt(1, true),
		attempt(1, true),
	}
	if got := CurrentStreak(log); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}

func TestStudyDays(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}
	log := []AttemptRecord{
		{Timestamp: day(0), Evaluated: true, Mark: 1},
		{Timestamp: day(0).Add(4 * time.Hour), Evaluated: true, Mark: 0},
		{Timestamp: day(1), Evaluated: true, Mark: 1},
		{Timestamp: day(5), Evaluated: true, Mark: 1},
	}
	if got := StudyDays(log); got != 3 {
		t.Errorf("StudyDays() = %d, want 3", got)
	}
	if got := StudyDays(nil); got != 0 {
		t.Errorf("StudyDays(empty) = %d, want 0", got)
	}
}

func TestAverageHints(t *testing.T) {
	log := []AttemptRecord{
		{Hints: 2, Evaluated: true, Mark: 1, Timestamp: time.Now()},
		{Hints: 0, Evaluated: true, Mark: 0, Timestamp: time.Now()},
		{Hints: 1, Evaluated: false, Timestamp: time.Now()},
	}
	if got := AverageHints(log); !almostEqual(got, 1.0) {
		t.Errorf("AverageHints() = %v, want 1.0", got)
	}
	if got := AverageHints(nil); got != 0 {
		t.Errorf("AverageHints(empty) = %v, want 0", got)
	}
	if got := TotalHints(log); got != 3 {
		t.Errorf("TotalHints() = %d, want 3", got)
	}
}

func TestLearningEfficiency(t *testing.T) {
	rec := func(text string, mark float64) AttemptRecord {
		return AttemptRecord{
			QuestionText: text,
			ConceptID:    "c1",
			Mark:         mark,
			Evaluated:    true,
			Timestamp:    time.Now(),
		}
	}
	log := []AttemptRecord{
		rec("q1", 1), // first attempt correct
		rec("q2", 0), // first attempt wrong
		rec("q2", 1), // retry, ignored for efficiency
		rec("q3", 1), // first attempt correct
	}
	if got := LearningEfficiency(log); !almostEqual(got, 2.0/3.0) {
		t.Errorf("LearningEfficiency() = %v, want 2/3", got)
	}
	if got := LearningEfficiency(nil); got != 0 {
		t.Errorf("LearningEfficiency(empty) = %v, want 0", got)
	}
}

func TestLearningImprovement(t *testing.T) {
	tests := []struct {
		name string
		log  []AttemptRecord
		want float64
	}{
		{"empty", nil, 0},
		{"single attempt", logOf(1), 0},
		{"monotonic improvement", logOf(0, 0, 1, 1), 1.0},
		{"monotonic decline", logOf(1, 1, 0, 0), -1.0},
		{"flat", logOf(1, 0, 1, 0), 0},
		// Odd length: floor split puts 2 in the first half, 3 in the second.
		{"odd length floor split", logOf(0, 0, 1, 1, 1), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LearningImprovement(tt.log); !almostEqual(got, tt.want) {
				t.Errorf("LearningImprovement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLearningImprovementRange(t *testing.T) {
	got := LearningImprovement(logOf(0, 1, 0, 1, 1, 0))
	if got < -1 || got > 1 {
		t.Errorf("LearningImprovement() = %v, out of [-1,1]", got)
	}
}

func TestTypeAccuracy(t *testing.T) {
	log := []AttemptRecord{
		{Type: TypeMultipleChoice, Mark: 1, Evaluated: true},
		{Type: TypeMultipleChoice, Mark: 0, Evaluated: true},
		{Type: TypeTheory, Mark: 1, Evaluated: true},
		{Type: TypeReflection, Evaluated: false},
	}
	acc, n := TypeAccuracy(log, TypeMultipleChoice)
	if !almostEqual(acc, 0.5) || n != 2 {
		t.Errorf("TypeAccuracy(MC) = (%v, %d), want (0.5, 2)", acc, n)
	}
	acc, n = TypeAccuracy(log, TypeNumeric)
	if acc != 0 || n != 0 {
		t.Errorf("TypeAccuracy(numeric) = (%v, %d), want (0, 0)", acc, n)
	}
}

// Metrics are pure: calling twice on the same log yields identical results.
func TestMetricsIdempotent(t *testing.T) {
	log := logOf(1, 0, 1, 1, 0, 1)
	log[2].Hints = 2

	first := BuildReport(log)
	second := BuildReport(log)

	if first.OverallAccuracy != second.OverallAccuracy ||
		first.CurrentStreak != second.CurrentStreak ||
		first.LearningImprovement != second.LearningImprovement ||
		first.SuggestedDifficulty != second.SuggestedDifficulty {
		t.Error("repeated report runs differ on an unchanged log")
	}
}

func TestBuildReportEmptyLog(t *testing.T) {
	r := BuildReport(nil)
	if r.TotalAttempts != 0 || r.OverallAccuracy != 0 || r.CurrentStreak != 0 {
		t.Errorf("BuildReport(empty) = %+v, want zeroes", r)
	}
	if r.SuggestedDifficulty != DifficultyEasy {
		t.Errorf("SuggestedDifficulty = %v, want Easy", r.SuggestedDifficulty)
	}
	if len(r.Concepts) != 0 {
		t.Errorf("Concepts = %v, want empty", r.Concepts)
	}
}
