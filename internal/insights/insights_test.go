package insights

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/llm"
)

func attempt(qt analytics.QuestionType, mark float64, hints int) analytics.AttemptRecord {
	return analytics.AttemptRecord{
		QuestionText: "q",
		Type:         qt,
		ConceptID:    "message-passing",
		ObjectiveID:  "obj-implement-message-passing",
		Mark:         mark,
		Hints:        hints,
		Timestamp:    time.Now(),
		Evaluated:    qt != analytics.TypeReflection,
	}
}

func TestBuildEmptyLog(t *testing.T) {
	if got := Build(nil); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}

	// A log with only reflections has nothing to evaluate either.
	log := []analytics.AttemptRecord{attempt(analytics.TypeReflection, 0, 0)}
	if got := Build(log); got != nil {
		t.Errorf("Build(reflections only) = %v, want nil", got)
	}
}

func TestAccuracyInsightBands(t *testing.T) {
	tests := []struct {
		pct   float64
		title string
	}{
		{95, "Excellent Performance!"},
		{80, "Excellent Performance!"}, // inclusive boundary
		{79.9, "Good Progress!"},
		{60, "Good Progress!"},
		{59.9, "Keep Going!"},
		{0, "Keep Going!"},
	}
	for _, tt := range tests {
		if got := accuracyInsight(tt.pct); got.Title != tt.title {
			t.Errorf("accuracyInsight(%v) = %q, want %q", tt.pct, got.Title, tt.title)
		}
	}
}

func TestHintInsightBands(t *testing.T) {
	tests := []struct {
		avg   float64
		title string
	}{
		{0, "Efficient Learner"},
		{0.49, "Efficient Learner"},
		{0.5, "Balanced Approach"},
		{1.99, "Balanced Approach"},
		{2, "Hint-Dependent Learning"},
		{5, "Hint-Dependent Learning"},
	}
	for _, tt := range tests {
		if got := hintInsight(tt.avg); got.Title != tt.title {
			t.Errorf("hintInsight(%v) = %q, want %q", tt.avg, got.Title, tt.title)
		}
	}
}

func TestBuildIncludesTypeBreakdown(t *testing.T) {
	log := []analytics.AttemptRecord{
		attempt(analytics.TypeMultipleChoice, 1, 0),
		attempt(analytics.TypeMultipleChoice, 1, 0),
		attempt(analytics.TypeNumeric, 0, 3),
		attempt(analytics.TypeReflection, 0, 0),
	}

	got := Build(log)
	titles := make(map[string]string)
	for _, in := range got {
		titles[in.Title] = in.Body
	}

	if body, ok := titles["Multiple Choice"]; !ok || !strings.Contains(body, "Strong") {
		t.Errorf("MC insight = %q, want strength note", body)
	}
	if body, ok := titles["Numeric"]; !ok || !strings.Contains(body, "Practice") {
		t.Errorf("numeric insight = %q, want practice note", body)
	}
	if _, ok := titles["Reflection"]; !ok {
		t.Error("expected reflection insight")
	}
}

func TestCoachAdvise(t *testing.T) {
	advice, _ := json.Marshal("Great streak! Focus on message passing next.")
	mock := llm.NewMockProvider(llm.MockResponse{Content: advice})
	coach := NewCoach(mock)

	log := []analytics.AttemptRecord{
		attempt(analytics.TypeMultipleChoice, 1, 0),
		attempt(analytics.TypeNumeric, 0, 2),
	}
	got, err := coach.Advise(context.Background(), analytics.BuildReport(log))
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if !strings.Contains(got, "streak") {
		t.Errorf("advice = %q", got)
	}

	// The prompt carries the actual numbers.
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Total questions attempted: 2") {
		t.Errorf("prompt missing attempt count:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Accuracy: 50.0%") {
		t.Errorf("prompt missing accuracy:\n%s", prompt)
	}
}

func TestCoachProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	coach := NewCoach(mock)

	if _, err := coach.Advise(context.Background(), &analytics.Report{}); err == nil {
		t.Fatal("expected error when the provider is down")
	}
}
