package grading

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/grafiz/internal/llm"
)

func jsonString(t *testing.T, s string) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestGradeStructuredAssessment(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: jsonString(t, "Overfitting means the model memorizes training data.")},
		llm.MockResponse{Content: json.RawMessage(`{"mark": 1, "feedback": "Close enough to the reference."}`)},
	)
	g := NewTheoryGrader(mock)

	res, err := g.Grade(context.Background(), "What is overfitting?", "Memorizing the training set instead of generalizing.")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Mark != 1 {
		t.Errorf("mark = %v, want 1", res.Mark)
	}
	if res.Feedback == "" {
		t.Error("expected feedback")
	}
	if res.Reference == "" {
		t.Error("expected reference answer to be kept")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (reference + assessment)", mock.CallCount())
	}
}

func TestGradeFallsBackToMarkRegex(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: jsonString(t, "A model answer.")},
		llm.MockResponse{Err: &llm.ErrInvalidResponse{
			Content: jsonString(t, "Mark: 1 - the student captured the key idea."),
		}},
	)
	g := NewTheoryGrader(mock)

	res, err := g.Grade(context.Background(), "q", "a decent answer")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Mark != 1 {
		t.Errorf("mark = %v, want 1 via fallback extractor", res.Mark)
	}
}

func TestGradeEmptyAnswerSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewTheoryGrader(mock)

	res, err := g.Grade(context.Background(), "q", "")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.Mark != 0 {
		t.Errorf("mark = %v, want 0", res.Mark)
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestGradeProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := NewTheoryGrader(mock)

	if _, err := g.Grade(context.Background(), "q", "answer"); err == nil {
		t.Fatal("expected error when the provider is down")
	}
}

func TestExtractMark(t *testing.T) {
	tests := []struct {
		text string
		mark int
		ok   bool
	}{
		{"Mark: 1 and brief feedback", 1, true},
		{"Mark - 0. The answer misses the point.", 0, true},
		{"mark: 1", 0, false}, // case-sensitive, as graded prompts capitalize
		{"Mark 1", 1, true},
		{"Mark: 7 out of scale", 1, true}, // clamped
		{"no mark here", 0, false},
	}
	for _, tt := range tests {
		mark, ok := ExtractMark(tt.text)
		if ok != tt.ok || mark != tt.mark {
			t.Errorf("ExtractMark(%q) = (%d, %v), want (%d, %v)", tt.text, mark, ok, tt.mark, tt.ok)
		}
	}
}
