package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/llm"
)

func testInput(count int) GenerateInput {
	return GenerateInput{
		Topic:       "Graph Neural Networks",
		ObjectiveID: "obj-implement-message-passing",
		ConceptID:   "message-passing",
		Difficulty:  analytics.DifficultyMedium,
		Count:       count,
	}
}

func structuredBatch(t *testing.T, questions ...map[string]any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return b
}

func mcQuestion(text string) map[string]any {
	return map[string]any{
		"question_text": text,
		"question_type": "multiple_choice",
		"choices":       []string{"sums neighbor messages", "computes the loss", "normalizes features", "splits the dataset"},
		"correct_index": 0,
	}
}

func theoryQuestion(text string) map[string]any {
	return map[string]any{
		"question_text": text,
		"question_type": "theory",
		"choices":       []string{},
		"correct_index": 0,
	}
}

func TestGenerateStructuredBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: structuredBatch(t,
			mcQuestion("What does aggregation compute?"),
			theoryQuestion("Explain oversmoothing."),
		),
	})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), testInput(2))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Type != analytics.TypeMultipleChoice || qs[1].Type != analytics.TypeTheory {
		t.Errorf("types = %q, %q", qs[0].Type, qs[1].Type)
	}
	for _, q := range qs {
		if q.ConceptID != "message-passing" || q.ObjectiveID != "obj-implement-message-passing" {
			t.Errorf("question not stamped with graph linkage: %+v", q)
		}
		if q.Difficulty != analytics.DifficultyMedium {
			t.Errorf("difficulty = %q, want Medium", q.Difficulty)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerateFallsBackToTextParser(t *testing.T) {
	plainText, _ := json.Marshal(
		"1. What is a node embedding?\nOptions:\nA a learned vector per node\nB a file format\nC a loss function\nD a GPU kernel\nCorrect Index: 0",
	)
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: plainText},
	})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), testInput(1))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Text != "What is a node embedding?" {
		t.Errorf("text = %q", qs[0].Text)
	}
	if len(qs[0].Choices) != 4 {
		t.Errorf("choices = %v", qs[0].Choices)
	}
}

func TestGenerateTopsUpDroppedQuestions(t *testing.T) {
	// First round: one good question and one with an out-of-range index.
	// Second round should top up the dropped slot.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structuredBatch(t,
			mcQuestion("What does aggregation compute?"),
			map[string]any{
				"question_text": "Broken question",
				"question_type": "multiple_choice",
				"choices":       []string{"a", "b"},
				"correct_index": 9,
			},
		)},
		llm.MockResponse{Content: structuredBatch(t,
			theoryQuestion("Explain the GCN forward pass."),
		)},
	)
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), testInput(2))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}

	// The top-up prompt must list the accepted question for dedup.
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "What does aggregation compute?") {
		t.Errorf("top-up prompt missing dedup entry:\n%s", second)
	}
}

func TestGenerateReturnsPartialBatchOnLaterFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: structuredBatch(t, mcQuestion("What does aggregation compute?"))},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), testInput(3))
	if err != nil {
		t.Fatalf("expected partial batch, got error: %v", err)
	}
	if len(qs) != 1 {
		t.Errorf("got %d questions, want 1", len(qs))
	}
}

func TestGenerateFailsWhenNothingUsable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRounds = 1
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: structuredBatch(t, map[string]any{
			"question_text": "What does ObjTrainGCNModel do?",
			"question_type": "theory",
			"choices":       []string{},
			"correct_index": 0,
		}),
	})
	gen := New(mock, cfg)

	if _, err := gen.Generate(context.Background(), testInput(1)); err == nil {
		t.Fatal("expected error when every question is rejected")
	}
}
