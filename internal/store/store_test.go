package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/grafiz/internal/analytics"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:  1,
			Attempts: 12,
			Accuracy: 0.75,
			Badges:   map[string]string{"message-passing": "Expert"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Attempts != 12 {
		t.Errorf("data.attempts = %d, want 12", snap.Data.Attempts)
	}
	if snap.Data.Badges["message-passing"] != "Expert" {
		t.Errorf("badge = %q, want Expert", snap.Data.Badges["message-passing"])
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptHistoryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{
			SessionID:    "sess-1",
			QuestionID:   "q-aggregation-role",
			QuestionText: "What does the aggregation function do?",
			QuestionType: analytics.TypeMultipleChoice,
			ConceptID:    "message-passing",
			ObjectiveID:  "obj-implement-message-passing",
			Difficulty:   "easy",
			Mark:         1,
			Evaluated:    true,
		},
		{
			SessionID:    "sess-1",
			QuestionText: "Explain overfitting in your own words.",
			QuestionType: analytics.TypeReflection,
			ConceptID:    "training-workflow",
			ObjectiveID:  "obj-evaluate-graph-accuracy",
			HintsUsed:    2,
			Evaluated:    false,
		},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	log, err := repo.AttemptHistory(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(log) != 2 {
		t.Fatalf("history length = %d, want 2", len(log))
	}

	// Event order is preserved.
	if log[0].ConceptID != "message-passing" || log[1].ConceptID != "training-workflow" {
		t.Errorf("history out of order: %q, %q", log[0].ConceptID, log[1].ConceptID)
	}
	if !log[0].Correct() {
		t.Error("first attempt should be correct")
	}
	if log[1].Evaluated {
		t.Error("reflection attempt must stay unevaluated")
	}
	if log[1].Hints != 2 {
		t.Errorf("hints = %d, want 2", log[1].Hints)
	}

	// The replayed log feeds straight into the analytics engine.
	if acc := analytics.OverallAccuracy(log); acc != 1 {
		t.Errorf("accuracy = %v, want 1 (reflection excluded)", acc)
	}
}

func TestLLMEventQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "question-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true,
			RequestBody: "[user]\nGenerate a question", ResponseBody: `{"prompt":"..."}`},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "question-gen",
			InputTokens: 120, OutputTokens: 60, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "theory-grading",
			InputTokens: 40, OutputTokens: 10, LatencyMs: 400, Success: false,
			ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first, limited.
	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Purpose != "theory-grading" {
		t.Errorf("newest purpose = %q, want theory-grading", got[0].Purpose)
	}

	// Lookup by ID with request body intact.
	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	first := all[len(all)-1]
	e, err := repo.GetLLMEvent(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.RequestBody == "" {
		t.Fatal("expected stored request body")
	}

	// Missing ID returns nil, not an error.
	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	// Aggregation by purpose.
	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := map[string]PurposeUsage{}
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	qg := byPurpose["question-gen"]
	if qg.Calls != 2 || qg.InputTokens != 220 || qg.OutputTokens != 110 {
		t.Errorf("question-gen usage = %+v", qg)
	}
}

func TestResetPracticeKeepsLLMLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttempt(ctx, AttemptEventData{
		SessionID: "sess-1", QuestionText: "q", QuestionType: analytics.TypeNumeric,
		ConceptID: "basic-graph-representation", ObjectiveID: "obj-understand-graph-rep",
		Mark: 1, Evaluated: true,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	if err := s.ResetPractice(ctx); err != nil {
		t.Fatalf("reset practice: %v", err)
	}

	log, err := repo.AttemptHistory(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("attempts after reset = %d, want 0", len(log))
	}

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("llm query: %v", err)
	}
	if len(llmEvents) != 1 {
		t.Errorf("llm events after practice reset = %d, want 1", len(llmEvents))
	}

	// A full reset wipes the LLM log too and restarts the sequence.
	if err := s.ResetAll(ctx); err != nil {
		t.Fatalf("reset all: %v", err)
	}
	llmEvents, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("llm query: %v", err)
	}
	if len(llmEvents) != 0 {
		t.Errorf("llm events after full reset = %d, want 0", len(llmEvents))
	}
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next seq: %v", err)
	}
	if seq != 1 {
		t.Errorf("sequence after full reset = %d, want 1", seq)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the attempt events table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='attempt_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "attempt_events" {
		t.Errorf("table name = %q, want 'attempt_events'", name)
	}
}
