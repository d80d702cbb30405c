package store

import (
	"context"
	"time"

	"github.com/abhisek/grafiz/internal/analytics"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures a summary of learner progress at a point in time,
// so the overview tab can render without replaying the whole attempt log.
type SnapshotData struct {
	Version   int               `json:"version"`
	Attempts  int               `json:"attempts"`
	Accuracy  float64           `json:"accuracy"`
	Streak    int               `json:"streak"`
	StudyDays int               `json:"study_days"`
	Badges    map[string]string `json:"badges,omitempty"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures a single question attempt.
type AttemptEventData struct {
	SessionID     string
	QuestionID    string
	QuestionText  string
	QuestionType  analytics.QuestionType
	ConceptID     string
	ObjectiveID   string
	Difficulty    string
	LearnerAnswer string
	Mark          float64
	HintsUsed     int
	Evaluated     bool
	TimeMs        int
}

// HintEventData captures one hint shown to the learner.
type HintEventData struct {
	SessionID  string
	QuestionID string
	ConceptID  string
	Level      int
	HintText   string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	ObjectiveID     string
	Difficulty      string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a question attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendHint records that a hint was shown.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AttemptHistory replays the attempt log in event order.
	AttemptHistory(ctx context.Context) ([]analytics.AttemptRecord, error)

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
