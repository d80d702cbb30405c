package session

import (
	"time"

	"github.com/abhisek/grafiz/internal/analytics"
)

// Phase represents the current phase of a practice session.
type Phase int

const (
	PhaseSetup    Phase = iota // Choosing objective, difficulty, count
	PhaseLoading               // Waiting for the generator
	PhaseActive                // Serving questions
	PhaseFeedback              // Showing the outcome of an answer
	PhaseSummary               // Session complete, showing results
)

// State tracks the runtime state of an active practice session.
type State struct {
	// SessionID is the UUID grouping this session's events.
	SessionID string

	// ObjectiveID and Topic identify what is being practiced.
	ObjectiveID string
	Topic       string

	// Difficulty is the level this session runs at.
	Difficulty analytics.Difficulty

	// Queue is the ordered question list for this session.
	Queue []Item

	// Index is the position of the current question in Queue.
	Index int

	// Phase is the current session phase.
	Phase Phase

	// Log collects the attempts made in this session, in order. It is
	// the session-local slice of the same records the store persists.
	Log []analytics.AttemptRecord

	// TotalCorrect counts evaluated attempts with full marks.
	TotalCorrect int

	// TheoryMarks sums the marks earned on theory questions.
	TheoryMarks float64

	// HintLevel is how many hints were shown for the current question.
	HintLevel int

	// LastOutcome holds the feedback for the most recent answer.
	LastOutcome *Outcome

	// StartTime is when the session began; QuestionStartTime is when
	// the current question was first displayed.
	StartTime         time.Time
	QuestionStartTime time.Time
}

// Outcome is the graded result of one submitted answer.
type Outcome struct {
	Correct   bool
	Evaluated bool
	Mark      float64

	// CorrectChoice is the right option index for multiple choice,
	// shown in feedback. -1 otherwise.
	CorrectChoice int

	// Feedback is learner-facing text: grading feedback for theory,
	// an acknowledgment for reflections.
	Feedback string
}

// NewState creates a session over the given question queue.
func NewState(sessionID, objectiveID, topic string, difficulty analytics.Difficulty, queue []Item) *State {
	now := time.Now()
	return &State{
		SessionID:         sessionID,
		ObjectiveID:       objectiveID,
		Topic:             topic,
		Difficulty:        difficulty,
		Queue:             queue,
		Phase:             PhaseActive,
		StartTime:         now,
		QuestionStartTime: now,
	}
}

// Current returns the active question, or nil when the queue is done.
func (s *State) Current() *Item {
	if s.Index < 0 || s.Index >= len(s.Queue) {
		return nil
	}
	return &s.Queue[s.Index]
}

// Advance moves to the next question, or to the summary phase when the
// queue is exhausted.
func (s *State) Advance() {
	s.Index++
	s.HintLevel = 0
	s.LastOutcome = nil
	s.QuestionStartTime = time.Now()
	if s.Index >= len(s.Queue) {
		s.Phase = PhaseSummary
	} else {
		s.Phase = PhaseActive
	}
}

// Reset restarts the queue from the top. The persisted attempt history
// is untouched; only in-session progress is cleared.
func (s *State) Reset() {
	s.Index = 0
	s.Log = nil
	s.TotalCorrect = 0
	s.TheoryMarks = 0
	s.HintLevel = 0
	s.LastOutcome = nil
	s.Phase = PhaseActive
	s.StartTime = time.Now()
	s.QuestionStartTime = s.StartTime
}

// Done reports whether every queued question has been answered.
func (s *State) Done() bool {
	return s.Index >= len(s.Queue)
}
