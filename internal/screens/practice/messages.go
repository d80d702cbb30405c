package practice

import (
	"time"

	"github.com/abhisek/grafiz/internal/session"
)

// queueReadyMsg is sent when the question queue has been assembled.
type queueReadyMsg struct {
	State *session.State
	// FromBank is true when generation failed and built-in questions
	// were served instead.
	FromBank bool
	Err      error
}

// gradedMsg is sent when an answer has been graded. Theory grading
// goes through the LLM, so submission is always asynchronous.
type gradedMsg struct {
	Outcome *session.Outcome
	Err     error
}

// hintMsg carries a revealed hint.
type hintMsg struct {
	Text string
}

// summaryMsg is sent when the session end bookkeeping is done.
type summaryMsg struct {
	Summary *session.Summary
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time

// suggestionMsg carries the difficulty suggestion for the setup menu.
type suggestionMsg struct {
	Difficulty string
	Evaluated  int
}
