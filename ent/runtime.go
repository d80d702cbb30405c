// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/grafiz/ent/attemptevent"
	"github.com/abhisek/grafiz/ent/hintevent"
	"github.com/abhisek/grafiz/ent/llmrequestevent"
	"github.com/abhisek/grafiz/ent/schema"
	"github.com/abhisek/grafiz/ent/sessionevent"
	"github.com/abhisek/grafiz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.DefaultQuestionID holds the default value on creation for the question_id field.
	attemptevent.DefaultQuestionID = attempteventDescQuestionID.Default.(string)
	// attempteventDescQuestionText is the schema descriptor for question_text field.
	attempteventDescQuestionText := attempteventFields[2].Descriptor()
	// attemptevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	attemptevent.QuestionTextValidator = attempteventDescQuestionText.Validators[0].(func(string) error)
	// attempteventDescQuestionType is the schema descriptor for question_type field.
	attempteventDescQuestionType := attempteventFields[3].Descriptor()
	// attemptevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	attemptevent.QuestionTypeValidator = attempteventDescQuestionType.Validators[0].(func(string) error)
	// attempteventDescConceptID is the schema descriptor for concept_id field.
	attempteventDescConceptID := attempteventFields[4].Descriptor()
	// attemptevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	attemptevent.ConceptIDValidator = attempteventDescConceptID.Validators[0].(func(string) error)
	// attempteventDescObjectiveID is the schema descriptor for objective_id field.
	attempteventDescObjectiveID := attempteventFields[5].Descriptor()
	// attemptevent.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	attemptevent.ObjectiveIDValidator = attempteventDescObjectiveID.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[6].Descriptor()
	// attemptevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	attemptevent.DefaultDifficulty = attempteventDescDifficulty.Default.(string)
	// attempteventDescLearnerAnswer is the schema descriptor for learner_answer field.
	attempteventDescLearnerAnswer := attempteventFields[7].Descriptor()
	// attemptevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	attemptevent.DefaultLearnerAnswer = attempteventDescLearnerAnswer.Default.(string)
	// attempteventDescMark is the schema descriptor for mark field.
	attempteventDescMark := attempteventFields[8].Descriptor()
	// attemptevent.DefaultMark holds the default value on creation for the mark field.
	attemptevent.DefaultMark = attempteventDescMark.Default.(float64)
	// attempteventDescHintsUsed is the schema descriptor for hints_used field.
	attempteventDescHintsUsed := attempteventFields[9].Descriptor()
	// attemptevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attemptevent.DefaultHintsUsed = attempteventDescHintsUsed.Default.(int)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[11].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescQuestionID is the schema descriptor for question_id field.
	hinteventDescQuestionID := hinteventFields[1].Descriptor()
	// hintevent.DefaultQuestionID holds the default value on creation for the question_id field.
	hintevent.DefaultQuestionID = hinteventDescQuestionID.Default.(string)
	// hinteventDescConceptID is the schema descriptor for concept_id field.
	hinteventDescConceptID := hinteventFields[2].Descriptor()
	// hintevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	hintevent.ConceptIDValidator = hinteventDescConceptID.Validators[0].(func(string) error)
	// hinteventDescLevel is the schema descriptor for level field.
	hinteventDescLevel := hinteventFields[3].Descriptor()
	// hintevent.DefaultLevel holds the default value on creation for the level field.
	hintevent.DefaultLevel = hinteventDescLevel.Default.(int)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[4].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescObjectiveID is the schema descriptor for objective_id field.
	sessioneventDescObjectiveID := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultObjectiveID holds the default value on creation for the objective_id field.
	sessionevent.DefaultObjectiveID = sessioneventDescObjectiveID.Default.(string)
	// sessioneventDescDifficulty is the schema descriptor for difficulty field.
	sessioneventDescDifficulty := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	sessionevent.DefaultDifficulty = sessioneventDescDifficulty.Default.(string)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
