package store

import (
	"context"
	"fmt"

	"github.com/abhisek/grafiz/ent"
	"github.com/abhisek/grafiz/ent/attemptevent"
	"github.com/abhisek/grafiz/internal/analytics"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionText(data.QuestionText).
		SetQuestionType(string(data.QuestionType)).
		SetConceptID(data.ConceptID).
		SetObjectiveID(data.ObjectiveID).
		SetDifficulty(data.Difficulty).
		SetLearnerAnswer(data.LearnerAnswer).
		SetMark(data.Mark).
		SetHintsUsed(data.HintsUsed).
		SetEvaluated(data.Evaluated).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

// AttemptHistory replays every attempt event in sequence order and maps
// it to the analytics record type. The analytics package stays pure; all
// persistence knowledge lives here.
func (r *eventRepo) AttemptHistory(ctx context.Context) ([]analytics.AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt history: %w", err)
	}

	log := make([]analytics.AttemptRecord, len(events))
	for i, e := range events {
		log[i] = analytics.AttemptRecord{
			QuestionText: e.QuestionText,
			Type:         analytics.QuestionType(e.QuestionType),
			ConceptID:    e.ConceptID,
			ObjectiveID:  e.ObjectiveID,
			Mark:         e.Mark,
			Hints:        e.HintsUsed,
			Timestamp:    e.Timestamp,
			Evaluated:    e.Evaluated,
		}
	}
	return log, nil
}
