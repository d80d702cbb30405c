package analytics

import (
	"testing"
	"time"
)

func TestBadgeForBoundaries(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Badge
	}{
		{1.00, BadgeMaster},
		{0.90, BadgeMaster}, // inclusive boundary
		{0.899, BadgeExpert},
		{0.75, BadgeExpert},
		{0.749, BadgeProficient},
		{0.60, BadgeProficient},
		{0.599, BadgeLearning},
		{0.40, BadgeLearning},
		{0.399, BadgeBeginner},
		{0.0, BadgeBeginner},
	}
	for _, tt := range tests {
		if got := BadgeFor(tt.accuracy); got != tt.want {
			t.Errorf("BadgeFor(%v) = %v, want %v", tt.accuracy, got, tt.want)
		}
	}
}

// Higher accuracy never yields a lower badge tier.
func TestBadgeMonotonic(t *testing.T) {
	rank := map[Badge]int{
		BadgeBeginner:   0,
		BadgeLearning:   1,
		BadgeProficient: 2,
		BadgeExpert:     3,
		BadgeMaster:     4,
	}
	prev := -1
	for acc := 0.0; acc <= 1.0; acc += 0.01 {
		r := rank[BadgeFor(acc)]
		if r < prev {
			t.Fatalf("badge tier dropped at accuracy %v", acc)
		}
		prev = r
	}
}

func conceptAttempt(concept string, mark float64, hints int) AttemptRecord {
	return AttemptRecord{
		QuestionText: "q",
		ConceptID:    concept,
		ObjectiveID:  "o1",
		Mark:         mark,
		Hints:        hints,
		Evaluated:    true,
		Timestamp:    time.Now(),
	}
}

func TestConceptMastery(t *testing.T) {
	log := []AttemptRecord{
		conceptAttempt("graph-rep", 1, 0),
		conceptAttempt("graph-rep", 1, 1),
		conceptAttempt("graph-rep", 0, 2),
		conceptAttempt("gcn-layers", 1, 0),
		{ConceptID: "pending", Evaluated: false, Timestamp: time.Now()},
	}

	m := ConceptMastery(log)
	if len(m) != 2 {
		t.Fatalf("got %d concepts, want 2", len(m))
	}

	gr := m["graph-rep"]
	if gr.Attempts != 3 || gr.Correct != 2 {
		t.Errorf("graph-rep = %+v, want 3 attempts, 2 correct", gr)
	}
	if !almostEqual(gr.Accuracy, 2.0/3.0) {
		t.Errorf("graph-rep accuracy = %v, want 2/3", gr.Accuracy)
	}
	if !almostEqual(gr.AvgHints, 1.0) {
		t.Errorf("graph-rep avg hints = %v, want 1", gr.AvgHints)
	}
	if gr.Badge != BadgeProficient {
		t.Errorf("graph-rep badge = %v, want Proficient", gr.Badge)
	}

	if m["gcn-layers"].Badge != BadgeMaster {
		t.Errorf("gcn-layers badge = %v, want Master", m["gcn-layers"].Badge)
	}

	if _, ok := m["pending"]; ok {
		t.Error("concept with only unevaluated attempts should not appear")
	}
}

func TestConceptMasteryEmpty(t *testing.T) {
	if m := ConceptMastery(nil); len(m) != 0 {
		t.Errorf("ConceptMastery(empty) = %v, want empty map", m)
	}
}

func TestConceptMasteryListOrdering(t *testing.T) {
	log := []AttemptRecord{
		conceptAttempt("low", 0, 0),
		conceptAttempt("high", 1, 0),
		conceptAttempt("mid", 1, 0),
		conceptAttempt("mid", 0, 0),
	}
	list := ConceptMasteryList(log)
	if len(list) != 3 {
		t.Fatalf("got %d entries, want 3", len(list))
	}
	if list[0].ConceptID != "high" || list[1].ConceptID != "mid" || list[2].ConceptID != "low" {
		t.Errorf("order = %s, %s, %s; want high, mid, low",
			list[0].ConceptID, list[1].ConceptID, list[2].ConceptID)
	}
}

func TestObjectiveAccuracy(t *testing.T) {
	log := []AttemptRecord{
		{ObjectiveID: "obj-a", Mark: 1, Evaluated: true},
		{ObjectiveID: "obj-a", Mark: 0, Evaluated: true},
		{ObjectiveID: "obj-b", Mark: 1, Evaluated: true},
		{ObjectiveID: "obj-b", Evaluated: false},
	}
	acc := ObjectiveAccuracy(log)
	if !almostEqual(acc["obj-a"], 0.5) {
		t.Errorf("obj-a = %v, want 0.5", acc["obj-a"])
	}
	if !almostEqual(acc["obj-b"], 1.0) {
		t.Errorf("obj-b = %v, want 1.0", acc["obj-b"])
	}
}

func TestAttemptsByConcept(t *testing.T) {
	log := []AttemptRecord{
		{ConceptID: "a", Evaluated: true},
		{ConceptID: "a", Evaluated: false}, // unevaluated still counts
		{ConceptID: "b", Evaluated: true},
	}
	counts := AttemptsByConcept(log)
	if counts["a"] != 2 || counts["b"] != 1 {
		t.Errorf("counts = %v, want a:2 b:1", counts)
	}
}
