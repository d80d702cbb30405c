package analytics

import "sort"

// Badge classifies per-concept accuracy into a mastery tier.
type Badge string

const (
	BadgeMaster     Badge = "Master"
	BadgeExpert     Badge = "Expert"
	BadgeProficient Badge = "Proficient"
	BadgeLearning   Badge = "Learning"
	BadgeBeginner   Badge = "Beginner"
)

// Badge accuracy cut points. Each bound is inclusive, so 0.75 exactly
// earns Expert, 0.90 exactly earns Master, and so on down the ladder.
const (
	MasterThreshold     = 0.90
	ExpertThreshold     = 0.75
	ProficientThreshold = 0.60
	LearningThreshold   = 0.40
)

// BadgeFor returns the badge tier for an accuracy in [0,1].
func BadgeFor(accuracy float64) Badge {
	switch {
	case accuracy >= MasterThreshold:
		return BadgeMaster
	case accuracy >= ExpertThreshold:
		return BadgeExpert
	case accuracy >= ProficientThreshold:
		return BadgeProficient
	case accuracy >= LearningThreshold:
		return BadgeLearning
	default:
		return BadgeBeginner
	}
}

// Icon returns the display icon for a badge tier.
func (b Badge) Icon() string {
	switch b {
	case BadgeMaster:
		return "🏆"
	case BadgeExpert:
		return "⭐"
	case BadgeProficient:
		return "👍"
	case BadgeLearning:
		return "📚"
	default:
		return "🌱"
	}
}

// ConceptStats aggregates performance for a single concept.
type ConceptStats struct {
	ConceptID string
	Attempts  int     // evaluated attempts on this concept
	Correct   int     // full-mark attempts
	Accuracy  float64 // mark-weighted accuracy over evaluated attempts
	AvgHints  float64 // mean hints per evaluated attempt
	Badge     Badge
}

// ConceptMastery computes per-concept accuracy, attempt counts and badge
// tiers over the evaluated attempts in the log. Concepts with no
// evaluated attempts do not appear in the result.
func ConceptMastery(log []AttemptRecord) map[string]ConceptStats {
	result := make(map[string]ConceptStats)
	marks := make(map[string]float64)
	hints := make(map[string]int)

	for _, r := range log {
		if !r.Evaluated {
			continue
		}
		cs := result[r.ConceptID]
		cs.ConceptID = r.ConceptID
		cs.Attempts++
		if r.Correct() {
			cs.Correct++
		}
		marks[r.ConceptID] += r.Mark
		hints[r.ConceptID] += r.Hints
		result[r.ConceptID] = cs
	}

	for id, cs := range result {
		cs.Accuracy = marks[id] / float64(cs.Attempts)
		cs.AvgHints = float64(hints[id]) / float64(cs.Attempts)
		cs.Badge = BadgeFor(cs.Accuracy)
		result[id] = cs
	}
	return result
}

// ConceptMasteryList returns ConceptMastery sorted by accuracy
// descending, then concept ID for determinism.
func ConceptMasteryList(log []AttemptRecord) []ConceptStats {
	byID := ConceptMastery(log)
	list := make([]ConceptStats, 0, len(byID))
	for _, cs := range byID {
		list = append(list, cs)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Accuracy != list[j].Accuracy {
			return list[i].Accuracy > list[j].Accuracy
		}
		return list[i].ConceptID < list[j].ConceptID
	})
	return list
}

// ObjectiveAccuracy returns mark-weighted accuracy per objective over
// evaluated attempts.
func ObjectiveAccuracy(log []AttemptRecord) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range log {
		if !r.Evaluated {
			continue
		}
		sums[r.ObjectiveID] += r.Mark
		counts[r.ObjectiveID]++
	}
	result := make(map[string]float64, len(sums))
	for id, sum := range sums {
		result[id] = sum / float64(counts[id])
	}
	return result
}

// AttemptsByConcept counts all attempts per concept, evaluated or not.
func AttemptsByConcept(log []AttemptRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range log {
		counts[r.ConceptID]++
	}
	return counts
}
