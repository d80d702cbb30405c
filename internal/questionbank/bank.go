package questionbank

// bank is the package-level question list, set by init() in seed.go.
// Order is stable and defines the rotation sequence.
var bank []Question

// All returns every bank question in seed order.
func All() []Question {
	return append([]Question(nil), bank...)
}

// Get returns the question with the given ID, or nil if unknown.
func Get(id string) *Question {
	for i := range bank {
		if bank[i].ID == id {
			return &bank[i]
		}
	}
	return nil
}

// ForObjective returns the questions linked to an objective, in seed order.
func ForObjective(objectiveID string) []Question {
	var out []Question
	for _, q := range bank {
		if q.ObjectiveID == objectiveID {
			out = append(out, q)
		}
	}
	return out
}

// Next returns the ID of the question to serve after currentID within an
// objective, wrapping around at the end. When currentID is empty or not
// part of the objective, the first question is returned. Returns ""
// when the objective has no questions.
func Next(objectiveID, currentID string) string {
	qs := ForObjective(objectiveID)
	if len(qs) == 0 {
		return ""
	}
	for i, q := range qs {
		if q.ID == currentID {
			return qs[(i+1)%len(qs)].ID
		}
	}
	return qs[0].ID
}
