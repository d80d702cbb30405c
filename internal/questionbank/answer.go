package questionbank

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/grafiz/internal/analytics"
)

// CheckAnswer grades a learner's answer against a bank question.
// The second return value is false when the question cannot be
// auto-graded (reflection items), in which case correct is meaningless.
//
// Multiple choice expects a choice ID ("A".."D", case-insensitive);
// an unknown ID is simply wrong. Numeric answers are parsed as floats
// and compared within the question's tolerance.
func CheckAnswer(q *Question, answer string) (correct, evaluated bool) {
	answer = strings.TrimSpace(answer)

	switch q.Type {
	case analytics.TypeMultipleChoice:
		for _, c := range q.Choices {
			if strings.EqualFold(c.ID, answer) {
				return c.Correct, true
			}
		}
		return false, true

	case analytics.TypeNumeric:
		val, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return false, true
		}
		return math.Abs(val-q.NumericAnswer) <= q.Tolerance, true

	default:
		// Reflection and theory items are graded elsewhere or not at all.
		return false, false
	}
}
