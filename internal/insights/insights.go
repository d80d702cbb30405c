package insights

import (
	"fmt"

	"github.com/abhisek/grafiz/internal/analytics"
)

// Rule-based insight text mirroring what a human coach would say about
// the numbers. These never require an LLM and always produce something,
// so the insights tab works offline.

// Accuracy cut points, in percent.
const (
	excellentAccuracy = 80
	goodAccuracy      = 60
)

// Hint usage cut points, average hints per attempt.
const (
	efficientHints = 0.5
	balancedHints  = 2
)

// typeStrongAccuracy is the per-type percent above which a question
// type counts as a strength.
const typeStrongAccuracy = 75

// Insight is one piece of advice for the learner.
type Insight struct {
	Title string
	Body  string
}

// Build derives rule-based insights from the attempt log. Returns nil
// when there are no evaluated attempts to reason about.
func Build(log []analytics.AttemptRecord) []Insight {
	report := analytics.BuildReport(log)
	if report.EvaluatedAttempts == 0 {
		return nil
	}

	out := []Insight{
		accuracyInsight(report.OverallAccuracy * 100),
		hintInsight(report.AverageHints),
	}
	out = append(out, typeInsights(log)...)
	return out
}

func accuracyInsight(pct float64) Insight {
	switch {
	case pct >= excellentAccuracy:
		return Insight{
			Title: "Excellent Performance!",
			Body:  fmt.Sprintf("Your %.1f%% accuracy shows strong mastery of the material.", pct),
		}
	case pct >= goodAccuracy:
		return Insight{
			Title: "Good Progress!",
			Body:  fmt.Sprintf("You're at %.1f%% accuracy. Keep practicing to reach 80%%+ mastery.", pct),
		}
	default:
		return Insight{
			Title: "Keep Going!",
			Body:  fmt.Sprintf("You're at %.1f%% accuracy. Review weak concepts and practice more.", pct),
		}
	}
}

func hintInsight(avg float64) Insight {
	switch {
	case avg < efficientHints:
		return Insight{
			Title: "Efficient Learner",
			Body:  "You rarely need hints. Great self-assessment skills!",
		}
	case avg < balancedHints:
		return Insight{
			Title: "Balanced Approach",
			Body:  "You use hints strategically to support your learning.",
		}
	default:
		return Insight{
			Title: "Hint-Dependent Learning",
			Body:  "Consider attempting questions without hints first to build confidence.",
		}
	}
}

func typeInsights(log []analytics.AttemptRecord) []Insight {
	var out []Insight

	if acc, count := analytics.TypeAccuracy(log, analytics.TypeMultipleChoice); count > 0 {
		pct := acc * 100
		body := fmt.Sprintf("%.1f%%. Needs work. Try to eliminate distractors more carefully.", pct)
		if pct > typeStrongAccuracy {
			body = fmt.Sprintf("%.1f%%. Strong!", pct)
		}
		out = append(out, Insight{Title: "Multiple Choice", Body: body})
	}

	if acc, count := analytics.TypeAccuracy(log, analytics.TypeNumeric); count > 0 {
		pct := acc * 100
		body := fmt.Sprintf("%.1f%%. Practice calculation accuracy.", pct)
		if pct > typeStrongAccuracy {
			body = fmt.Sprintf("%.1f%%. Excellent computational skills!", pct)
		}
		out = append(out, Insight{Title: "Numeric", Body: body})
	}

	for _, r := range log {
		if r.Type == analytics.TypeReflection {
			out = append(out, Insight{
				Title: "Reflection",
				Body:  "Think deeply about the conceptual understanding behind each topic.",
			})
			break
		}
	}

	return out
}
