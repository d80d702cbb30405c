package questiongen

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/ontology"
)

// Fallback parser for providers that ignore the structured output schema
// and return a numbered plain-text list instead. The expected shape is:
//
//	1. What does message passing do?
//	Options:
//	A combines neighbor information
//	B trains the model
//	Correct Index: 0
//
//	2. Explain oversmoothing in deep GCNs.
//
// Blocks without an "Options:" section become theory questions.
var (
	blockSplitRe   = regexp.MustCompile(`\n\s*\d+\.\s+`)
	mcBlockRe      = regexp.MustCompile(`(?s)^(.*)Options:(.*)Correct Index:\s*(\d+)`)
	correctLineRe  = regexp.MustCompile(`(?is)\ncorrect[:\-].*`)
	correctLabelRe = regexp.MustCompile(`(?i)correct[:\-].*`)
)

// ParseText extracts questions from a numbered plain-text response.
// Blocks that leak raw graph identifiers are dropped entirely; a
// question mentioning ObjTrainGCNModel is useless to a learner.
func ParseText(text string) []Generated {
	var out []Generated

	for _, block := range blockSplitRe.Split("\n"+text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if ontology.ContainsTechnicalName(block) {
			continue
		}

		if strings.Contains(block, "Options:") {
			if q, ok := parseMultipleChoice(block); ok {
				out = append(out, q)
			}
			continue
		}

		// Theory question. Strip any trailing "Correct: ..." answer the
		// model slipped in despite instructions.
		clean := strings.TrimSpace(correctLineRe.ReplaceAllString(block, ""))
		if clean != "" {
			out = append(out, Generated{
				Text: clean,
				Type: analytics.TypeTheory,
			})
		}
	}

	return out
}

func parseMultipleChoice(block string) (Generated, bool) {
	m := mcBlockRe.FindStringSubmatch(block)
	if m == nil {
		return Generated{}, false
	}

	text := strings.TrimSpace(m[1])
	text = strings.TrimSpace(correctLineRe.ReplaceAllString(text, ""))

	var choices []string
	for _, line := range strings.Split(m[2], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(correctLabelRe.ReplaceAllString(line, ""))
		if line != "" {
			choices = append(choices, line)
		}
	}

	idx, err := strconv.Atoi(strings.TrimSpace(m[3]))
	if err != nil || text == "" || len(choices) == 0 {
		return Generated{}, false
	}

	return Generated{
		Text:         text,
		Type:         analytics.TypeMultipleChoice,
		Choices:      choices,
		CorrectIndex: idx,
	}, true
}
