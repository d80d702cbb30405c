package ontology

import "regexp"

// technicalName matches internal identifier-style names that leak from
// the knowledge base, e.g. "ObjTrainGCNModel".
var technicalName = regexp.MustCompile(`\bObj[A-Z][a-zA-Z0-9]+\b`)

// CleanName replaces identifier-style objective names with a
// learner-facing topic. Question prompts and AI topics must never show
// raw knowledge-base identifiers.
func CleanName(name string) string {
	if technicalName.MatchString(name) {
		return "Graph Neural Networks"
	}
	return name
}

// ContainsTechnicalName reports whether text leaks an identifier-style
// name. Used to filter AI-generated questions.
func ContainsTechnicalName(text string) bool {
	return technicalName.MatchString(text)
}
