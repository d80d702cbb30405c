package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/grafiz/internal/analytics"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	goodChoices := []string{"a", "b", "c", "d"}

	tests := []struct {
		name   string
		q      Generated
		wantOK bool
	}{
		{"valid mc", Generated{Text: "q", Type: analytics.TypeMultipleChoice, Choices: goodChoices, CorrectIndex: 3}, true},
		{"valid theory", Generated{Text: "q", Type: analytics.TypeTheory}, true},
		{"empty text", Generated{Type: analytics.TypeTheory}, false},
		{"text too long", Generated{Text: strings.Repeat("x", 501), Type: analytics.TypeTheory}, false},
		{"mc one choice", Generated{Text: "q", Type: analytics.TypeMultipleChoice, Choices: []string{"a"}}, false},
		{"mc index out of range", Generated{Text: "q", Type: analytics.TypeMultipleChoice, Choices: goodChoices, CorrectIndex: 4}, false},
		{"mc negative index", Generated{Text: "q", Type: analytics.TypeMultipleChoice, Choices: goodChoices, CorrectIndex: -1}, false},
		{"theory with choices", Generated{Text: "q", Type: analytics.TypeTheory, Choices: goodChoices}, false},
		{"numeric not generatable", Generated{Text: "q", Type: analytics.TypeNumeric}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.q, GenerateInput{})
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.wantOK)
			}
		})
	}
}

func TestConceptLanguageValidator(t *testing.T) {
	v := &ConceptLanguageValidator{}

	clean := Generated{Text: "What is message passing?", Choices: []string{"combining neighbor info"}}
	if err := v.Validate(&clean, GenerateInput{}); err != nil {
		t.Errorf("clean question rejected: %v", err)
	}

	leakyText := Generated{Text: "What does ObjEvaluateGraphAccuracy measure?"}
	if err := v.Validate(&leakyText, GenerateInput{}); err == nil {
		t.Error("expected rejection for identifier in text")
	}

	leakyChoice := Generated{Text: "Pick one", Choices: []string{"ObjTrainGCNModel", "a real answer"}}
	if err := v.Validate(&leakyChoice, GenerateInput{}); err == nil {
		t.Error("expected rejection for identifier in option")
	}
}
