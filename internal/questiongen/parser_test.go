package questiongen

import (
	"testing"

	"github.com/abhisek/grafiz/internal/analytics"
)

func TestParseTextMixedBatch(t *testing.T) {
	text := `1. What does the aggregation step of message passing compute?
Options:
A sum or mean of neighbor messages
B the training loss
C the graph diameter
D an image embedding
Correct Index: 0

2. Explain why stacking many GCN layers can cause oversmoothing.

3. Which dataset is a citation network?
Options:
A MUTAG
B Cora
Correct Index: 1`

	qs := ParseText(text)
	if len(qs) != 3 {
		t.Fatalf("parsed %d questions, want 3", len(qs))
	}

	if qs[0].Type != analytics.TypeMultipleChoice {
		t.Errorf("q0 type = %q, want multiple choice", qs[0].Type)
	}
	if len(qs[0].Choices) != 4 || qs[0].CorrectIndex != 0 {
		t.Errorf("q0 choices = %v, index = %d", qs[0].Choices, qs[0].CorrectIndex)
	}

	if qs[1].Type != analytics.TypeTheory {
		t.Errorf("q1 type = %q, want theory", qs[1].Type)
	}
	if qs[1].Text != "Explain why stacking many GCN layers can cause oversmoothing." {
		t.Errorf("q1 text = %q", qs[1].Text)
	}

	if qs[2].CorrectIndex != 1 {
		t.Errorf("q2 index = %d, want 1", qs[2].CorrectIndex)
	}
}

func TestParseTextStripsCorrectLabels(t *testing.T) {
	text := `1. Which layer type operates on graphs?
Correct: the GCN layer
Options:
A GCN layer Correct: yes
B Dense layer
Correct Index: 0`

	qs := ParseText(text)
	if len(qs) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(qs))
	}
	q := qs[0]
	if q.Text != "Which layer type operates on graphs?" {
		t.Errorf("answer leaked into question text: %q", q.Text)
	}
	if q.Choices[0] != "A GCN layer" {
		t.Errorf("answer leaked into option: %q", q.Choices[0])
	}
}

func TestParseTextStripsCorrectFromTheory(t *testing.T) {
	text := `1. Describe the role of the adjacency matrix in a GCN forward pass.
Correct: it defines which neighbors are averaged`

	qs := ParseText(text)
	if len(qs) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(qs))
	}
	if qs[0].Text != "Describe the role of the adjacency matrix in a GCN forward pass." {
		t.Errorf("text = %q", qs[0].Text)
	}
}

func TestParseTextDropsTechnicalIdentifiers(t *testing.T) {
	text := `1. What does ObjTrainGCNModel require as input?

2. What is a node embedding?`

	qs := ParseText(text)
	if len(qs) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(qs))
	}
	if qs[0].Text != "What is a node embedding?" {
		t.Errorf("kept wrong question: %q", qs[0].Text)
	}
}

func TestParseTextMalformedBlocks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty input", "", 0},
		{"whitespace only", "   \n\n  ", 0},
		{"options without index", "1. Pick one\nOptions:\nA x\nB y", 0},
		{"unnumbered text is one theory block", "Just some text without numbering", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ParseText(tt.text)); got != tt.want {
				t.Errorf("ParseText(%q) = %d questions, want %d", tt.text, got, tt.want)
			}
		})
	}
}
