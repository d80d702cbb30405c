package ontology

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ObjTrainGCNModel", "Graph Neural Networks"},
		{"Practice ObjEvaluateGraphAccuracy now", "Graph Neural Networks"},
		{"Understand Graph Representation", "Understand Graph Representation"},
		{"Object detection", "Object detection"}, // lowercase after Obj, not an identifier
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanName(tt.in); got != tt.want {
			t.Errorf("CleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsTechnicalName(t *testing.T) {
	if !ContainsTechnicalName("What does ObjTrainGCNModel mean?") {
		t.Error("expected identifier leak to be detected")
	}
	if ContainsTechnicalName("What does message passing mean?") {
		t.Error("clean text flagged as leak")
	}
}
