package ontology

import "testing"

func TestSeedValidates(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seeded ontology invalid: %v", err)
	}
}

func TestObjectivesSeeded(t *testing.T) {
	objs := Objectives()
	if len(objs) == 0 {
		t.Fatal("no objectives seeded")
	}
	for _, o := range objs {
		if o.Name == "" || o.Level == "" {
			t.Errorf("objective %q missing name or level", o.ID)
		}
	}
}

func TestGetObjective(t *testing.T) {
	o, err := GetObjective("obj-understand-graph-rep")
	if err != nil {
		t.Fatalf("GetObjective: %v", err)
	}
	if o.Name != "Understand Graph Representation" {
		t.Errorf("got name %q", o.Name)
	}

	if _, err := GetObjective("nope"); err == nil {
		t.Error("expected error for unknown objective")
	}
}

func TestTasksForObjective(t *testing.T) {
	tasks := TasksForObjective("obj-understand-graph-rep")
	if len(tasks) == 0 {
		t.Fatal("expected tasks for graph representation objective")
	}
	for _, task := range tasks {
		if task.ObjectiveID != "obj-understand-graph-rep" {
			t.Errorf("task %q targets %q", task.ID, task.ObjectiveID)
		}
	}

	if got := TasksForObjective("nope"); len(got) != 0 {
		t.Errorf("unknown objective returned %d tasks", len(got))
	}
}

func TestAssessmentsForObjective(t *testing.T) {
	as := AssessmentsForObjective("obj-train-gcn-model")
	if len(as) != 1 {
		t.Fatalf("got %d assessments, want 1", len(as))
	}
	if as[0].PassingScore > as[0].MaxScore {
		t.Error("passing score exceeds max score")
	}
}

func TestDescribeConcept(t *testing.T) {
	c := DescribeConcept("message-passing")
	if c.Kind != KindGNNConcept || c.Name != "Message Passing" {
		t.Errorf("concept = %+v", c)
	}
	if c.Details["description"] == "" {
		t.Error("concept description missing")
	}

	d := DescribeConcept("ds-cora")
	if d.Kind != KindGraphDataset {
		t.Errorf("dataset kind = %v", d.Kind)
	}
	if d.Details["numNodeFeatures"] != "1433" {
		t.Errorf("cora features = %q", d.Details["numNodeFeatures"])
	}

	gi := DescribeConcept("graph-chain-5")
	if gi.Kind != KindGraphInstance || gi.Details["numEdges"] != "4" {
		t.Errorf("graph instance = %+v", gi)
	}

	unknown := DescribeConcept("missing-id")
	if unknown.Kind != "Unknown" || unknown.Name != "missing-id" {
		t.Errorf("unknown = %+v", unknown)
	}
}

func TestValidateCatchesDanglingRefs(t *testing.T) {
	bad := buildGraph(
		[]Objective{{ID: "o1", Name: "O"}},
		[]Task{{ID: "t1", Name: "T", ObjectiveID: "o-missing", ConceptIDs: []string{"c-missing"}}},
		nil, nil, nil,
		[]Assessment{{ID: "a1", ObjectiveID: "o1", RequiredConceptIDs: []string{"c-missing"}}},
	)
	if err := validateGraph(bad); err == nil {
		t.Fatal("expected validation error for dangling references")
	}
}

func TestValidateCatchesDuplicateIDs(t *testing.T) {
	bad := buildGraph(
		[]Objective{{ID: "dup", Name: "A"}, {ID: "dup", Name: "B"}},
		[]Task{{ID: "t1", ObjectiveID: "dup"}},
		nil, nil, nil, nil,
	)
	if err := validateGraph(bad); err == nil {
		t.Fatal("expected validation error for duplicate IDs")
	}
}
