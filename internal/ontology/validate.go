package ontology

import (
	"fmt"
	"strings"
)

// validateGraph performs all structural checks on the knowledge base.
// Returns a combined error describing all problems found, or nil if valid.
func validateGraph(gr *graph) error {
	var errs []string

	ids := make(map[string]bool)
	register := func(id, kind string) {
		if id == "" {
			errs = append(errs, fmt.Sprintf("%s with empty ID", kind))
			return
		}
		if ids[id] {
			errs = append(errs, fmt.Sprintf("duplicate ID: %q", id))
		}
		ids[id] = true
	}

	for _, o := range gr.objectives {
		register(o.ID, "objective")
	}
	for _, c := range gr.concepts {
		register(c.ID, "concept")
	}
	for _, d := range gr.datasets {
		register(d.ID, "dataset")
	}
	for _, gi := range gr.graphs {
		register(gi.ID, "graph instance")
	}
	for _, t := range gr.tasks {
		register(t.ID, "task")
	}
	for _, a := range gr.assessments {
		register(a.ID, "assessment")
	}

	// Referential integrity: tasks.
	for _, t := range gr.tasks {
		if _, ok := gr.objectiveByID[t.ObjectiveID]; !ok {
			errs = append(errs, fmt.Sprintf("task %q targets nonexistent objective %q", t.ID, t.ObjectiveID))
		}
		for _, cid := range t.ConceptIDs {
			if _, ok := gr.conceptByID[cid]; !ok {
				errs = append(errs, fmt.Sprintf("task %q teaches nonexistent concept %q", t.ID, cid))
			}
		}
		for _, did := range t.DatasetIDs {
			if _, ok := gr.datasetByID[did]; !ok {
				errs = append(errs, fmt.Sprintf("task %q uses nonexistent dataset %q", t.ID, did))
			}
		}
		for _, gid := range t.GraphIDs {
			if _, ok := gr.graphByID[gid]; !ok {
				errs = append(errs, fmt.Sprintf("task %q produces nonexistent graph %q", t.ID, gid))
			}
		}
	}

	// Referential integrity: assessments.
	for _, a := range gr.assessments {
		if _, ok := gr.objectiveByID[a.ObjectiveID]; !ok {
			errs = append(errs, fmt.Sprintf("assessment %q assesses nonexistent objective %q", a.ID, a.ObjectiveID))
		}
		for _, cid := range a.RequiredConceptIDs {
			if _, ok := gr.conceptByID[cid]; !ok {
				errs = append(errs, fmt.Sprintf("assessment %q requires nonexistent concept %q", a.ID, cid))
			}
		}
		if a.MaxScore > 0 && a.PassingScore > a.MaxScore {
			errs = append(errs, fmt.Sprintf("assessment %q passing score exceeds max score", a.ID))
		}
	}

	// Every objective should have at least one task.
	for _, o := range gr.objectives {
		if len(gr.tasksByObj[o.ID]) == 0 {
			errs = append(errs, fmt.Sprintf("objective %q has no tasks", o.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("ontology validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
