package ontology

import (
	"fmt"
	"sort"
	"strconv"
)

// graph holds the seeded knowledge base with precomputed indices.
type graph struct {
	objectives  []Objective
	tasks       []Task
	concepts    []Concept
	datasets    []Dataset
	graphs      []GraphInstance
	assessments []Assessment

	objectiveByID map[string]*Objective
	conceptByID   map[string]*Concept
	datasetByID   map[string]*Dataset
	graphByID     map[string]*GraphInstance
	tasksByObj    map[string][]Task
	assessByObj   map[string][]Assessment
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

func buildGraph(
	objectives []Objective,
	tasks []Task,
	concepts []Concept,
	datasets []Dataset,
	graphs []GraphInstance,
	assessments []Assessment,
) *graph {
	gr := &graph{
		objectives:    objectives,
		tasks:         tasks,
		concepts:      concepts,
		datasets:      datasets,
		graphs:        graphs,
		assessments:   assessments,
		objectiveByID: make(map[string]*Objective, len(objectives)),
		conceptByID:   make(map[string]*Concept, len(concepts)),
		datasetByID:   make(map[string]*Dataset, len(datasets)),
		graphByID:     make(map[string]*GraphInstance, len(graphs)),
		tasksByObj:    make(map[string][]Task),
		assessByObj:   make(map[string][]Assessment),
	}

	for i := range gr.objectives {
		gr.objectiveByID[gr.objectives[i].ID] = &gr.objectives[i]
	}
	for i := range gr.concepts {
		gr.conceptByID[gr.concepts[i].ID] = &gr.concepts[i]
	}
	for i := range gr.datasets {
		gr.datasetByID[gr.datasets[i].ID] = &gr.datasets[i]
	}
	for i := range gr.graphs {
		gr.graphByID[gr.graphs[i].ID] = &gr.graphs[i]
	}

	for _, t := range gr.tasks {
		gr.tasksByObj[t.ObjectiveID] = append(gr.tasksByObj[t.ObjectiveID], t)
	}
	for _, a := range gr.assessments {
		gr.assessByObj[a.ObjectiveID] = append(gr.assessByObj[a.ObjectiveID], a)
	}

	// Stable display order for per-objective groupings.
	for id := range gr.tasksByObj {
		sort.Slice(gr.tasksByObj[id], func(i, j int) bool {
			return gr.tasksByObj[id][i].ID < gr.tasksByObj[id][j].ID
		})
	}

	return gr
}

// Objectives returns all learning objectives in seed order.
func Objectives() []Objective {
	return append([]Objective(nil), g.objectives...)
}

// GetObjective returns the objective with the given ID.
func GetObjective(id string) (Objective, error) {
	if o, ok := g.objectiveByID[id]; ok {
		return *o, nil
	}
	return Objective{}, fmt.Errorf("objective not found: %q", id)
}

// TasksForObjective returns the tasks targeting the given objective.
func TasksForObjective(objectiveID string) []Task {
	return append([]Task(nil), g.tasksByObj[objectiveID]...)
}

// AssessmentsForObjective returns the assessments for the given objective.
func AssessmentsForObjective(objectiveID string) []Assessment {
	return append([]Assessment(nil), g.assessByObj[objectiveID]...)
}

// Concepts returns all GNN concepts in seed order.
func Concepts() []Concept {
	return append([]Concept(nil), g.concepts...)
}

// DescribeConcept resolves any knowledge-base ID (concept, dataset, or
// graph instance) into a uniform description. Unknown IDs resolve to a
// placeholder rather than an error: attempt records may reference
// entities the seed does not know about.
func DescribeConcept(id string) ConceptInfo {
	if c, ok := g.conceptByID[id]; ok {
		return ConceptInfo{
			ID:   c.ID,
			Name: c.Name,
			Kind: c.Kind,
			Details: map[string]string{
				"description": c.Description,
			},
		}
	}
	if d, ok := g.datasetByID[id]; ok {
		return ConceptInfo{
			ID:   d.ID,
			Name: d.Name,
			Kind: KindGraphDataset,
			Details: map[string]string{
				"datasetName":     d.DatasetName,
				"numGraphs":       strconv.Itoa(d.NumGraphs),
				"numNodeFeatures": strconv.Itoa(d.NumNodeFeatures),
				"sourceURL":       d.SourceURL,
			},
		}
	}
	if gi, ok := g.graphByID[id]; ok {
		return ConceptInfo{
			ID:   gi.ID,
			Name: gi.Name,
			Kind: KindGraphInstance,
			Details: map[string]string{
				"graphLabel": gi.Label,
				"numNodes":   strconv.Itoa(gi.NumNodes),
				"numEdges":   strconv.Itoa(gi.NumEdges),
			},
		}
	}
	return ConceptInfo{ID: id, Name: id, Kind: "Unknown"}
}

// Validate runs the structural checks against the seeded graph.
func Validate() error {
	return validateGraph(g)
}
