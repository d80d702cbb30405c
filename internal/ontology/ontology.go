package ontology

// ConceptKind classifies a knowledge-base entity.
type ConceptKind string

const (
	KindGNNConcept    ConceptKind = "GNNConcept"
	KindGraphDataset  ConceptKind = "GraphDataset"
	KindGraphInstance ConceptKind = "GraphInstance"
	KindLossFunction  ConceptKind = "LossFunction"
	KindMetric        ConceptKind = "AccuracyMetric"
)

// TaskKind classifies a learning task by its teaching style.
type TaskKind string

const (
	TaskConceptExplanation  TaskKind = "ConceptExplanation"
	TaskInteractiveExercise TaskKind = "InteractiveExercise"
	TaskWorkedExample       TaskKind = "WorkedExample"
	TaskReflection          TaskKind = "ReflectionTask"
)

// Objective is a learning objective a learner works toward.
type Objective struct {
	ID          string
	Name        string
	Description string
	Level       string // Beginner, Intermediate, Advanced
}

// Task is a learning activity linked to an objective.
type Task struct {
	ID            string
	Name          string
	Kind          TaskKind
	Description   string
	Difficulty    string
	EstimatedTime string
	RequiresCoding bool
	ObjectiveID   string
	ConceptIDs    []string
	DatasetIDs    []string
	GraphIDs      []string
}

// Concept is a GNN concept node a question can reference.
type Concept struct {
	ID          string
	Name        string
	Kind        ConceptKind
	Description string
}

// Dataset is a graph dataset used by learning tasks.
type Dataset struct {
	ID              string
	Name            string
	DatasetName     string
	NumGraphs       int
	NumNodeFeatures int
	SourceURL       string
}

// GraphInstance is a small example graph referenced by tasks.
type GraphInstance struct {
	ID       string
	Name     string
	Label    string
	NumNodes int
	NumEdges int
}

// Assessment links required concepts and a score to an objective.
type Assessment struct {
	ID                 string
	Name               string
	Description        string
	CurrentScore       float64
	MaxScore           float64
	PassingScore       float64
	ObjectiveID        string
	RequiredConceptIDs []string
}

// ConceptInfo is the uniform description the UI renders for any
// knowledge-base entity, whatever its concrete type.
type ConceptInfo struct {
	ID      string
	Name    string
	Kind    ConceptKind
	Details map[string]string
}
