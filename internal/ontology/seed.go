package ontology

func init() {
	g = buildGraph(
		seedObjectives(),
		seedTasks(),
		seedConcepts(),
		seedDatasets(),
		seedGraphs(),
		seedAssessments(),
	)
	if err := Validate(); err != nil {
		panic(err)
	}
}

func seedObjectives() []Objective {
	return []Objective{
		{
			ID:          "obj-understand-graph-rep",
			Name:        "Understand Graph Representation",
			Description: "Read and construct adjacency matrices, edge lists, and feature matrices for directed and undirected graphs.",
			Level:       "Beginner",
		},
		{
			ID:          "obj-implement-message-passing",
			Name:        "Implement Message Passing",
			Description: "Explain and implement the aggregate-and-update cycle that propagates information between neighboring nodes.",
			Level:       "Intermediate",
		},
		{
			ID:          "obj-train-gcn-model",
			Name:        "Train a GCN Model",
			Description: "Set up the forward pass, loss, and optimization loop for a graph convolutional network on node classification.",
			Level:       "Intermediate",
		},
		{
			ID:          "obj-evaluate-graph-accuracy",
			Name:        "Evaluate Model Accuracy",
			Description: "Measure and interpret training versus validation performance, and recognize overfitting on graph data.",
			Level:       "Advanced",
		},
	}
}

func seedConcepts() []Concept {
	return []Concept{
		{
			ID:          "basic-graph-representation",
			Name:        "Basic Graph Representation",
			Kind:        KindGNNConcept,
			Description: "Adjacency matrices and edge lists as encodings of graph structure.",
		},
		{
			ID:          "gcn-layer-fundamentals",
			Name:        "GCN Layer Fundamentals",
			Kind:        KindGNNConcept,
			Description: "The linear transform and neighborhood normalization inside a graph convolution layer.",
		},
		{
			ID:          "message-passing",
			Name:        "Message Passing",
			Kind:        KindGNNConcept,
			Description: "Neighbor aggregation and node update as the core GNN computation.",
		},
		{
			ID:          "training-workflow",
			Name:        "Training Workflow",
			Kind:        KindGNNConcept,
			Description: "Loss computation, backpropagation, and the train/validation split on graphs.",
		},
		{
			ID:          "node-embeddings",
			Name:        "Node Embeddings",
			Kind:        KindGNNConcept,
			Description: "Learned vector representations of nodes produced by stacked GNN layers.",
		},
		{
			ID:          "cross-entropy-loss",
			Name:        "Cross-Entropy Loss",
			Kind:        KindLossFunction,
			Description: "The standard classification loss for node and graph labeling tasks.",
		},
		{
			ID:          "classification-accuracy",
			Name:        "Classification Accuracy",
			Kind:        KindMetric,
			Description: "Fraction of correctly labeled nodes or graphs on a held-out split.",
		},
	}
}

func seedDatasets() []Dataset {
	return []Dataset{
		{
			ID:              "ds-cora",
			Name:            "Cora Citation Network",
			DatasetName:     "Cora",
			NumGraphs:       1,
			NumNodeFeatures: 1433,
			SourceURL:       "https://relational.fel.cvut.cz/dataset/CORA",
		},
		{
			ID:              "ds-mutag",
			Name:            "MUTAG Molecules",
			DatasetName:     "MUTAG",
			NumGraphs:       188,
			NumNodeFeatures: 7,
			SourceURL:       "https://chrsmrrs.github.io/datasets/",
		},
	}
}

func seedGraphs() []GraphInstance {
	return []GraphInstance{
		{
			ID:       "graph-chain-5",
			Name:     "Five-Node Chain",
			Label:    "chain",
			NumNodes: 5,
			NumEdges: 4,
		},
		{
			ID:       "graph-karate",
			Name:     "Karate Club",
			Label:    "social",
			NumNodes: 34,
			NumEdges: 78,
		},
	}
}

func seedTasks() []Task {
	return []Task{
		{
			ID:            "task-explain-adjacency",
			Name:          "Explain the Adjacency Matrix",
			Kind:          TaskConceptExplanation,
			Description:   "Walk through how edges become matrix entries for directed and undirected graphs.",
			Difficulty:    "Easy",
			EstimatedTime: "15 min",
			ObjectiveID:   "obj-understand-graph-rep",
			ConceptIDs:    []string{"basic-graph-representation"},
			GraphIDs:      []string{"graph-chain-5"},
		},
		{
			ID:            "task-node-aggregation",
			Name:          "Interactive Node Aggregation",
			Kind:          TaskInteractiveExercise,
			Description:   "Aggregate neighbor features by hand on a small graph and compare pooling functions.",
			Difficulty:    "Medium",
			EstimatedTime: "25 min",
			ObjectiveID:   "obj-implement-message-passing",
			ConceptIDs:    []string{"message-passing", "node-embeddings"},
			GraphIDs:      []string{"graph-karate"},
		},
		{
			ID:             "task-gcn-forward-pass",
			Name:           "Worked GCN Forward Pass",
			Kind:           TaskWorkedExample,
			Description:    "Trace a full forward pass through a two-layer GCN on the Cora dataset, shapes included.",
			Difficulty:     "Medium",
			EstimatedTime:  "30 min",
			RequiresCoding: true,
			ObjectiveID:    "obj-train-gcn-model",
			ConceptIDs:     []string{"gcn-layer-fundamentals", "cross-entropy-loss"},
			DatasetIDs:     []string{"ds-cora"},
		},
		{
			ID:            "task-performance-reflection",
			Name:          "Reflect on Model Performance",
			Kind:          TaskReflection,
			Description:   "Interpret a large train/validation accuracy gap and propose remedies.",
			Difficulty:    "Hard",
			EstimatedTime: "10 min",
			ObjectiveID:   "obj-evaluate-graph-accuracy",
			ConceptIDs:    []string{"training-workflow", "classification-accuracy"},
			DatasetIDs:    []string{"ds-mutag"},
		},
	}
}

func seedAssessments() []Assessment {
	return []Assessment{
		{
			ID:                 "assess-graph-rep",
			Name:               "Graph Representation Check",
			Description:        "Short quiz on adjacency matrices and edge encodings.",
			MaxScore:           10,
			PassingScore:       6,
			ObjectiveID:        "obj-understand-graph-rep",
			RequiredConceptIDs: []string{"basic-graph-representation"},
		},
		{
			ID:                 "assess-gcn-training",
			Name:               "GCN Training Assessment",
			Description:        "End-to-end assessment covering layers, loss, and the training loop.",
			MaxScore:           20,
			PassingScore:       14,
			ObjectiveID:        "obj-train-gcn-model",
			RequiredConceptIDs: []string{"gcn-layer-fundamentals", "cross-entropy-loss", "training-workflow"},
		},
	}
}
