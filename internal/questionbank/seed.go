package questionbank

import "github.com/abhisek/grafiz/internal/analytics"

func init() {
	bank = []Question{
		{
			ID:          "q-adjacency-entry",
			ObjectiveID: "obj-understand-graph-rep",
			TaskID:      "task-explain-adjacency",
			ConceptID:   "basic-graph-representation",
			Type:        analytics.TypeMultipleChoice,
			Prompt: "In an adjacency matrix for an unweighted directed graph, " +
				"what does a value of 1 at position (i, j) represent?",
			Choices: []Choice{
				{ID: "A", Text: "There is an edge from node i to node j", Correct: true},
				{ID: "B", Text: "Nodes i and j have the same degree"},
				{ID: "C", Text: "There is a path of length 2 between i and j"},
				{ID: "D", Text: "The graph has exactly one connected component"},
			},
			Hints: []string{
				"Think about how we encode the presence or absence of edges in a matrix.",
				"Look at row i and column j: what relationship between those nodes are we recording?",
				"If an edge exists directly from i to j, what value should we store at (i, j)?",
			},
		},
		{
			ID:          "q-chain-nonzero",
			ObjectiveID: "obj-understand-graph-rep",
			TaskID:      "task-explain-adjacency",
			ConceptID:   "basic-graph-representation",
			Type:        analytics.TypeNumeric,
			Prompt: "A simple undirected graph has 5 nodes with edges forming a chain " +
				"(1-2-3-4-5). How many non-zero entries will its adjacency matrix have?",
			NumericAnswer: 8,
			Tolerance:     0.0001,
			Hints: []string{
				"For an undirected graph, each edge appears twice in the adjacency matrix.",
				"Count how many edges a 5-node chain has.",
				"Multiply the number of edges by 2 to get the number of non-zero entries.",
			},
		},
		{
			ID:          "q-gcn-params",
			ObjectiveID: "obj-train-gcn-model",
			TaskID:      "task-gcn-forward-pass",
			ConceptID:   "gcn-layer-fundamentals",
			Type:        analytics.TypeNumeric,
			Prompt: "A GCN layer takes a node feature matrix X of shape (N, 1433) and outputs " +
				"a hidden representation of size 64. How many parameters are in W?",
			NumericAnswer: 1433 * 64,
			Tolerance:     1e-6,
			Hints: []string{
				"X has 1433 input features and outputs 64 features.",
				"A linear layer maps 1433 inputs to 64 outputs.",
				"The parameter count is 1433 x 64.",
			},
		},
		{
			ID:          "q-aggregation-role",
			ObjectiveID: "obj-implement-message-passing",
			TaskID:      "task-node-aggregation",
			ConceptID:   "message-passing",
			Type:        analytics.TypeMultipleChoice,
			Prompt:      "In a typical message passing step of a GNN, what does the aggregation function do?",
			Choices: []Choice{
				{ID: "A", Text: "It updates the graph labels"},
				{ID: "B", Text: "It combines information from a node's neighbors", Correct: true},
				{ID: "C", Text: "It trains the model using gradient descent"},
				{ID: "D", Text: "It converts graphs into images"},
			},
			Hints: []string{
				"Messages come from neighboring nodes.",
				"What must a node do with multiple incoming messages?",
				"Aggregation pools or combines all neighbor messages.",
			},
		},
		{
			ID:          "q-overfit-reflection",
			ObjectiveID: "obj-evaluate-graph-accuracy",
			TaskID:      "task-performance-reflection",
			ConceptID:   "training-workflow",
			Type:        analytics.TypeReflection,
			Prompt: "Your GNN achieves 99% accuracy on the training set but 65% on validation.\n" +
				"Explain in 2-3 sentences what this suggests and what you should do.",
			Hints: []string{
				"Training accuracy is high, validation accuracy is low. What does that imply?",
				"Think of overfitting: memorising training data but not generalising.",
				"Consider regularisation, early stopping, or reducing model complexity.",
			},
		},
	}
}
