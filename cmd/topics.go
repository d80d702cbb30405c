package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List learning objectives and their concepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ontology.Validate(); err != nil {
			return fmt.Errorf("concept graph: %w", err)
		}

		for _, obj := range ontology.Objectives() {
			fmt.Printf("%s  [%s]\n", obj.Name, obj.Level)
			fmt.Printf("  id: %s\n", obj.ID)
			fmt.Printf("  %s\n", obj.Description)

			seen := map[string]bool{}
			for _, t := range ontology.TasksForObjective(obj.ID) {
				fmt.Printf("  - %s (%s, %s)\n", t.Name, t.Kind, t.EstimatedTime)
				for _, cid := range t.ConceptIDs {
					if seen[cid] {
						continue
					}
					seen[cid] = true
					fmt.Printf("      concept: %s\n", ontology.DescribeConcept(cid).Name)
				}
			}
			fmt.Println(strings.Repeat("─", 60))
		}
		return nil
	},
}
