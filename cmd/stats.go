package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/insights"
	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		log, err := s.EventRepo().AttemptHistory(ctx)
		if err != nil {
			return fmt.Errorf("load attempt history: %w", err)
		}

		if len(log) == 0 {
			fmt.Println("No attempts recorded yet. Run `grafiz` to start practicing.")
			return nil
		}

		report := analytics.BuildReport(log)
		printReport(report)

		if tips := insights.Build(log); len(tips) > 0 {
			fmt.Println()
			fmt.Println("Insights")
			fmt.Println(strings.Repeat("─", 60))
			for _, tip := range tips {
				fmt.Printf("%s: %s\n", tip.Title, tip.Body)
			}
		}
		return nil
	},
}

func printReport(r *analytics.Report) {
	fmt.Println("Overall")
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%-20s %d (%d evaluated)\n", "Attempts", r.TotalAttempts, r.EvaluatedAttempts)
	fmt.Printf("%-20s %.0f%% (%d correct)\n", "Accuracy", r.OverallAccuracy*100, r.CorrectAnswers)
	fmt.Printf("%-20s %d\n", "Current streak", r.CurrentStreak)
	fmt.Printf("%-20s %d\n", "Study days", r.StudyDays)
	fmt.Printf("%-20s %.1f (%d total)\n", "Avg hints", r.AverageHints, r.TotalHints)
	fmt.Printf("%-20s %.0f%%\n", "Efficiency", r.LearningEfficiency*100)
	fmt.Printf("%-20s %+.0f%%\n", "Improvement", r.LearningImprovement*100)
	fmt.Printf("%-20s %s\n", "Suggested level", r.SuggestedDifficulty)

	if len(r.Concepts) > 0 {
		fmt.Println()
		fmt.Println("Concept Mastery")
		fmt.Println(strings.Repeat("─", 60))
		for _, cs := range r.Concepts {
			name := ontology.DescribeConcept(cs.ConceptID).Name
			fmt.Printf("%-34s %4.0f%%  %-10s %d tries\n",
				name, cs.Accuracy*100, cs.Badge, cs.Attempts)
		}
	}

	if len(r.ObjectiveAccuracy) > 0 {
		ids := make([]string, 0, len(r.ObjectiveAccuracy))
		for id := range r.ObjectiveAccuracy {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println()
		fmt.Println("Objectives")
		fmt.Println(strings.Repeat("─", 60))
		for _, id := range ids {
			name := id
			if obj, err := ontology.GetObjective(id); err == nil {
				name = obj.Name
			}
			fmt.Printf("%-44s %4.0f%%\n", name, r.ObjectiveAccuracy[id]*100)
		}
	}
}
