package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/grafiz/internal/analytics"
	"github.com/abhisek/grafiz/internal/llm"
	"github.com/abhisek/grafiz/internal/ontology"
	"github.com/abhisek/grafiz/internal/questiongen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview AI-generated questions for an objective (no database)",
	Long: `Generate and interactively answer questions for a learning objective.

This is a stateless developer tool — no database, no progress tracking, no events.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("objective", "", "Objective ID (required, see `grafiz topics`)")
	previewCmd.Flags().String("difficulty", "Medium", "Difficulty: Easy, Medium, or Hard")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("objective")
}

func runPreview(cmd *cobra.Command, args []string) error {
	objID, _ := cmd.Flags().GetString("objective")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	obj, err := ontology.GetObjective(objID)
	if err != nil {
		return err
	}

	var difficulty analytics.Difficulty
	switch strings.ToLower(diffVal) {
	case "easy":
		difficulty = analytics.DifficultyEasy
	case "medium":
		difficulty = analytics.DifficultyMedium
	case "hard":
		difficulty = analytics.DifficultyHard
	default:
		return fmt.Errorf("invalid difficulty %q: must be Easy, Medium, or Hard", diffVal)
	}

	// No EventRepo: preview requests are not logged.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())

	fmt.Printf("Generating %d %s questions for %q...\n\n", count, difficulty, obj.Name)
	questions, err := gen.Generate(ctx, questiongen.GenerateInput{
		Topic:       ontology.CleanName(obj.Name),
		ObjectiveID: obj.ID,
		Difficulty:  difficulty,
		Count:       count,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	correct, answered := 0, 0
	for i, q := range questions {
		fmt.Printf("── Question %d of %d ──\n%s\n", i+1, len(questions), q.Text)

		if q.Type != analytics.TypeMultipleChoice {
			fmt.Println("(theory question; graded interactively in the app)")
			fmt.Println()
			continue
		}

		labels := "ABCDEF"
		for j, c := range q.Choices {
			fmt.Printf("  %c) %s\n", labels[j], c)
		}
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		answer := strings.ToUpper(strings.TrimSpace(line))
		answered++
		if len(answer) == 1 && int(answer[0]-'A') == q.CorrectIndex {
			fmt.Println("Correct!")
			correct++
		} else {
			fmt.Printf("Not quite. Answer: %c) %s\n", labels[q.CorrectIndex], q.Choices[q.CorrectIndex])
		}
		fmt.Println()
	}

	if answered > 0 {
		fmt.Printf("Score: %d/%d\n", correct, answered)
	}
	return nil
}
