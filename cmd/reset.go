package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/grafiz/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset practice progress",
	Long: `Delete recorded attempts, hints, sessions, and snapshots.

By default the LLM request log is kept for cost auditing.
Pass --all to wipe everything and restart event numbering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		what := "practice progress (attempts, hints, sessions, snapshots)"
		if all {
			what = "ALL data including the LLM request log"
		}
		if !yes && !confirm(fmt.Sprintf("This will delete %s. Continue? [y/N] ", what)) {
			fmt.Println("Aborted.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		if all {
			if err := s.ResetAll(ctx); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Println("All data deleted.")
			return nil
		}

		if err := s.ResetPractice(ctx); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("Practice progress deleted. LLM request log kept.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also delete the LLM request log")
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
