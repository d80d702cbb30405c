package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/grafiz/internal/app"
	"github.com/abhisek/grafiz/internal/grading"
	"github.com/abhisek/grafiz/internal/insights"
	"github.com/abhisek/grafiz/internal/llm"
	"github.com/abhisek/grafiz/internal/questiongen"
	"github.com/abhisek/grafiz/internal/store"
	"github.com/spf13/cobra"
)

// Tab indexes matching the app's tab order.
const (
	overviewTab = 0
	practiceTab = 2
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startTab int) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Events:    eventRepo,
		Snapshots: st.SnapshotRepo(),
		StartTab:  startTab,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation, theory grading, and the coach will be unavailable.")
	} else {
		opts.Generator = questiongen.New(provider, questiongen.DefaultConfig())
		opts.Grader = grading.NewTheoryGrader(provider)
		opts.Coach = insights.NewCoach(provider)
	}

	return app.Run(opts)
}
