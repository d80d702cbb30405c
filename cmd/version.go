package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags by the release pipeline.
var (
	version = "(devel)"
	commit  = ""
	date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("grafiz", version)
		if commit != "" {
			fmt.Println("commit:", commit)
		}
		if date != "" {
			fmt.Println("built:", date)
		}
	},
}
