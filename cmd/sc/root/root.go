package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"supercharge/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sc",
	Short:         "Supercharge — local-first gamified daily routine tracker",
	Long:          "Supercharge turns an AI-generated daily routine into an XP, level and achievement grind, all stored locally.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newOnboardCmd(),
		newRoutineCmd(),
		newDoCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newHistoryCmd(),
		newMotivateCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
