package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"supercharge/internal/engine"
	"supercharge/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked (and with --all, locked) achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			unlocked := map[string]bool{}
			for _, id := range st.UnlockedAchievements {
				unlocked[id] = true
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", len(st.UnlockedAchievements), len(engine.Catalog()))))
			for _, a := range engine.Catalog() {
				if unlocked[a.ID] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
						ui.TierIcon(string(a.Tier)),
						ui.Good.Render(a.Name),
						ui.Muted.Render(a.Description),
						ui.Gold.Render(fmt.Sprintf("+%d XP", a.XP)))
					continue
				}
				if all {
					fmt.Fprintf(cmd.OutOrStdout(), "🔒 %s %s\n", ui.Muted.Render(a.Name), ui.Muted.Render(a.Description))
				}
			}
			if !all {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(use --all to include locked achievements)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include locked achievements")

	return cmd
}
