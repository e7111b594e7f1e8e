package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"supercharge/internal/engine"
	"supercharge/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and today's routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			if st.User == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No profile yet. Run `sc onboard` to get started."))
				return nil
			}

			p := st.Progress
			next := engine.XPForNextLevel(p.Level)
			bar := ui.ProgressBar(p.XP, next, 30)
			streak := engine.StreakLength(st.CompletedTasksLog, time.Now())

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBolt, st.User.Name+" — "+st.User.Goal))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d/%d %s (%d to next level)", p.XP, next, bar, next-p.XP)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, streak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks completed", p.TotalTasksCompleted))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Achievements", fmt.Sprintf("%d/%d", len(st.UnlockedAchievements), len(engine.Catalog()))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconChart+" Categories"))
			for _, cat := range engine.Categories() {
				label := ui.CategoryStyle(string(cat)).Render(string(cat))
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d\n", label, p.CategoryCounts[cat])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconSun+" Today"))
			if len(st.Routine) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no routine — run `sc routine`)"))
				return nil
			}
			for i, t := range st.Routine {
				mark := ui.Warn.Render("[ ]")
				if t.Completed {
					mark = ui.Good.Render("[x]")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %s %s\n", i+1, mark, t.Task, ui.Muted.Render("("+t.SuggestedTime+")"))
			}
			return nil
		},
	}

	return cmd
}
