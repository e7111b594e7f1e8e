package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"supercharge/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Generate a new daily routine for your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Generating your routine…"))
			res, err := svc.GenerateRoutine(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Today's Routine"))
			for i, t := range res.Tasks {
				cat := ui.CategoryStyle(string(t.Category)).Render(string(t.Category))
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s %s — %s\n", i+1, ui.Key.Render(t.Task), ui.Muted.Render("("+cat+", "+t.SuggestedTime+")"), t.Description)
			}
			printNotices(cmd.OutOrStdout(), res.Notices)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Complete tasks with `sc do <number>`."))
			return nil
		},
	}

	return cmd
}
