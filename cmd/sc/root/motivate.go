package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"supercharge/internal/ui"
)

func newMotivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motivate",
		Short: "Show today's motivational message",
		Long:  "Shows today's motivational message, fetching it from the generator at most once per day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := svc.Motivation(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Daily Motivation"))
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	return cmd
}
