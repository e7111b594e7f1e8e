package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"supercharge/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe profile, progress, log and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this wipes everything; re-run with --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Fresh start!"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("All progress cleared. Run `sc onboard` to begin again."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")

	return cmd
}
