package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"supercharge/internal/engine"
	"supercharge/internal/ui"
)

func newOnboardCmd() *cobra.Command {
	var name string
	var age int
	var goal string
	var force bool

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your profile (replaces any existing one)",
		RunE: func(cmd *cobra.Command, args []string) error {
			name = strings.TrimSpace(name)
			goal = strings.TrimSpace(goal)
			if name == "" {
				return errors.New("--name is required")
			}
			if age <= 0 {
				return errors.New("--age must be a positive number")
			}
			if goal == "" {
				return errors.New("--goal is required")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if svc.Onboarded() && !force {
				return errors.New("a profile already exists; re-run with --force to start over (this wipes all progress)")
			}

			if err := svc.SetUser(ctx, engine.Profile{Name: name, Age: age, Goal: goal}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Welcome, "+name+"!"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Run `sc routine` to generate your first daily routine."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Your name")
	cmd.Flags().IntVarP(&age, "age", "a", 0, "Your age")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Your primary goal")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing profile and wipe all progress")

	return cmd
}
