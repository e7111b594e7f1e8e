package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"supercharge/internal/engine"
	"supercharge/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <number|task-id>",
		Short: "Complete a routine task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task number or id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveTaskID(svc.State().Routine, args[0])
			if err != nil {
				return err
			}

			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do: task already completed today."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Completed"), ui.Key.Render(res.Task))
			printNotices(cmd.OutOrStdout(), res.Notices)
			if res.LevelAfter > res.LevelBefore {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.LabelValue("Level", fmt.Sprintf("%d → %d %s", res.LevelBefore, res.LevelAfter, ui.BadgeLevelUp)))
			}
			return nil
		},
	}

	return cmd
}

// resolveTaskID accepts a 1-based routine position, a full task id, or an
// unambiguous id prefix.
func resolveTaskID(routine []engine.RoutineTask, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(routine) {
			return "", fmt.Errorf("task number %d out of range (routine has %d tasks)", n, len(routine))
		}
		return routine[n-1].ID, nil
	}

	var match string
	for _, t := range routine {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("task id prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no routine task matches %q", arg)
	}
	return match, nil
}
