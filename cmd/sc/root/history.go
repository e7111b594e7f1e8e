package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"supercharge/internal/engine"
	"supercharge/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var month bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completion activity per day and category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			now := time.Now()

			var buckets []engine.ActivityBucket
			title := "Last 7 days"
			if month {
				buckets = engine.MonthlyActivity(st.CompletedTasksLog, now)
				title = "Last 30 days"
			} else {
				buckets = engine.WeeklyActivity(st.CompletedTasksLog, now)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, title))
			for _, b := range buckets {
				day, _ := time.ParseInLocation("2006-01-02", b.Date, time.Local)
				label := day.Format("Mon 02 Jan")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Muted.Render(label),
					stackedBar(b),
					ui.Muted.Render(fmt.Sprintf("(%d)", total(b))))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "")
			legend := make([]string, 0, len(engine.Categories()))
			for _, cat := range engine.Categories() {
				legend = append(legend, ui.CategoryStyle(string(cat)).Render("■ "+string(cat)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(legend, "  "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&month, "month", false, "Show the last 30 days instead of 7")

	return cmd
}

// stackedBar renders one block per completion, colored by category, in the
// fixed category order so bars are comparable across days.
func stackedBar(b engine.ActivityBucket) string {
	var sb strings.Builder
	for _, cat := range engine.Categories() {
		n := b.Counts[cat]
		if n == 0 {
			continue
		}
		sb.WriteString(ui.CategoryStyle(string(cat)).Render(strings.Repeat("■", n)))
	}
	if sb.Len() == 0 {
		return ui.Muted.Render("·")
	}
	return sb.String()
}

func total(b engine.ActivityBucket) int {
	n := 0
	for _, c := range b.Counts {
		n += c
	}
	return n
}
