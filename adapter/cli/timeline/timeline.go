package timeline

import (
	"fmt"
	"strings"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/queries"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var (
	sprintID   string
	showBlocks bool
)

// Cmd shows the computed timeline of a sprint.
var Cmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a sprint's timeline",
	Long: `Compute and display when each task of a sprint is expected to run.

Tasks are ordered by status (done, review, in progress, todo) and then by
rank, and laid back to back over the sprint's working hours minus your busy
time. Work that does not fit runs past the sprint end.

Examples:
  scheduler timeline --sprint <id>
  scheduler timeline --sprint <id> --blocks`,
	Aliases: []string{"gantt"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetTimelineHandler == nil {
			return cli.ErrNotInitialized
		}

		sprint, err := cli.ParseID("sprint", sprintID)
		if err != nil {
			return err
		}

		view, err := app.GetTimelineHandler.Handle(cmd.Context(), queries.GetTimelineQuery{
			SprintID: sprint,
			UserID:   app.CurrentUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to compute timeline: %w", err)
		}

		render(cmd, view)
		return nil
	},
}

func render(cmd *cobra.Command, view *queries.TimelineView) {
	out := cmd.OutOrStdout()
	loc := view.Location

	fmt.Fprintf(out, "Timeline for %s (%s to %s)\n", view.Sprint.Name, view.Sprint.StartDate, view.Sprint.EndDate)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	if showBlocks {
		for _, block := range view.Blocks {
			fmt.Fprintf(out, "  %s %s  %s - %s  %s available\n",
				block.Date, block.Date.Weekday().String()[:3],
				block.StartAt(loc).Format("15:04"),
				block.EndAt(loc).Format("15:04"),
				cli.FormatHours(block.AvailableHours),
			)
		}
		fmt.Fprintln(out, strings.Repeat("-", 60))
	}

	if len(view.Tasks) == 0 {
		fmt.Fprintln(out, "\n  No tasks in this sprint.")
		return
	}

	for _, task := range view.Tasks {
		fmt.Fprintf(out, "\n%s %s\n", statusIcon(task.Status), task.Title)
		fmt.Fprintf(out, "    %s -> %s  (%s, ~%dd)\n",
			task.Start.In(loc).Format(cli.DateTimeLayout),
			task.End.In(loc).Format(cli.DateTimeLayout),
			cli.FormatHours(task.ScheduledHours),
			task.EstimatedDays,
		)
	}

	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintf(out, "Scheduled: %s of %s available\n",
		cli.FormatHours(view.ScheduledHours), cli.FormatHours(view.NominalHours))
	if view.ExtensionUsed {
		fmt.Fprintln(out, "Warning: work runs past the sprint end.")
	}
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusDone:
		return "[x]"
	case domain.StatusReview:
		return "[?]"
	case domain.StatusInProgress:
		return "[>]"
	default:
		return "[ ]"
	}
}

func init() {
	Cmd.Flags().StringVarP(&sprintID, "sprint", "s", "", "sprint ID")
	Cmd.Flags().BoolVar(&showBlocks, "blocks", false, "also list the working blocks")
	_ = Cmd.MarkFlagRequired("sprint")
}
