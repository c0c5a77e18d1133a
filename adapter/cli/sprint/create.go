package sprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var (
	kind      string
	startDate string
	endDate   string
	workDays  string
	workStart string
	workEnd   string
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new sprint",
	Long: `Create a sprint with its date range and working calendar.

Work days use ISO numbering, 1 (Monday) to 7 (Sunday).

Examples:
  scheduler sprint create "Sprint 12" --start 2024-01-15 --end 2024-01-26
  scheduler sprint create "Side project" --kind casual --start 2024-02-01 --end 2024-02-29 --days 6,7
  scheduler sprint create "Crunch" --start 2024-03-04 --end 2024-03-08 --work-start 08:00 --work-end 18:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateSprintHandler == nil {
			return cli.ErrNotInitialized
		}

		start, err := domain.ParseDate(startDate)
		if err != nil {
			return fmt.Errorf("invalid start date format (use YYYY-MM-DD): %w", err)
		}
		end, err := domain.ParseDate(endDate)
		if err != nil {
			return fmt.Errorf("invalid end date format (use YYYY-MM-DD): %w", err)
		}
		days, err := parseWorkDays(workDays)
		if err != nil {
			return err
		}

		id, err := app.CreateSprintHandler.Handle(cmd.Context(), commands.CreateSprintCommand{
			Name:      args[0],
			Kind:      kind,
			StartDate: start,
			EndDate:   end,
			WorkDays:  days,
			WorkStart: workStart,
			WorkEnd:   workEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to create sprint: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sprint created: %s\n", id)
		fmt.Fprintf(out, "  name: %s\n", args[0])
		fmt.Fprintf(out, "  dates: %s to %s\n", start, end)
		return nil
	},
}

func parseWorkDays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid work day %q: %w", part, err)
		}
		days = append(days, d)
	}
	return days, nil
}

func init() {
	createCmd.Flags().StringVarP(&kind, "kind", "k", "project", "sprint kind (project, casual)")
	createCmd.Flags().StringVar(&startDate, "start", "", "first day of the sprint (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&endDate, "end", "", "last day of the sprint (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&workDays, "days", "", "comma separated ISO work days (default 1,2,3,4,5)")
	createCmd.Flags().StringVar(&workStart, "work-start", "", "start of the working day (HH:MM)")
	createCmd.Flags().StringVar(&workEnd, "work-end", "", "end of the working day (HH:MM)")
	_ = createCmd.MarkFlagRequired("start")
	_ = createCmd.MarkFlagRequired("end")
}
