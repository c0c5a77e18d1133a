package busy

import (
	"fmt"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/spf13/cobra"
)

var (
	startAt string
	endAt   string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a busy interval",
	Long: `Add a busy interval for the current user. Times are read in the
configured time zone unless they carry an RFC 3339 offset.

Examples:
  scheduler busy add "Sprint planning" --start "2024-01-15 09:00" --end "2024-01-15 11:00"
  scheduler busy add "Offsite" --start 2024-01-17T00:00:00+08:00 --end 2024-01-18T00:00:00+08:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddBusyIntervalHandler == nil {
			return cli.ErrNotInitialized
		}

		start, err := cli.ParseDateTime(startAt, app.Location)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := cli.ParseDateTime(endAt, app.Location)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		id, err := app.AddBusyIntervalHandler.Handle(cmd.Context(), commands.AddBusyIntervalCommand{
			UserID: app.CurrentUserID,
			Title:  args[0],
			Start:  start,
			End:    end,
		})
		if err != nil {
			return fmt.Errorf("failed to add busy interval: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Busy interval added: %s\n", id)
		fmt.Fprintf(out, "  %s - %s  %s\n",
			start.In(app.Location).Format(cli.DateTimeLayout),
			end.In(app.Location).Format(cli.DateTimeLayout),
			args[0],
		)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&startAt, "start", "", "start time (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&endAt, "end", "", "end time (YYYY-MM-DD HH:MM)")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}
