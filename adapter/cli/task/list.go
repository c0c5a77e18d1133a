package task

import (
	"fmt"
	"strings"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/queries"
	"github.com/spf13/cobra"
)

var (
	listSprintID string
	listStatus   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one status column",
	Long: `List the tasks of a status column in board order, highest rank first.
The position shown is the index accepted by 'scheduler priority move'.

Examples:
  scheduler task list --sprint <id>
  scheduler task list --sprint <id> --status review`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListGroupHandler == nil {
			return cli.ErrNotInitialized
		}

		sprint, err := cli.ParseID("sprint", listSprintID)
		if err != nil {
			return err
		}

		tasks, err := app.ListGroupHandler.Handle(cmd.Context(), queries.ListGroupQuery{
			SprintID: sprint,
			Status:   listStatus,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}

		fmt.Fprintf(out, "%s (%d):\n", strings.ToUpper(listStatus), len(tasks))
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for i, t := range tasks {
			fmt.Fprintf(out, "%2d. %s\n", i, t.Title)
			fmt.Fprintf(out, "    ID: %s | Priority: %s | Estimate: %s\n",
				t.ID, cli.FormatPriority(t.Priority), cli.FormatHours(t.EffectiveHours()))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSprintID, "sprint", "s", "", "sprint ID")
	listCmd.Flags().StringVar(&listStatus, "status", "todo", "status column (todo, in-progress, review, done)")
	_ = listCmd.MarkFlagRequired("sprint")
}
