package task

import (
	"fmt"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/spf13/cobra"
)

var (
	sprintID string
	status   string
	priority int64
	hours    float64
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Long: `Create a task in a sprint. Without --priority the task is ranked
last in its status column.

Examples:
  scheduler task create "Write importer" --sprint <id> --hours 10
  scheduler task create "Fix login" --sprint <id> --status in-progress --hours 4
  scheduler task create "Spike" --sprint <id> --priority 1000005000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		sprint, err := cli.ParseID("sprint", sprintID)
		if err != nil {
			return err
		}

		createCmd := commands.CreateTaskCommand{
			SprintID: sprint,
			Title:    args[0],
			Status:   status,
		}
		if cmd.Flags().Changed("priority") {
			p := priority
			createCmd.Priority = &p
		}
		if cmd.Flags().Changed("hours") {
			h := hours
			createCmd.EstimatedHours = &h
		}

		id, err := app.CreateTaskHandler.Handle(cmd.Context(), createCmd)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Task created: %s\n", id)
		fmt.Fprintf(out, "  title: %s\n", args[0])
		if createCmd.EstimatedHours != nil {
			fmt.Fprintf(out, "  estimate: %s\n", cli.FormatHours(*createCmd.EstimatedHours))
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&sprintID, "sprint", "s", "", "sprint ID")
	createCmd.Flags().StringVar(&status, "status", "", "status column (todo, in-progress, review, done)")
	createCmd.Flags().Int64VarP(&priority, "priority", "p", 0, "explicit rank, higher comes first")
	createCmd.Flags().Float64VarP(&hours, "hours", "e", 0, "estimated hours")
	_ = createCmd.MarkFlagRequired("sprint")
}
