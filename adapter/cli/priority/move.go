package priority

import (
	"errors"
	"fmt"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var (
	moveStatus string
	moveIndex  int
)

var moveCmd = &cobra.Command{
	Use:   "move [task-id]",
	Short: "Drop a task at a position in a column",
	Long: `Give a task a rank that places it at --index of the target column.
Index 0 is the top; the index counts the column without the moved task.
When the new rank collides with a neighbour the whole column is respaced.

Examples:
  scheduler priority move <task-id> --index 0
  scheduler priority move <task-id> --status review --index 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		out := cmd.OutOrStdout()
		if app == nil || app.MoveTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		taskID, err := cli.ParseID("task", args[0])
		if err != nil {
			return err
		}

		result, err := app.MoveTaskHandler.Handle(cmd.Context(), commands.MoveTaskCommand{
			TaskID:      taskID,
			Status:      moveStatus,
			TargetIndex: moveIndex,
		})
		if errors.Is(err, domain.ErrRebalanceIncomplete) {
			fmt.Fprintf(out, "Column only partly respaced (%d ranks written); run 'scheduler priority rebalance'.\n", len(result.Updates))
		}
		if err != nil {
			return fmt.Errorf("failed to move task: %w", err)
		}

		fmt.Fprintf(out, "Moved %s to %s #%d\n", result.TaskID, result.Status, moveIndex)
		fmt.Fprintf(out, "  priority: %s -> %s\n",
			cli.FormatPriority(result.PreviousPriority), cli.FormatPriority(&result.NewPriority))
		if result.Rebalanced {
			fmt.Fprintf(out, "  column respaced: %d tasks\n", len(result.Updates))
		}
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&moveStatus, "status", "", "target status column (default: current)")
	moveCmd.Flags().IntVarP(&moveIndex, "index", "i", 0, "target position, 0 is the top")
}
