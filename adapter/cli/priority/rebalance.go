package priority

import (
	"fmt"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/spf13/cobra"
)

var (
	rebalanceSprintID string
	rebalanceStatus   string
	force             bool
)

var rebalanceCmd = &cobra.Command{
	Use:   "rebalance",
	Short: "Respace the ranks of a status column",
	Long: `Rewrite the ranks of a column with even gaps, keeping its order.
Without --force nothing is written unless the column has a collision.

Examples:
  scheduler priority rebalance --sprint <id> --status todo
  scheduler priority rebalance --sprint <id> --status done --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		out := cmd.OutOrStdout()
		if app == nil || app.RebalanceGroupHandler == nil {
			return cli.ErrNotInitialized
		}

		sprint, err := cli.ParseID("sprint", rebalanceSprintID)
		if err != nil {
			return err
		}

		result, err := app.RebalanceGroupHandler.Handle(cmd.Context(), commands.RebalanceGroupCommand{
			SprintID: sprint,
			Status:   rebalanceStatus,
			Force:    force,
		})
		if err != nil {
			return fmt.Errorf("failed to rebalance: %w", err)
		}

		if !result.Rebalanced {
			fmt.Fprintf(out, "%s is already in order; nothing written.\n", result.Status)
			return nil
		}
		fmt.Fprintf(out, "Respaced %d tasks in %s\n", len(result.Updates), result.Status)
		for _, u := range result.Updates {
			p := u.NewPriority
			fmt.Fprintf(out, "  %s  %s\n", u.TaskID, cli.FormatPriority(&p))
		}
		return nil
	},
}

func init() {
	rebalanceCmd.Flags().StringVarP(&rebalanceSprintID, "sprint", "s", "", "sprint ID")
	rebalanceCmd.Flags().StringVar(&rebalanceStatus, "status", "todo", "status column (todo, in-progress, review, done)")
	rebalanceCmd.Flags().BoolVar(&force, "force", false, "rewrite ranks even when already in order")
	_ = rebalanceCmd.MarkFlagRequired("sprint")
}
