package priority

import "github.com/spf13/cobra"

// Cmd is the priority command group.
var Cmd = &cobra.Command{
	Use:   "priority",
	Short: "Reorder tasks within a status column",
}

func init() {
	Cmd.AddCommand(moveCmd)
	Cmd.AddCommand(rebalanceCmd)
}
