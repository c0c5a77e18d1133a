package sprint

import (
	"github.com/spf13/cobra"
)

// Cmd is the sprint command group
var Cmd = &cobra.Command{
	Use:   "sprint",
	Short: "Manage sprints",
	Long:  `Create sprints and configure their working calendar.`,
}

func init() {
	Cmd.AddCommand(createCmd)
}
