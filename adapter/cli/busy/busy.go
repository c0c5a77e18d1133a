package busy

import (
	"github.com/spf13/cobra"
)

// Cmd is the busy time command group
var Cmd = &cobra.Command{
	Use:   "busy",
	Short: "Manage busy time",
	Long:  `Block out meetings and other commitments so they are not scheduled over.`,
}

func init() {
	Cmd.AddCommand(addCmd)
}
