package cmdbase

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/autostart/base/info"
)

// VersionCmd prints the version and build metadata.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and related metadata.",
	Args:  cobra.NoArgs,
	RunE:  Version,
}

// Version is the run function of VersionCmd.
func Version(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), info.FullVersion())
	return err
}
