package version

import (
	"github.com/spf13/cobra"
)

// Attach enables the --version flag on cmd, printing info.String().
func Attach(cmd *cobra.Command, info *Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(info.String() + "\n")
}
