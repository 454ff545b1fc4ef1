package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the UAR version, overridable at build time with
// -ldflags "-X github.com/uar-project/uar/internal/cli.Version=...".
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the UAR version",
	Run: func(cmd *cobra.Command, args []string) {
		if jsonOutput {
			outputJSON(map[string]string{"version": Version})
			return
		}
		fmt.Println("uar " + Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
