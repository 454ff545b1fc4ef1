package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uar-project/uar/internal/roster"
)

var sampleOut string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample roster file",
	Long: `Write the built-in sample roster (Alice, Bob, Charlie) to a file.

Useful as a starting point and for trying out report flags:
  uar sample
  uar report --include-inactive --exclude-action logout`,
	Run: func(cmd *cobra.Command, args []string) {
		loadConfig()

		if _, err := os.Stat(sampleOut); err == nil {
			fmtErr("%s already exists, refusing to overwrite", sampleOut)
			os.Exit(1)
		}

		if err := roster.Save(sampleOut, roster.Sample()); err != nil {
			fmtErr("write sample roster: %v", err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(map[string]any{"path": sampleOut, "users": len(roster.Sample())})
			return
		}
		fmt.Printf("Wrote sample roster to %s\n", sampleOut)
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleOut, "out", "users.yaml", "output path for the sample roster")
	rootCmd.AddCommand(sampleCmd)
}
