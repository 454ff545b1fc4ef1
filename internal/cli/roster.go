package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uar-project/uar/internal/roster"
	"github.com/uar-project/uar/pkg/color"
)

var rosterPath string

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the users in a roster file",
	Long: `List the users in a roster file without any report filtering.

Shows every user with name, age, activity status, role, and the
number of recorded activities.`,
	Run: func(cmd *cobra.Command, args []string) {
		loadConfig()

		users, err := roster.Load(rosterPath)
		if err != nil {
			fmtErr("load roster: %v", err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(users)
			return
		}

		if len(users) == 0 {
			fmt.Println("Roster is empty.")
			return
		}

		for _, user := range users {
			fmt.Printf("%s  %s  %s  %s  %s\n",
				color.Header(user.Name),
				color.Dim(fmt.Sprintf("age %d", user.Age)),
				color.Active(user.Active),
				color.Role(user.Role.Label()),
				color.Dim(fmt.Sprintf("%d activities", len(user.Activities))),
			)
		}
	},
}

func init() {
	rosterCmd.Flags().StringVar(&rosterPath, "roster", "users.yaml", "roster file to list")
	rootCmd.AddCommand(rosterCmd)
}
