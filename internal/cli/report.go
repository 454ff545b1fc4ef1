package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/uar-project/uar/internal/activity"
	"github.com/uar-project/uar/internal/report"
	"github.com/uar-project/uar/internal/roster"
	"github.com/uar-project/uar/pkg/color"
	"github.com/uar-project/uar/pkg/logging"
)

var (
	reportRosterPath      string
	reportMinAge          int
	reportIncludeInactive bool
	reportActor           string
	reportAction          string
	reportExcludeAction   string
	reportSince           string
	reportUntil           string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an activity report from a roster",
	Long: `Generate an activity report from a roster file.

Users qualify when their age is at least --min-age and they are
active (or --include-inactive is set). Activity flags narrow which
history entries are rendered; they never affect which users appear.

Examples:
  uar report --roster users.yaml
  uar report --min-age 21 --include-inactive
  uar report --exclude-action logout
  uar report --actor Alice --since 2023-01-01 --until 2023-06-30`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		minAge := cfg.Report.MinAge
		if cmd.Flags().Changed("min-age") {
			minAge = reportMinAge
		}
		includeInactive := cfg.Report.IncludeInactive
		if cmd.Flags().Changed("include-inactive") {
			includeInactive = reportIncludeInactive
		}

		filterOpts := activity.FilterOptions{
			Actor:         reportActor,
			Action:        reportAction,
			ExcludeAction: reportExcludeAction,
		}
		var err error
		filterOpts.Since, err = parseDateFlag("since", reportSince)
		if err != nil {
			fmtErr("%v", err)
			os.Exit(1)
		}
		filterOpts.Until, err = parseDateFlag("until", reportUntil)
		if err != nil {
			fmtErr("%v", err)
			os.Exit(1)
		}

		users, err := roster.Load(reportRosterPath)
		if err != nil {
			fmtErr("load roster: %v", err)
			os.Exit(1)
		}

		runID := uuid.NewString()
		log := logging.WithFields(map[string]any{"run_id": runID})

		entries, err := report.Generate(users, minAge, report.Options{
			IncludeInactive: includeInactive,
			ActivityFilter:  filterOpts.Predicate(),
		})
		if err != nil {
			log.ErrorErr("report generation failed", err)
			fmtErr("generate report: %v", err)
			os.Exit(1)
		}

		log.Info("report generated", map[string]any{
			"roster":  reportRosterPath,
			"users":   len(users),
			"entries": len(entries),
			"min_age": minAge,
		})

		if jsonOutput {
			outputJSON(entries)
			return
		}

		if len(entries) == 0 {
			fmt.Println("No qualifying users.")
			return
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s  %s  %s\n",
				color.Header(entry.Name),
				color.Dim(fmt.Sprintf("age %d", entry.Age)),
				color.Active(entry.Active),
				color.Role(entry.Role),
			)
			fmt.Printf("  %s\n", entry.Address)
			for _, line := range entry.Activities {
				fmt.Printf("    %s\n", line)
			}
		}
	},
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty means unset.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q (want YYYY-MM-DD)", name, value)
	}
	return t, nil
}

func init() {
	reportCmd.Flags().StringVar(&reportRosterPath, "roster", "users.yaml", "roster file to report on")
	reportCmd.Flags().IntVar(&reportMinAge, "min-age", report.DefaultMinAge, "inclusive minimum age")
	reportCmd.Flags().BoolVar(&reportIncludeInactive, "include-inactive", false, "include inactive users")
	reportCmd.Flags().StringVar(&reportActor, "actor", "", "only activities by this actor")
	reportCmd.Flags().StringVar(&reportAction, "action", "", "only activities with this action")
	reportCmd.Flags().StringVar(&reportExcludeAction, "exclude-action", "", "drop activities with this action")
	reportCmd.Flags().StringVar(&reportSince, "since", "", "only activities on or after this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportUntil, "until", "", "only activities on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(reportCmd)
}
