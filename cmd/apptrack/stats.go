package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zefanya/apptrack/internal/kpi"
	"github.com/zefanya/apptrack/internal/observability"
)

var statsUser string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a user's dashboard summary to the terminal",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsUser, "user", "u", "", "User ID to summarize (required)")
	statsCmd.MarkFlagRequired("user") //nolint:errcheck
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	store, owner, err := openStore(cmd.Context(), statsUser)
	if err != nil {
		return err
	}
	defer store.Close()

	apps, err := store.ListApplications(cmd.Context(), owner)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintKPIs(kpi.Calculate(apps, time.Now()))
	printer.PrintStatusBoard(apps)
	printer.PrintApplications(apps)
	return nil
}
