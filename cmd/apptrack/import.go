package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zefanya/apptrack/internal/csvio"
)

var (
	importFile string
	importUser string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-load application records from a CSV file",
	Long:  `Parse a CSV export and insert every row for the given user. A malformed file is rejected before anything is written.`,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to CSV file (required)")
	importCmd.Flags().StringVarP(&importUser, "user", "u", "", "User ID to import into (required)")
	importCmd.MarkFlagRequired("file") //nolint:errcheck
	importCmd.MarkFlagRequired("user") //nolint:errcheck
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	apps, err := csvio.Decode(string(data), time.Now())
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return fmt.Errorf("%s contains no records", importFile)
	}
	csvio.DefaultSource(apps)

	store, owner, err := openStore(cmd.Context(), importUser)
	if err != nil {
		return err
	}
	defer store.Close()

	imported, err := store.BatchInsertApplications(cmd.Context(), owner, apps)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d records for user %s\n", imported, importUser)
	return nil
}
