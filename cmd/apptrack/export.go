package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zefanya/apptrack/internal/csvio"
)

var (
	exportUser string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a user's application records to a CSV file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportUser, "user", "u", "", "User ID to export (required)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default applications_<date>.csv)")
	exportCmd.MarkFlagRequired("user") //nolint:errcheck
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	store, owner, err := openStore(cmd.Context(), exportUser)
	if err != nil {
		return err
	}
	defer store.Close()

	apps, err := store.ListApplications(cmd.Context(), owner)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = csvio.ExportFilename(time.Now())
	}
	if err := os.WriteFile(out, []byte(csvio.Encode(apps)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Exported %d records to %s\n", len(apps), out)
	return nil
}
