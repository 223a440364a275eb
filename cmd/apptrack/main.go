// Package main provides the entry point for the application tracker server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "apptrack",
	Short: "Job application tracker API server",
	Long:  "apptrack tracks job applications on a personal dashboard: status board, KPIs, CSV import/export, and AI-assisted follow-up drafts via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
