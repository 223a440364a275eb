package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedUser string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate a user's empty dashboard with starter records",
	Long:  `Insert the starter application set and base profile for a user. Does nothing when the user already has records.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedUser, "user", "u", "", "User ID to seed (required)")
	seedCmd.MarkFlagRequired("user") //nolint:errcheck
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	store, owner, err := openStore(cmd.Context(), seedUser)
	if err != nil {
		return err
	}
	defer store.Close()

	seeded, err := store.EnsureSeed(cmd.Context(), owner)
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Printf("User %s already has records, nothing to do\n", seedUser)
		return nil
	}
	fmt.Printf("Seeded starter records for user %s\n", seedUser)
	return nil
}
