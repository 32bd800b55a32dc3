package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/yana-hris/DevJobsAPI/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		// NewDBInstance already migrated, run again so the command is explicit.
		if err := db.Migrate(); err != nil {
			return err
		}
		log.Println("Database schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert roles, optional sample users and the configured admin",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if sample, _ := cmd.Flags().GetBool("sample-users"); sample {
			cfg.SeedSampleUsers = true
		}
		if err := database.Seed(db.DB, seedOptions(cfg)); err != nil {
			return err
		}
		log.Println("Seeding finished")
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("sample-users", false, "also insert the sample Employer, Employee and Admin accounts")
}
