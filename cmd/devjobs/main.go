// Command devjobs runs the DevJobs API and its maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yana-hris/DevJobsAPI/internal/config"
	"github.com/yana-hris/DevJobsAPI/internal/database"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "devjobs",
	Short: "DevJobs job board API",
	Long: `devjobs serves the DevJobs REST API and carries the database
maintenance commands (migrate, seed, create-admin, clean-db).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (env vars take precedence)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, createAdminCmd, cleanDBCmd)
}

// openDatabase loads the configuration and connects to PostgreSQL. The schema
// is migrated as part of connecting.
func openDatabase() (*config.Config, *database.DBinstanceStruct, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.NewDBInstance(database.NewDBConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("database failed to initialize: %w", err)
	}
	return cfg, db, nil
}

func seedOptions(cfg *config.Config) database.SeedOptions {
	return database.SeedOptions{
		SampleUsers:   cfg.SeedSampleUsers,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
