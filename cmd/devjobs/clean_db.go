package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var cleanDBCmd = &cobra.Command{
	Use:   "clean-db",
	Short: "Drop every table in the public schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintln(out, "WARNING: This command will DROP ALL TABLES in the 'public' schema of your database.")
			fmt.Fprint(out, "This action is irreversible. Do you want to continue? (yes/no): ")

			input, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if strings.TrimSpace(strings.ToLower(input)) != "yes" {
				fmt.Fprintln(out, "Operation cancelled.")
				return nil
			}
		}

		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.DropAllTables(cmd.Context()); err != nil {
			return fmt.Errorf("failed to execute drop command: %w", err)
		}
		fmt.Fprintln(out, "All tables dropped successfully.")
		return nil
	},
}

func init() {
	cleanDBCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
