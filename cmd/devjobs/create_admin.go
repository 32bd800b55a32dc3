package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yana-hris/DevJobsAPI/internal/database"
	"github.com/yana-hris/DevJobsAPI/internal/model"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an Admin account",
	Long: `create-admin inserts a user with the Admin role. Without --password a
random password is generated and printed once. With --prompt the email and
password are read from stdin.`,
	RunE: runCreateAdmin,
}

func init() {
	f := createAdminCmd.Flags()
	f.String("email", "", "admin email (default admin_<random>@devjobs.local)")
	f.String("name", "DevJobs Admin", "admin full name")
	f.String("password", "", "admin password, at least 6 characters")
	f.Bool("prompt", false, "read email and password interactively")
}

// generateRandomString creates a random hex string of n bytes.
func generateRandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type adminInput struct {
	name      string
	email     string
	password  string
	generated bool
}

func readAdminInput(in io.Reader, out io.Writer) (adminInput, error) {
	reader := bufio.NewReader(in)
	ask := func(label string) string {
		fmt.Fprint(out, label)
		s, _ := reader.ReadString('\n')
		return strings.TrimSpace(s)
	}

	input := adminInput{name: "DevJobs Admin"}
	input.email = strings.ToLower(ask("Enter email: "))
	input.password = ask("Enter password: ")
	if ask("Confirm password: ") != input.password {
		return input, errors.New("passwords do not match")
	}
	return input, nil
}

func adminInputFromFlags(cmd *cobra.Command) (adminInput, error) {
	f := cmd.Flags()
	name, _ := f.GetString("name")
	email, _ := f.GetString("email")
	password, _ := f.GetString("password")
	input := adminInput{name: name, email: strings.ToLower(email), password: password}

	if input.email == "" {
		suffix, err := generateRandomString(4)
		if err != nil {
			return input, err
		}
		input.email = "admin_" + suffix + "@devjobs.local"
	}
	if input.password == "" {
		pw, err := generateRandomString(8)
		if err != nil {
			return input, err
		}
		input.password = pw
		input.generated = true
	}
	return input, nil
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	var (
		input adminInput
		err   error
	)
	if prompt, _ := cmd.Flags().GetBool("prompt"); prompt {
		input, err = readAdminInput(cmd.InOrStdin(), cmd.OutOrStdout())
	} else {
		input, err = adminInputFromFlags(cmd)
	}
	if err != nil {
		return err
	}
	if len(input.password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}

	_, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := database.SeedRoles(db.DB); err != nil {
		return err
	}
	admin, err := database.EnsureUser(db.DB, input.name, input.email, input.password, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	if admin.Role.Name != model.RoleAdmin {
		return fmt.Errorf("user %s already exists with role %s", admin.Email, admin.Role.Name)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Admin account ready")
	fmt.Fprintln(out, "======================================")
	fmt.Fprintf(out, "Email:    %s\n", admin.Email)
	if input.generated {
		fmt.Fprintf(out, "Password: %s\n", input.password)
	}
	fmt.Fprintln(out, "======================================")
	return nil
}
