package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/bookhive/bookhive/internal/auth"
	"github.com/bookhive/bookhive/internal/config"
	"github.com/bookhive/bookhive/internal/database"
	"github.com/bookhive/bookhive/internal/entities"
)

// ResetPasswordCommand sets a new password for an existing account without
// requiring the old one. For operators who locked themselves out.
type ResetPasswordCommand struct {
	Username     string
	Password     string
	DatabasePath string
}

// NewResetPasswordCommand creates a new ResetPasswordCommand
func NewResetPasswordCommand() *ResetPasswordCommand {
	return &ResetPasswordCommand{}
}

// ParseFlags parses command line flags
func (cmd *ResetPasswordCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username of the account to reset (required)")
	fs.StringVar(&cmd.Password, "password", "", "New password (prompted interactively if not given)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the application database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset-password [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Reset an account's password and clear any login lockout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" {
		return fmt.Errorf("-username is required")
	}

	return nil
}

// Run executes the command
func (cmd *ResetPasswordCommand) Run() error {
	password := cmd.Password
	if password == "" {
		entered, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		confirmed, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if entered != confirmed {
			return fmt.Errorf("passwords do not match")
		}
		password = entered
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var user entities.User
	if err := db.DB.Where("username = ?", cmd.Username).First(&user).Error; err != nil {
		return fmt.Errorf("user %q not found", cmd.Username)
	}

	cfg := config.NewConfig().Auth
	hash, err := auth.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	updates := map[string]any{
		"password_hash":      hash,
		"failed_login_count": 0,
		"locked_until":       nil,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	fmt.Printf("Password for %q has been reset\n", user.Username)
	return nil
}
