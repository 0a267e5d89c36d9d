package cli

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bookhive/bookhive/internal/auth"
	"github.com/bookhive/bookhive/internal/config"
	"github.com/bookhive/bookhive/internal/database"
)

// CreateUserCommand creates a local account without going through the HTTP
// signup flow. Useful for bootstrapping the first administrator.
type CreateUserCommand struct {
	Username     string
	Email        string
	Password     string
	Staff        bool
	DatabasePath string
}

// NewCreateUserCommand creates a new CreateUserCommand
func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{}
}

// ParseFlags parses command line flags
func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username for the new account (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email address for the new account (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password (prompted interactively if not given)")
	fs.BoolVar(&cmd.Staff, "staff", false, "Grant the staff flag to the new account")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the application database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a local user account directly in the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Create an administrator, prompting for the password:\n")
		fmt.Fprintf(os.Stderr, "  %s create-user -username admin -email admin@example.com -staff\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" {
		return fmt.Errorf("-username is required")
	}
	if cmd.Email == "" {
		return fmt.Errorf("-email is required")
	}

	return nil
}

// Run executes the command
func (cmd *CreateUserCommand) Run() error {
	password := cmd.Password
	if password == "" {
		entered, err := promptPassword("Password: ")
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

	cfg := config.NewConfig().Auth
	service := auth.NewService(db.DB, cfg)

	user, err := service.CreateUser(cmd.Username, cmd.Email, password, cmd.Staff)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	role := "user"
	if user.IsStaff {
		role = "staff"
	}
	fmt.Printf("Created %s account %q (ID %d)\n", role, user.Username, user.ID)
	return nil
}

// promptPassword reads a password from the terminal without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
