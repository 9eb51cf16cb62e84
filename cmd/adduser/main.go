// Command adduser creates an already active account, bypassing the email activation step.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// dbConfig is the subset of the service configuration adduser needs.
type dbConfig struct {
	PGHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PGPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PGUser     string `envconfig:"POSTGRES_USER" default:"user"`
	PGPassword string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PGDB       string `envconfig:"POSTGRES_DB" default:"database"`
}

func (c dbConfig) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// userCreator inserts a user row.
type userCreator interface {
	Create(ctx context.Context, username, email, passwordHash string, active bool) (*models.UserDB, error)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, openRepository); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openRepository connects to the configured database.
func openRepository(ctx context.Context, configPath string) (userCreator, func(), error) {
	_ = godotenv.Load(configPath)

	var cfg dbConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, nil, fmt.Errorf("process env: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return repositories.NewUserWriteRepository(db), func() { _ = db.Close() }, nil
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	open func(ctx context.Context, configPath string) (userCreator, func(), error),
) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	email := fs.String("email", "", "Email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	configPath := fs.String("c", "config.env", "Path to configuration file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" || *email == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> -email <email> [-password <password>] [-c <config>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: user, email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if len(strings.TrimSpace(password)) < services.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", services.MinPasswordLength)
	}

	users, closeFn, err := open(ctx, *configPath)
	if err != nil {
		return err
	}
	defer closeFn()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := users.Create(ctx, *username, *email, string(hash), true)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateUsername):
			return fmt.Errorf("user %s already exists", *username)
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return fmt.Errorf("email %s is already in use", *email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %s\n", user.Username, user.UserID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
