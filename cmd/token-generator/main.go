// Command token-generator prints an access token for a user ID, signed with
// the configured JWT secret. It is intended for local development against
// the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/config"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("token-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	user := fs.String("user", "", "user ID to issue the token for (random if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID := uuid.New()
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			return fmt.Errorf("invalid user ID %q: %w", *user, err)
		}
		userID = parsed
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return printToken(ctx, cfg.Auth, userID, stdout)
}

// printToken writes the user ID and a signed token for it to out.
func printToken(ctx context.Context, cfg config.AuthConfig, userID uuid.UUID, out io.Writer) error {
	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := jwtService.GenerateToken(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	_, err = fmt.Fprintf(out, "User ID: %s\nToken: %s\n", userID, token)
	return err
}
