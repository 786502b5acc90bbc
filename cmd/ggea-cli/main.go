// Package main is the entry point for the ggea-cli application.
// It registers the operational sub-commands (migrate, hash, otp, token) and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/ggea-team/gotta-guess-em-all/cmd/ggea-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "ggea-cli",
		Short: "Operational tooling for the Gotta Guess'Em All backend",
		Long: `ggea-cli bundles maintenance tasks for the Gotta Guess'Em All backend.
Applies database migrations, generates and verifies password hashes,
provisions TOTP secrets and issues or inspects access tokens.

Commands reading the REST configuration honour --config, CONFIG_PATH
and GGEA_ prefixed environment variables, e.g.
- GGEA_SECURITY__JWT_SECRET_KEY
- GGEA_SECURITY__HASHING_SALT
- GGEA_DATABASE__DSN`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitHashCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize hash commands: %w", err)
	}

	if err := commands.InitOTPCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize OTP commands: %w", err)
	}

	if err := commands.InitTokenCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize token commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
