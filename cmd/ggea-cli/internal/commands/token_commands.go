package commands

import (
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/cryptography"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TokenCommandHandler issues and inspects access tokens signed with the configured secret
type TokenCommandHandler struct {
	logger logger.Logger
}

// NewTokenCommandHandler initializes and returns a TokenCommandHandler instance
func NewTokenCommandHandler() (*TokenCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TokenCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *TokenCommandHandler) tokenManager(cmd *cobra.Command) (auth.TokenManager, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return cryptography.NewJWTManager(&cfg.Security)
}

// IssueTokenCmd prints a signed access token for the given identity
func (commandHandler *TokenCommandHandler) IssueTokenCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}

	manager, err := commandHandler.tokenManager(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	token, err := manager.GenerateJWT(&auth.Identity{Username: username, Email: email})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
}

// InspectTokenCmd validates a token and prints the identity it carries
func (commandHandler *TokenCommandHandler) InspectTokenCmd(cmd *cobra.Command, _ []string) {
	token, err := cmd.Flags().GetString("token")
	if err != nil {
		commandHandler.logger.Error("invalid token flag ", err)
		return
	}

	manager, err := commandHandler.tokenManager(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	identity, err := manager.RetrieveDetailsFromJWT(token)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "username: %s\nemail: %s\n", identity.Username, identity.Email)
}

// InitTokenCommands registers the token command group
func InitTokenCommands(rootCmd *cobra.Command) error {
	handler, err := NewTokenCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create token command handler: %w", err)
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and inspect access tokens",
	}
	tokenCmd.PersistentFlags().StringP("config", "", "", "Path to the REST configuration file")

	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue an access token",
		Run:   handler.IssueTokenCmd,
	}
	issueCmd.Flags().StringP("username", "", "", "Username claim")
	issueCmd.Flags().StringP("email", "", "", "Email claim")
	_ = issueCmd.MarkFlagRequired("username")
	_ = issueCmd.MarkFlagRequired("email")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Validate an access token and print its identity",
		Run:   handler.InspectTokenCmd,
	}
	inspectCmd.Flags().StringP("token", "", "", "Access token without prefix")
	_ = inspectCmd.MarkFlagRequired("token")

	tokenCmd.AddCommand(issueCmd, inspectCmd)
	rootCmd.AddCommand(tokenCmd)

	return nil
}
