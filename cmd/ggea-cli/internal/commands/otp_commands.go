package commands

import (
	"fmt"
	"time"

	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/cryptography"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// OTPCommandHandler provisions TOTP secrets and derives codes, mainly for manual testing
type OTPCommandHandler struct {
	logger logger.Logger
}

// NewOTPCommandHandler initializes and returns an OTPCommandHandler instance
func NewOTPCommandHandler() (*OTPCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &OTPCommandHandler{logger: loggerInstance}, nil
}

// GenerateOTPCmd prints a fresh base32 secret and its provisioning URL
func (commandHandler *OTPCommandHandler) GenerateOTPCmd(cmd *cobra.Command, _ []string) {
	account, err := cmd.Flags().GetString("account")
	if err != nil {
		commandHandler.logger.Error("invalid account flag ", err)
		return
	}
	issuer, err := cmd.Flags().GetString("issuer")
	if err != nil {
		commandHandler.logger.Error("invalid issuer flag ", err)
		return
	}

	secret, authURL, err := cryptography.NewOTPManager(issuer).GenerateOTP(account)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "secret: %s\nurl: %s\n", secret, authURL)
}

// CodeOTPCmd prints the code currently valid for a secret
func (commandHandler *OTPCommandHandler) CodeOTPCmd(cmd *cobra.Command, _ []string) {
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		commandHandler.logger.Error("invalid secret flag ", err)
		return
	}

	code, err := cryptography.GenerateOTPCode(secret, time.Now())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), code)
}

// InitOTPCommands registers the otp command group
func InitOTPCommands(rootCmd *cobra.Command) error {
	handler, err := NewOTPCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create OTP command handler: %w", err)
	}

	otpCmd := &cobra.Command{
		Use:   "otp",
		Short: "TOTP helpers",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a TOTP secret and provisioning URL",
		Run:   handler.GenerateOTPCmd,
	}
	generateCmd.Flags().StringP("account", "", "", "Account name embedded in the provisioning URL")
	generateCmd.Flags().StringP("issuer", "", "GGEA", "Issuer embedded in the provisioning URL")
	_ = generateCmd.MarkFlagRequired("account")

	codeCmd := &cobra.Command{
		Use:   "code",
		Short: "Print the current code for a TOTP secret",
		Run:   handler.CodeOTPCmd,
	}
	codeCmd.Flags().StringP("secret", "", "", "Base32 TOTP secret")
	_ = codeCmd.MarkFlagRequired("secret")

	otpCmd.AddCommand(generateCmd, codeCmd)
	rootCmd.AddCommand(otpCmd)

	return nil
}
