package commands

import (
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/cryptography"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// HashCommandHandler exposes the password hashing layers for inspection and key rotation
type HashCommandHandler struct {
	logger logger.Logger
}

// NewHashCommandHandler initializes and returns a HashCommandHandler instance
func NewHashCommandHandler() (*HashCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &HashCommandHandler{logger: loggerInstance}, nil
}

// GenerateHashCmd hashes salt and optional secret with the selected algorithm
func (commandHandler *HashCommandHandler) GenerateHashCmd(cmd *cobra.Command, _ []string) {
	algorithmID, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	salt, err := cmd.Flags().GetString("salt")
	if err != nil {
		commandHandler.logger.Error("invalid salt flag ", err)
		return
	}
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		commandHandler.logger.Error("invalid secret flag ", err)
		return
	}

	algorithm, err := cryptography.NewHashingAlgorithm(algorithmID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	hashed, err := algorithm.GenerateHash(salt, &secret)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), hashed)
}

// VerifyHashCmd checks salt and secret against an encoded hash
func (commandHandler *HashCommandHandler) VerifyHashCmd(cmd *cobra.Command, _ []string) {
	algorithmID, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	salt, err := cmd.Flags().GetString("salt")
	if err != nil {
		commandHandler.logger.Error("invalid salt flag ", err)
		return
	}
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		commandHandler.logger.Error("invalid secret flag ", err)
		return
	}
	hashed, err := cmd.Flags().GetString("hash")
	if err != nil {
		commandHandler.logger.Error("invalid hash flag ", err)
		return
	}

	algorithm, err := cryptography.NewHashingAlgorithm(algorithmID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ok, err := algorithm.IsHashVerified(salt+secret, hashed)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), ok)
}

// InitHashCommands registers the hash command group
func InitHashCommands(rootCmd *cobra.Command) error {
	handler, err := NewHashCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create hash command handler: %w", err)
	}

	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Generate and verify password hashes",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Hash a salt and secret",
		Run:   handler.GenerateHashCmd,
	}
	generateCmd.Flags().StringP("algorithm", "", config.HashingAlgorithmArgon2, "Hashing algorithm (a2, bc, 256, 512)")
	generateCmd.Flags().StringP("salt", "", "", "Salt prepended to the secret")
	generateCmd.Flags().StringP("secret", "", "", "Secret to hash")
	_ = generateCmd.MarkFlagRequired("salt")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a salt and secret against a hash",
		Run:   handler.VerifyHashCmd,
	}
	verifyCmd.Flags().StringP("algorithm", "", config.HashingAlgorithmArgon2, "Hashing algorithm (a2, bc, 256, 512)")
	verifyCmd.Flags().StringP("salt", "", "", "Salt prepended to the secret")
	verifyCmd.Flags().StringP("secret", "", "", "Secret to verify")
	verifyCmd.Flags().StringP("hash", "", "", "Encoded hash")
	_ = verifyCmd.MarkFlagRequired("hash")

	hashCmd.AddCommand(generateCmd, verifyCmd)
	rootCmd.AddCommand(hashCmd)

	return nil
}
