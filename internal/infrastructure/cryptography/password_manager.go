package cryptography

import (
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/domain/auth"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/validators"
)

type passwordManager struct {
	salt   string
	layer1 auth.HashingAlgorithm
	layer2 auth.HashingAlgorithm
	logger logger.Logger
}

// NewPasswordManager creates a PasswordManager from the security settings
func NewPasswordManager(settings *config.SecuritySettings, logger logger.Logger) (auth.PasswordManager, error) {
	layer1, err := NewHashingAlgorithm(settings.PasswordAlgorithmLayer1)
	if err != nil {
		return nil, fmt.Errorf("layer 1: %w", err)
	}
	layer2, err := NewHashingAlgorithm(settings.PasswordAlgorithmLayer2)
	if err != nil {
		return nil, fmt.Errorf("layer 2: %w", err)
	}

	return &passwordManager{
		salt:   settings.HashingSalt,
		layer1: layer1,
		layer2: layer2,
		logger: logger,
	}, nil
}

func (m *passwordManager) GenerateDoubleLayeredPassword(password string) (string, string, error) {
	if !validators.IsStrongPassword(password) {
		return "", "", auth.ErrWeakPassword
	}

	hashedSalt, err := m.layer1.GenerateHash(m.salt, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash salt with %s: %w", m.layer1, err)
	}

	hashedPassword, err := m.layer2.GenerateHash(hashedSalt, &password)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash password with %s: %w", m.layer2, err)
	}

	return hashedSalt, hashedPassword, nil
}

func (m *passwordManager) IsHashedPasswordVerified(hashedSalt, password, hashedPassword string) bool {
	ok, err := m.layer2.IsHashVerified(hashedSalt+password, hashedPassword)
	if err != nil {
		m.logger.Warn("Password hash could not be verified with ", m.layer2, ": ", err)
		return false
	}
	return ok
}
