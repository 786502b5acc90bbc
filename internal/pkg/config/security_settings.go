package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// SecuritySettings groups everything the auth flow needs: JWT issuance, the
// double-layered password hashing and TOTP two-factor parameters.
type SecuritySettings struct {
	JWTSecretKey         string `mapstructure:"jwt_secret_key" validate:"required,min=16"`
	JWTAlgorithm         string `mapstructure:"jwt_algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	JWTTokenPrefix       string `mapstructure:"jwt_token_prefix" validate:"required"`
	JWTSubject           string `mapstructure:"jwt_subject" validate:"required"`
	JWTExpirationMinutes int    `mapstructure:"jwt_expiration_minutes" validate:"required,min=1"`
	AuthHeaderName       string `mapstructure:"auth_header_name" validate:"required"`

	HashingSalt             string `mapstructure:"hashing_salt" validate:"required"`
	PasswordAlgorithmLayer1 string `mapstructure:"password_algorithm_layer_1" validate:"required,oneof=a2 bc 256 512"`
	PasswordAlgorithmLayer2 string `mapstructure:"password_algorithm_layer_2" validate:"required,oneof=a2 bc 256 512"`

	OTPIssuer      string        `mapstructure:"otp_issuer" validate:"required"`
	OTPLoginWindow time.Duration `mapstructure:"otp_login_window" validate:"gt=0"`
}

// JWTExpiration returns the lifetime of issued access tokens
func (s *SecuritySettings) JWTExpiration() time.Duration {
	return time.Duration(s.JWTExpirationMinutes) * time.Minute
}

// Validate checks that all fields in SecuritySettings are valid
func (s *SecuritySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SecuritySettings: %w", err)
	}

	return nil
}
