package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CorsSettings mirrors the options of the gin-contrib/cors middleware
type CorsSettings struct {
	AllowOrigins     []string      `mapstructure:"allow_origins" validate:"required,min=1"`
	AllowMethods     []string      `mapstructure:"allow_methods" validate:"required,min=1"`
	AllowHeaders     []string      `mapstructure:"allow_headers" validate:"required,min=1"`
	ExposeHeaders    []string      `mapstructure:"expose_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

// Validate checks that all fields in CorsSettings are valid
func (s *CorsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CorsSettings: %w", err)
	}

	return nil
}

// RateLimitSettings bounds how often a single client may hit the credential endpoints
type RateLimitSettings struct {
	Requests int           `mapstructure:"requests" validate:"required,min=1"`
	Window   time.Duration `mapstructure:"window" validate:"gt=0"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}

	return nil
}
