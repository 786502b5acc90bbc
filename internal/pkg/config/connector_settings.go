package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BlobConnectorSettings configures where uploaded pokemon images and profile photos are stored
type BlobConnectorSettings struct {
	CloudProvider    string `mapstructure:"cloud_provider" validate:"required,oneof=azure aws local"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
	Region           string `mapstructure:"region"`
	Endpoint         string `mapstructure:"endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	LocalDir         string `mapstructure:"local_dir"`
	PokemonImageDir  string `mapstructure:"pokemon_image_dir" validate:"required"`
	ProfilePhotoDir  string `mapstructure:"profile_photo_dir" validate:"required"`
}

// Validate checks that all fields in BlobConnectorSettings are valid
func (s *BlobConnectorSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BlobConnectorSettings: %w", err)
	}

	switch s.CloudProvider {
	case AzureCloudProvider:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for %s", s.CloudProvider)
		}
	case AwsCloudProvider:
		if s.ContainerName == "" || s.Region == "" {
			return fmt.Errorf("bucket (container name) and region are required for %s", s.CloudProvider)
		}
	case LocalCloudProvider:
		if s.LocalDir == "" {
			return fmt.Errorf("local dir is required for %s", s.CloudProvider)
		}
	}

	return nil
}

// MailSettings configures the SMTP relay used for verification emails.
// When Enabled is false the mailer only logs the verification code.
type MailSettings struct {
	Enabled             bool   `mapstructure:"enabled"`
	Host                string `mapstructure:"host"`
	Port                int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	From                string `mapstructure:"from" validate:"omitempty,email"`
	VerificationSubject string `mapstructure:"verification_subject" validate:"required"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}

	if s.Enabled && (s.Host == "" || s.Port == 0 || s.From == "") {
		return fmt.Errorf("host, port and sender address are required when mail is enabled")
	}

	return nil
}
