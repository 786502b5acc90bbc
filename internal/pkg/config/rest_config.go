package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the configuration file location
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvPrefix is stripped from environment variables before they are mapped onto config keys.
// GGEA_SECURITY__JWT_SECRET_KEY becomes security.jwt_secret_key.
const EnvPrefix = "GGEA_"

// RestConfig holds the configuration of the REST application
type RestConfig struct {
	Port            string                `mapstructure:"port" validate:"required"`
	Environment     string                `mapstructure:"environment" validate:"required,oneof=DEV STAGE PROD"`
	ShutdownTimeout time.Duration         `mapstructure:"shutdown_timeout" validate:"gt=0"`
	Logger          LoggerSettings        `mapstructure:"logger"`
	Database        DatabaseSettings      `mapstructure:"database"`
	Security        SecuritySettings      `mapstructure:"security"`
	Cors            CorsSettings          `mapstructure:"cors"`
	RateLimit       RateLimitSettings     `mapstructure:"rate_limit"`
	BlobConnector   BlobConnectorSettings `mapstructure:"blob_connector"`
	Mail            MailSettings          `mapstructure:"mail"`
}

// DefaultRestConfig returns the values applied before the file and environment layers
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port:            "8000",
		Environment:     EnvironmentDevelopment,
		ShutdownTimeout: 15 * time.Second,
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type:            SqliteDbType,
			Name:            "ggea",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
		},
		Security: SecuritySettings{
			JWTAlgorithm:            "HS256",
			JWTTokenPrefix:          "Bearer",
			JWTSubject:              "access",
			JWTExpirationMinutes:    60 * 24 * 7,
			AuthHeaderName:          "Authorization",
			PasswordAlgorithmLayer1: HashingAlgorithmArgon2,
			PasswordAlgorithmLayer2: HashingAlgorithmBcrypt,
			OTPIssuer:               "GGEA",
			OTPLoginWindow:          5 * time.Minute,
		},
		Cors: CorsSettings{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		RateLimit: RateLimitSettings{
			Requests: 5,
			Window:   120 * time.Second,
		},
		BlobConnector: BlobConnectorSettings{
			CloudProvider:   LocalCloudProvider,
			LocalDir:        "data",
			PokemonImageDir: "pokemon_images",
			ProfilePhotoDir: "profile_photos",
		},
		Mail: MailSettings{
			Port:                587,
			VerificationSubject: "Gotta Guess'Em All account verification",
		},
	}
}

// Validate checks that all fields in RestConfig and its nested settings are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	nested := []interface{ Validate() error }{
		&c.Logger,
		&c.Database,
		&c.Security,
		&c.Cors,
		&c.RateLimit,
		&c.BlobConnector,
		&c.Mail,
	}
	for _, s := range nested {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// InitializeRestConfig layers defaults, the YAML file at path (optional when empty)
// and GGEA_ prefixed environment variables, then validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultRestConfig(), "mapstructure"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		path = envPath
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &RestConfig{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "mapstructure"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func envTransformFunc(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
