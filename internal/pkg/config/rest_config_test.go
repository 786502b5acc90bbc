//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRestConfigYAML = `
port: "9000"
environment: DEV
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
security:
  jwt_secret_key: "a-very-long-test-secret-key"
  hashing_salt: "pepper"
  otp_login_window: 2m
blob_connector:
  cloud_provider: local
  local_dir: /tmp/ggea
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, testRestConfigYAML)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
		assert.Equal(t, ":memory:", cfg.Database.DSN)
		assert.Equal(t, 2*time.Minute, cfg.Security.OTPLoginWindow)
		assert.Equal(t, "/tmp/ggea", cfg.BlobConnector.LocalDir)

		// untouched defaults survive
		assert.Equal(t, "HS256", cfg.Security.JWTAlgorithm)
		assert.Equal(t, 10080, cfg.Security.JWTExpirationMinutes)
		assert.Equal(t, 5, cfg.RateLimit.Requests)
		assert.Equal(t, "pokemon_images", cfg.BlobConnector.PokemonImageDir)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfigFile(t, testRestConfigYAML)
		t.Setenv("GGEA_PORT", "9100")
		t.Setenv("GGEA_SECURITY__JWT_ALGORITHM", "HS512")

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9100", cfg.Port)
		assert.Equal(t, "HS512", cfg.Security.JWTAlgorithm)
	})

	t.Run("CONFIG_PATH takes precedence over argument", func(t *testing.T) {
		path := writeConfigFile(t, testRestConfigYAML)
		t.Setenv(ConfigPathEnvVar, path)

		cfg, err := InitializeRestConfig("/does/not/exist.yaml")
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Port)
	})

	t.Run("missing secrets fail validation", func(t *testing.T) {
		_, err := InitializeRestConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "port", envTransformFunc("GGEA_PORT"))
	assert.Equal(t, "security.jwt_secret_key", envTransformFunc("GGEA_SECURITY__JWT_SECRET_KEY"))
	assert.Equal(t, "blob_connector.local_dir", envTransformFunc("GGEA_BLOB_CONNECTOR__LOCAL_DIR"))
}

func TestSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      interface{ Validate() error }
		expectedError bool
	}{
		{
			name:          "postgres without dsn",
			settings:      &DatabaseSettings{Type: PostgresDbType},
			expectedError: true,
		},
		{
			name:          "sqlite without dsn",
			settings:      &DatabaseSettings{Type: SqliteDbType},
			expectedError: false,
		},
		{
			name:          "unknown database type",
			settings:      &DatabaseSettings{Type: "oracle", DSN: "x"},
			expectedError: true,
		},
		{
			name:          "idle exceeds open connections",
			settings:      &DatabaseSettings{Type: SqliteDbType, MaxOpenConns: 2, MaxIdleConns: 4},
			expectedError: true,
		},
		{
			name: "azure without connection string",
			settings: &BlobConnectorSettings{
				CloudProvider:   AzureCloudProvider,
				ContainerName:   "images",
				PokemonImageDir: "p",
				ProfilePhotoDir: "q",
			},
			expectedError: true,
		},
		{
			name: "aws bucket with region",
			settings: &BlobConnectorSettings{
				CloudProvider:   AwsCloudProvider,
				ContainerName:   "images",
				Region:          "eu-central-1",
				PokemonImageDir: "p",
				ProfilePhotoDir: "q",
			},
			expectedError: false,
		},
		{
			name:          "enabled mail without host",
			settings:      &MailSettings{Enabled: true, Port: 25, From: "noreply@ggea.io", VerificationSubject: "verify"},
			expectedError: true,
		},
		{
			name:          "disabled mail",
			settings:      &MailSettings{VerificationSubject: "verify"},
			expectedError: false,
		},
		{
			name: "unsupported password algorithm",
			settings: &SecuritySettings{
				JWTSecretKey:            "a-very-long-test-secret-key",
				JWTAlgorithm:            "HS256",
				JWTTokenPrefix:          "Bearer",
				JWTSubject:              "access",
				JWTExpirationMinutes:    10,
				AuthHeaderName:          "Authorization",
				HashingSalt:             "pepper",
				PasswordAlgorithmLayer1: "md5",
				PasswordAlgorithmLayer2: HashingAlgorithmBcrypt,
				OTPIssuer:               "GGEA",
				OTPLoginWindow:          time.Minute,
			},
			expectedError: true,
		},
		{
			name:          "zero rate limit window",
			settings:      &RateLimitSettings{Requests: 5},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
