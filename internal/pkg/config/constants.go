package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Cloud provider constants for the image store
const (
	AzureCloudProvider = "azure"
	AwsCloudProvider   = "aws"
	LocalCloudProvider = "local"
)

// Deployment environments
const (
	EnvironmentDevelopment = "DEV"
	EnvironmentStaging     = "STAGE"
	EnvironmentProduction  = "PROD"
)

// Hashing algorithm identifiers used for the two password layers
const (
	HashingAlgorithmArgon2 = "a2"
	HashingAlgorithmBcrypt = "bc"
	HashingAlgorithmSHA256 = "256"
	HashingAlgorithmSHA512 = "512"
)
