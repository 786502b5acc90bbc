package commands

import (
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/config"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the REST configuration shared by the server and the CLI.
// An empty path falls back to defaults, CONFIG_PATH and GGEA_ environment variables.
func loadConfig(path string) (*config.RestConfig, error) {
	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
