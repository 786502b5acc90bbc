package commands

import (
	"fmt"

	"github.com/ggea-team/gotta-guess-em-all/internal/infrastructure/persistence"
	"github.com/ggea-team/gotta-guess-em-all/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the database schema outside of the REST server
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a MigrateCommandHandler instance
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates the accounts, profiles and pokemon_images tables
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database: ", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Schema migrated for ", cfg.Database.Type, " database")
	fmt.Fprintln(cmd.OutOrStdout(), "migrated")
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create migrate command handler: %w", err)
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	migrateCmd.Flags().StringP("config", "", "", "Path to the REST configuration file")
	rootCmd.AddCommand(migrateCmd)

	return nil
}
