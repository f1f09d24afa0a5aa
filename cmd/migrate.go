package main

import (
	"fmt"

	"expense_tracker/internal/config"
	"expense_tracker/internal/repository/db"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

func newMigrateSubcommand(command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if cfg.DB.Driver == config.DriverMemory {
				return fmt.Errorf("migrate: driver %q has no schema", cfg.DB.Driver)
			}

			conn, dialect, err := db.Open(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			return db.Migrate(cmd.Context(), conn, dialect, command, log)
		},
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(
		newMigrateSubcommand(db.MigrateUp, "Apply all up migrations"),
		newMigrateSubcommand(db.MigrateDown, "Roll back the latest migration"),
		newMigrateSubcommand(db.MigrateStatus, "Print applied and pending migrations"),
	)
}
