package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/config"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/database"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/migration"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

var configPath string

// NewCommand creates the migrate subcommand.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  "Manage database migrations: apply pending migrations, roll back, and inspect status.",
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				return m.Up()
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Rollback the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				return m.Down()
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(m *migration.Manager) error {
				if err := m.Status(); err != nil {
					return err
				}
				version, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("current version: %d\n", version)
				return nil
			})
		},
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Sync schema from model definitions (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(func(_ *migration.Manager) error {
				return migration.AutoMigrateModels(database.Get())
			})
		},
	}
}

func withManager(fn func(m *migration.Manager) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(migration.NewManager(database.Get()))
}
