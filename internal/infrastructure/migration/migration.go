package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

// Manager runs SQL migrations over the gorm connection using goose.
type Manager struct {
	db *gorm.DB
}

// NewManager creates a migration manager.
func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// Up applies all pending migrations.
func (m *Manager) Up() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	goose.SetBaseFS(scripts)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied")
	return nil
}

// Down rolls back the most recent migration.
func (m *Manager) Down() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	goose.SetBaseFS(scripts)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Down(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}
	logger.Info("migration rolled back")
	return nil
}

// Status logs the applied/pending state of every migration.
func (m *Manager) Status() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	goose.SetBaseFS(scripts)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	return goose.Status(sqlDB, "scripts")
}

// Version returns the current migration version.
func (m *Manager) Version() (int64, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return 0, fmt.Errorf("get sql db: %w", err)
	}

	goose.SetBaseFS(scripts)
	if err := goose.SetDialect("mysql"); err != nil {
		return 0, fmt.Errorf("set dialect: %w", err)
	}

	return goose.GetDBVersion(sqlDB)
}
