package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

// AutoMigrateModels syncs the schema from the gorm models. Development
// convenience only; production deployments run the SQL migrations.
func AutoMigrateModels(db *gorm.DB) error {
	targets := []interface{}{
		&models.TerminalModel{},
		&models.CheckInModel{},
	}

	for _, target := range targets {
		if err := db.AutoMigrate(target); err != nil {
			return fmt.Errorf("auto migrate %T: %w", target, err)
		}
	}
	logger.Info("auto migration complete", "models", len(targets))
	return nil
}
