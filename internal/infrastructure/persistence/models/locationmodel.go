package models

import "github.com/igiffrekt/MusqlApp-sub002/internal/shared/constants"

// LocationModel maps the tenant management context's locations table.
// Read-only from the check-in context.
type LocationModel struct {
	ID       uint   `gorm:"primaryKey"`
	TenantID uint   `gorm:"column:tenant_id"`
	Name     string `gorm:"column:name"`
}

// TableName returns the table name for LocationModel
func (LocationModel) TableName() string {
	return constants.TableLocations
}
