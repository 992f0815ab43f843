package models

import (
	"gorm.io/datatypes"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/constants"
)

// TerminalModel is the persistence model for check-in terminals.
type TerminalModel struct {
	ID         uint              `gorm:"primaryKey;autoIncrement"`
	DeviceID   string            `gorm:"column:device_id;size:32;not null;uniqueIndex:uk_terminals_device_id"`
	TenantID   uint              `gorm:"column:tenant_id;not null;index:idx_terminals_tenant_id"`
	LocationID *uint             `gorm:"column:location_id;index:idx_terminals_location_id"`
	Name       string            `gorm:"size:100;not null"`
	Active     bool              `gorm:"not null;default:true"`
	Settings   datatypes.JSONMap `gorm:"column:settings"`
	LastSeenAt *int64            `gorm:"column:last_seen_at"`
	CreatedAt  int64             `gorm:"autoCreateTime:milli"`
	UpdatedAt  int64             `gorm:"autoUpdateTime:milli"`
}

// TableName returns the table name for TerminalModel
func (TerminalModel) TableName() string {
	return constants.TableTerminals
}
