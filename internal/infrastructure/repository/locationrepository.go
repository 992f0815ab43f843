package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/location"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/mappers"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

type locationRepository struct {
	db     *gorm.DB
	mapper *mappers.LocationMapper
}

// NewLocationRepository creates a read-only repository over the locations table.
func NewLocationRepository(db *gorm.DB) location.ReadRepository {
	return &locationRepository{
		db:     db,
		mapper: mappers.NewLocationMapper(),
	}
}

func (r *locationRepository) GetByIDAndTenant(ctx context.Context, id, tenantID uint) (*location.Location, error) {
	var model models.LocationModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by id and tenant: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}
