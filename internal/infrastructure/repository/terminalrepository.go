package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/mappers"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

type terminalRepository struct {
	db     *gorm.DB
	mapper *mappers.TerminalMapper
}

// NewTerminalRepository creates a gorm-backed terminal repository.
func NewTerminalRepository(db *gorm.DB) terminal.Repository {
	return &terminalRepository{
		db:     db,
		mapper: mappers.NewTerminalMapper(),
	}
}

func (r *terminalRepository) Create(ctx context.Context, t *terminal.Terminal) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *terminalRepository) Update(ctx context.Context, t *terminal.Terminal) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("update terminal: %w", err)
	}
	return nil
}

func (r *terminalRepository) Delete(ctx context.Context, tid uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TerminalModel{}, tid)
	if result.Error != nil {
		return fmt.Errorf("delete terminal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return terminal.ErrTerminalNotFound
	}
	return nil
}

func (r *terminalRepository) GetBySID(ctx context.Context, sid string) (*terminal.Terminal, error) {
	var model models.TerminalModel
	err := r.db.WithContext(ctx).Where("device_id = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get terminal by sid: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *terminalRepository) GetBySIDAndTenant(ctx context.Context, sid string, tenantID uint) (*terminal.Terminal, error) {
	var model models.TerminalModel
	err := r.db.WithContext(ctx).
		Where("device_id = ? AND tenant_id = ?", sid, tenantID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get terminal by sid and tenant: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *terminalRepository) List(ctx context.Context, tenantID uint, filter terminal.Filter) ([]*terminal.Terminal, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.TerminalModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.LocationID != 0 {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count terminals: %w", err)
	}

	var modelList []models.TerminalModel
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list terminals: %w", err)
	}

	terminals := make([]*terminal.Terminal, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		terminals = append(terminals, t)
	}
	return terminals, total, nil
}

func (r *terminalRepository) UpdateLastSeen(ctx context.Context, tid uint, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.TerminalModel{}).
		Where("id = ?", tid).
		Update("last_seen_at", at.UnixMilli()).Error
	if err != nil {
		return fmt.Errorf("update terminal last seen: %w", err)
	}
	return nil
}
