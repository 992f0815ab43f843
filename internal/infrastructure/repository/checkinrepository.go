package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/mappers"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

type checkInRepository struct {
	db     *gorm.DB
	mapper *mappers.CheckInMapper
}

// NewCheckInRepository creates a gorm-backed admission record repository.
func NewCheckInRepository(db *gorm.DB) checkin.Repository {
	return &checkInRepository{
		db:     db,
		mapper: mappers.NewCheckInMapper(),
	}
}

func (r *checkInRepository) Create(ctx context.Context, c *checkin.CheckIn) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("create check-in: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *checkInRepository) List(ctx context.Context, tenantID uint, filter checkin.Filter) ([]*checkin.CheckIn, int64, error) {
	query := r.filtered(ctx, tenantID, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count check-ins: %w", err)
	}

	var modelList []models.CheckInModel
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list check-ins: %w", err)
	}

	records := make([]*checkin.CheckIn, 0, len(modelList))
	for i := range modelList {
		records = append(records, r.mapper.ToDomain(&modelList[i]))
	}
	return records, total, nil
}

func (r *checkInRepository) CountByStatus(ctx context.Context, tenantID uint, filter checkin.Filter) (map[checkin.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.filtered(ctx, tenantID, filter).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count check-ins by status: %w", err)
	}

	counts := make(map[checkin.Status]int64, len(rows))
	for _, row := range rows {
		counts[checkin.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *checkInRepository) CountByTerminal(ctx context.Context, terminalID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Where("terminal_id = ?", terminalID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count check-ins by terminal: %w", err)
	}
	return count, nil
}

func (r *checkInRepository) filtered(ctx context.Context, tenantID uint, filter checkin.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.CheckInModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", filter.To.UnixMilli())
	}
	if filter.MemberID != 0 {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.TerminalID != 0 {
		query = query.Where("terminal_id = ?", filter.TerminalID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	return query
}
