package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/mappers"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

type memberRepository struct {
	db     *gorm.DB
	mapper *mappers.MemberMapper
}

// NewMemberRepository creates a read-only repository over the members table.
func NewMemberRepository(db *gorm.DB) member.ReadRepository {
	return &memberRepository{
		db:     db,
		mapper: mappers.NewMemberMapper(),
	}
}

func (r *memberRepository) GetByIDAndTenant(ctx context.Context, id, tenantID uint) (*member.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by id and tenant: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *memberRepository) GetByUserID(ctx context.Context, userID uint) (*member.Member, error) {
	var model models.MemberModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by user id: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}
