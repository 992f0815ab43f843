package usecases

import (
	"context"
	"fmt"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

// ManualCheckInCommand records a front-desk entry without a credential.
type ManualCheckInCommand struct {
	TenantID uint
	MemberID uint
	Note     string
}

// ManualCheckInUseCase lets staff admit a member directly. The record
// carries no terminal reference.
type ManualCheckInUseCase struct {
	members  member.ReadRepository
	checkIns checkin.Repository
	logger   logger.Interface
}

// NewManualCheckInUseCase creates the use case.
func NewManualCheckInUseCase(
	members member.ReadRepository,
	checkIns checkin.Repository,
	logger logger.Interface,
) *ManualCheckInUseCase {
	return &ManualCheckInUseCase{
		members:  members,
		checkIns: checkIns,
		logger:   logger,
	}
}

// Execute validates the member and inserts a manual admission record.
func (uc *ManualCheckInUseCase) Execute(ctx context.Context, cmd ManualCheckInCommand) (*dto.CheckInDTO, error) {
	if cmd.MemberID == 0 {
		return nil, errors.NewValidationError("member_id is required")
	}

	m, err := uc.members.GetByIDAndTenant(ctx, cmd.MemberID, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("member not found")
	}
	if !m.Status().IsActive() {
		return nil, errors.NewForbiddenError("member is not active")
	}

	memberID := m.ID()
	rec := checkin.NewCheckIn(cmd.TenantID, &memberID, nil, checkin.MethodManual, checkin.StatusSuccess, cmd.Note)
	if err := uc.checkIns.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("record manual check-in: %w", err)
	}

	uc.logger.Infow("manual check-in recorded",
		"tenant_id", cmd.TenantID,
		"member_id", memberID,
	)

	result := dto.CheckInFromDomain(rec)
	return &result, nil
}
