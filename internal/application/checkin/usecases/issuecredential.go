package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/authorization"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

// IssueCredentialCommand carries the caller identity and, for staff
// callers, the target member.
type IssueCredentialCommand struct {
	UserID   uint
	TenantID uint
	Role     authorization.Role
	MemberID uint
}

// IssueCredentialUseCase mints a short-lived check-in credential. Minting
// is stateless; nothing is persisted.
type IssueCredentialUseCase struct {
	members member.ReadRepository
	signer  CredentialSigner
	logger  logger.Interface
}

// NewIssueCredentialUseCase creates the use case.
func NewIssueCredentialUseCase(
	members member.ReadRepository,
	signer CredentialSigner,
	logger logger.Interface,
) *IssueCredentialUseCase {
	return &IssueCredentialUseCase{
		members: members,
		signer:  signer,
		logger:  logger,
	}
}

// Execute resolves the bound member and mints a credential for them.
func (uc *IssueCredentialUseCase) Execute(ctx context.Context, cmd IssueCredentialCommand) (*dto.CredentialDTO, error) {
	target, err := uc.resolveMember(ctx, cmd)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.signer.Issue(target.ID(), cmd.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to sign credential",
			"member_id", target.ID(),
			"tenant_id", cmd.TenantID,
			"error", err,
		)
		return nil, fmt.Errorf("issue credential: %w", err)
	}

	return &dto.CredentialDTO{
		Credential:       token,
		ExpiresAt:        expiresAt.UTC(),
		ExpiresInSeconds: int(time.Until(expiresAt).Round(time.Second).Seconds()),
	}, nil
}

func (uc *IssueCredentialUseCase) resolveMember(ctx context.Context, cmd IssueCredentialCommand) (*member.Member, error) {
	if cmd.Role.IsStaff() {
		if cmd.MemberID == 0 {
			return nil, errors.NewValidationError("member_id is required")
		}
		target, err := uc.members.GetByIDAndTenant(ctx, cmd.MemberID, cmd.TenantID)
		if err != nil {
			return nil, fmt.Errorf("resolve member: %w", err)
		}
		if target == nil {
			return nil, errors.NewNotFoundError("member not found")
		}
		if !target.Status().IsActive() {
			return nil, errors.NewForbiddenError("member is not active")
		}
		return target, nil
	}

	target, err := uc.members.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve linked member: %w", err)
	}
	if target == nil {
		return nil, errors.NewBadRequestError("no member profile linked to this account")
	}
	if !target.Status().IsActive() {
		return nil, errors.NewForbiddenError("member is not active")
	}
	return target, nil
}
