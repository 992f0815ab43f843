package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/biztime"
	apperrors "github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/goroutine"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

const deniedNoAccessReason = "access denied"

// ValidateAdmissionCommand carries one presented credential and the
// terminal it was scanned at, when any. Method defaults to credential.
type ValidateAdmissionCommand struct {
	Credential  string
	TerminalSID string
	Method      string
}

func (c ValidateAdmissionCommand) method() checkin.Method {
	if c.Method == "" {
		return checkin.MethodCredential
	}
	return checkin.Method(c.Method)
}

// ValidateAdmissionUseCase decides one admission attempt. Each call is a
// single stateless decision; two validations of one live credential may
// both succeed. Deduplication of double-scans belongs to the kiosk.
type ValidateAdmissionUseCase struct {
	verifier  CredentialVerifier
	members   member.ReadRepository
	terminals terminal.Repository
	checkIns  checkin.Repository
	logger    logger.Interface
}

// NewValidateAdmissionUseCase creates the use case.
func NewValidateAdmissionUseCase(
	verifier CredentialVerifier,
	members member.ReadRepository,
	terminals terminal.Repository,
	checkIns checkin.Repository,
	logger logger.Interface,
) *ValidateAdmissionUseCase {
	return &ValidateAdmissionUseCase{
		verifier:  verifier,
		members:   members,
		terminals: terminals,
		checkIns:  checkIns,
		logger:    logger,
	}
}

// Execute runs the ordered admission checks. Denials before member
// resolution leak no member data and persist nothing; an expired but
// authentic credential is recorded against its tenant without a member
// reference; denials after resolution are recorded and return the
// sanitized member summary.
func (uc *ValidateAdmissionUseCase) Execute(ctx context.Context, cmd ValidateAdmissionCommand) (*dto.ValidationResultDTO, error) {
	method := cmd.method()
	if !method.IsValid() {
		return nil, apperrors.NewValidationError("unsupported check-in method")
	}

	cred, err := uc.verifier.Verify(cmd.Credential)
	if err != nil {
		if errors.Is(err, checkin.ErrCredentialExpired) {
			return uc.denyExpired(ctx, cred, cmd.TerminalSID, method)
		}
		return &dto.ValidationResultDTO{
			Status: string(checkin.StatusDeniedNoAccess),
			Reason: deniedNoAccessReason,
			Sound:  true,
		}, nil
	}

	m, err := uc.members.GetByIDAndTenant(ctx, cred.MemberID, cred.TenantID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if m == nil {
		return &dto.ValidationResultDTO{
			Status: string(checkin.StatusDeniedNoAccess),
			Reason: deniedNoAccessReason,
			Sound:  true,
		}, nil
	}

	var term *terminal.Terminal
	sound := true
	if cmd.TerminalSID != "" {
		term, err = uc.terminals.GetBySID(ctx, cmd.TerminalSID)
		if err != nil {
			return nil, fmt.Errorf("resolve terminal: %w", err)
		}
		if term == nil || !term.IsActive() || term.TenantID() != cred.TenantID {
			// Cross-tenant and broken-terminal scans stay anonymous.
			return &dto.ValidationResultDTO{
				Status: string(checkin.StatusDeniedNoAccess),
				Reason: deniedNoAccessReason,
				Sound:  true,
			}, nil
		}
		sound = term.Settings().SoundEnabled()
		defer uc.touchLastSeen(term.ID())
	}

	if !m.Status().IsActive() {
		return uc.recordOutcome(ctx, cred.TenantID, m, term, method, checkin.StatusDeniedInactive, "member is not active", sound)
	}

	if term != nil {
		if ok, window := term.AdmitsAt(time.Now(), biztime.Location()); !ok {
			reason := "outside opening hours"
			if window != "" {
				reason = fmt.Sprintf("outside opening hours (%s)", window)
			}
			return uc.recordOutcome(ctx, cred.TenantID, m, term, method, checkin.StatusDeniedOutsideHours, reason, sound)
		}
	}

	return uc.recordOutcome(ctx, cred.TenantID, m, term, method, checkin.StatusSuccess, "", sound)
}

func (uc *ValidateAdmissionUseCase) denyExpired(ctx context.Context, cred *checkin.Credential, terminalSID string, method checkin.Method) (*dto.ValidationResultDTO, error) {
	// Signature was authentic, so the tenant attribution can be trusted
	// even though the member is never resolved.
	var terminalID *uint
	if terminalSID != "" {
		term, err := uc.terminals.GetBySID(ctx, terminalSID)
		if err != nil {
			return nil, fmt.Errorf("resolve terminal: %w", err)
		}
		if term != nil && term.IsActive() && term.TenantID() == cred.TenantID {
			tid := term.ID()
			terminalID = &tid
			defer uc.touchLastSeen(tid)
		}
	}
	rec := checkin.NewCheckIn(cred.TenantID, nil, terminalID, method, checkin.StatusDeniedExpired, "credential expired")
	if err := uc.checkIns.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("record expired attempt: %w", err)
	}
	recID := rec.ID()
	return &dto.ValidationResultDTO{
		Status:    string(checkin.StatusDeniedExpired),
		Reason:    "credential expired",
		CheckInID: &recID,
		Sound:     true,
	}, nil
}

func (uc *ValidateAdmissionUseCase) recordOutcome(
	ctx context.Context,
	tenantID uint,
	m *member.Member,
	term *terminal.Terminal,
	method checkin.Method,
	status checkin.Status,
	reason string,
	sound bool,
) (*dto.ValidationResultDTO, error) {
	memberID := m.ID()
	var terminalID *uint
	if term != nil {
		tid := term.ID()
		terminalID = &tid
	}

	rec := checkin.NewCheckIn(tenantID, &memberID, terminalID, method, status, reason)
	if err := uc.checkIns.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("record admission outcome: %w", err)
	}

	recID := rec.ID()
	return &dto.ValidationResultDTO{
		Valid:     status.IsSuccess(),
		Status:    string(status),
		Reason:    reason,
		Member:    dto.MemberSummaryFromDomain(m.Summary()),
		CheckInID: &recID,
		Sound:     sound,
	}, nil
}

// touchLastSeen is fire-and-forget. A failed update never affects the
// admission decision.
func (uc *ValidateAdmissionUseCase) touchLastSeen(terminalID uint) {
	goroutine.SafeGo(uc.logger, "terminal-last-seen", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.terminals.UpdateLastSeen(ctx, terminalID, time.Now().UTC()); err != nil {
			uc.logger.Warnw("failed to update terminal last seen",
				"terminal_id", terminalID,
				"error", err,
			)
		}
	})
}
