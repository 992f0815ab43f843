package usecases

import (
	"context"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
)

// CredentialSigner mints signed check-in credentials.
type CredentialSigner interface {
	Issue(memberID, tenantID uint) (token string, expiresAt time.Time, err error)
}

// CredentialVerifier checks presented credentials. An expired credential
// with an authentic signature returns the identity alongside
// checkin.ErrCredentialExpired; other failures return
// checkin.ErrCredentialInvalid.
type CredentialVerifier interface {
	Verify(token string) (*checkin.Credential, error)
}

// IssueCredentialExecutor defines the interface for issuing credentials
type IssueCredentialExecutor interface {
	Execute(ctx context.Context, cmd IssueCredentialCommand) (*dto.CredentialDTO, error)
}

// ValidateAdmissionExecutor defines the interface for validating admissions
type ValidateAdmissionExecutor interface {
	Execute(ctx context.Context, cmd ValidateAdmissionCommand) (*dto.ValidationResultDTO, error)
}

// ManualCheckInExecutor defines the interface for manual check-ins
type ManualCheckInExecutor interface {
	Execute(ctx context.Context, cmd ManualCheckInCommand) (*dto.CheckInDTO, error)
}

// ListCheckInsExecutor defines the interface for listing check-in history
type ListCheckInsExecutor interface {
	Execute(ctx context.Context, cmd ListCheckInsCommand) (*dto.HistoryDTO, error)
}
