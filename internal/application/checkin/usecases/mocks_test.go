package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockMemberRepository struct {
	getByIDAndTenantFunc func(ctx context.Context, id, tenantID uint) (*member.Member, error)
	getByUserIDFunc      func(ctx context.Context, userID uint) (*member.Member, error)
}

func (m *mockMemberRepository) GetByIDAndTenant(ctx context.Context, id, tenantID uint) (*member.Member, error) {
	if m.getByIDAndTenantFunc != nil {
		return m.getByIDAndTenantFunc(ctx, id, tenantID)
	}
	return nil, nil
}

func (m *mockMemberRepository) GetByUserID(ctx context.Context, userID uint) (*member.Member, error) {
	if m.getByUserIDFunc != nil {
		return m.getByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockTerminalRepository struct {
	createFunc            func(ctx context.Context, t *terminal.Terminal) error
	updateFunc            func(ctx context.Context, t *terminal.Terminal) error
	deleteFunc            func(ctx context.Context, tid uint) error
	getBySIDFunc          func(ctx context.Context, sid string) (*terminal.Terminal, error)
	getBySIDAndTenantFunc func(ctx context.Context, sid string, tenantID uint) (*terminal.Terminal, error)
	listFunc              func(ctx context.Context, tenantID uint, filter terminal.Filter) ([]*terminal.Terminal, int64, error)
	updateLastSeenFunc    func(ctx context.Context, tid uint, at time.Time) error

	lastSeenCalls chan uint
}

func (m *mockTerminalRepository) Create(ctx context.Context, t *terminal.Terminal) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}

func (m *mockTerminalRepository) Update(ctx context.Context, t *terminal.Terminal) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTerminalRepository) Delete(ctx context.Context, tid uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, tid)
	}
	return nil
}

func (m *mockTerminalRepository) GetBySID(ctx context.Context, sid string) (*terminal.Terminal, error) {
	if m.getBySIDFunc != nil {
		return m.getBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockTerminalRepository) GetBySIDAndTenant(ctx context.Context, sid string, tenantID uint) (*terminal.Terminal, error) {
	if m.getBySIDAndTenantFunc != nil {
		return m.getBySIDAndTenantFunc(ctx, sid, tenantID)
	}
	return nil, nil
}

func (m *mockTerminalRepository) List(ctx context.Context, tenantID uint, filter terminal.Filter) ([]*terminal.Terminal, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, filter)
	}
	return nil, 0, nil
}

func (m *mockTerminalRepository) UpdateLastSeen(ctx context.Context, tid uint, at time.Time) error {
	if m.lastSeenCalls != nil {
		m.lastSeenCalls <- tid
	}
	if m.updateLastSeenFunc != nil {
		return m.updateLastSeenFunc(ctx, tid, at)
	}
	return nil
}

type mockCheckInRepository struct {
	createFunc        func(ctx context.Context, c *checkin.CheckIn) error
	listFunc          func(ctx context.Context, tenantID uint, filter checkin.Filter) ([]*checkin.CheckIn, int64, error)
	countByStatusFunc func(ctx context.Context, tenantID uint, filter checkin.Filter) (map[checkin.Status]int64, error)
	countByTermFunc   func(ctx context.Context, terminalID uint) (int64, error)

	created []*checkin.CheckIn
}

func (m *mockCheckInRepository) Create(ctx context.Context, c *checkin.CheckIn) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	m.created = append(m.created, c)
	return nil
}

func (m *mockCheckInRepository) List(ctx context.Context, tenantID uint, filter checkin.Filter) ([]*checkin.CheckIn, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, filter)
	}
	return nil, 0, nil
}

func (m *mockCheckInRepository) CountByStatus(ctx context.Context, tenantID uint, filter checkin.Filter) (map[checkin.Status]int64, error) {
	if m.countByStatusFunc != nil {
		return m.countByStatusFunc(ctx, tenantID, filter)
	}
	return map[checkin.Status]int64{}, nil
}

func (m *mockCheckInRepository) CountByTerminal(ctx context.Context, terminalID uint) (int64, error) {
	if m.countByTermFunc != nil {
		return m.countByTermFunc(ctx, terminalID)
	}
	return 0, nil
}

type mockCredentialSigner struct {
	issueFunc func(memberID, tenantID uint) (string, time.Time, error)
}

func (m *mockCredentialSigner) Issue(memberID, tenantID uint) (string, time.Time, error) {
	if m.issueFunc != nil {
		return m.issueFunc(memberID, tenantID)
	}
	return "signed-credential", time.Now().Add(60 * time.Second), nil
}

type mockCredentialVerifier struct {
	verifyFunc func(token string) (*checkin.Credential, error)
}

func (m *mockCredentialVerifier) Verify(token string) (*checkin.Credential, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(token)
	}
	return nil, checkin.ErrCredentialInvalid
}

func activeMember(id, tenantID uint) *member.Member {
	return member.ReconstructMember(id, tenantID, 100, "Ada", "Lovelace", "photo.jpg", "gold", member.StatusActive, time.Now())
}

func frozenMember(id, tenantID uint) *member.Member {
	return member.ReconstructMember(id, tenantID, 100, "Ada", "Lovelace", "", "", member.StatusFrozen, time.Now())
}
