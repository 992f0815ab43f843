package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/location"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func boolPtr(b bool) *bool    { return &b }
func uintPtr(v uint) *uint    { return &v }
func strPtr(s string) *string { return &s }

type mockTerminalRepository struct {
	createFunc            func(ctx context.Context, t *terminal.Terminal) error
	updateFunc            func(ctx context.Context, t *terminal.Terminal) error
	deleteFunc            func(ctx context.Context, tid uint) error
	getBySIDFunc          func(ctx context.Context, sid string) (*terminal.Terminal, error)
	getBySIDAndTenantFunc func(ctx context.Context, sid string, tenantID uint) (*terminal.Terminal, error)
	listFunc              func(ctx context.Context, tenantID uint, filter terminal.Filter) ([]*terminal.Terminal, int64, error)
	updateLastSeenFunc    func(ctx context.Context, tid uint, at time.Time) error
}

func (m *mockTerminalRepository) Create(ctx context.Context, t *terminal.Terminal) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	t.SetID(1)
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
	if m.updateLastSeenFunc != nil {
		return m.updateLastSeenFunc(ctx, tid, at)
	}
	return nil
}

type mockLocationRepository struct {
	getByIDAndTenantFunc func(ctx context.Context, id, tenantID uint) (*location.Location, error)
}

func (m *mockLocationRepository) GetByIDAndTenant(ctx context.Context, id, tenantID uint) (*location.Location, error) {
	if m.getByIDAndTenantFunc != nil {
		return m.getByIDAndTenantFunc(ctx, id, tenantID)
	}
	return nil, nil
}

type mockCheckInRepository struct {
	countByTermFunc func(ctx context.Context, terminalID uint) (int64, error)
}

func (m *mockCheckInRepository) Create(context.Context, *checkin.CheckIn) error {
	return nil
}

func (m *mockCheckInRepository) List(context.Context, uint, checkin.Filter) ([]*checkin.CheckIn, int64, error) {
	return nil, 0, nil
}

func (m *mockCheckInRepository) CountByStatus(context.Context, uint, checkin.Filter) (map[checkin.Status]int64, error) {
	return map[checkin.Status]int64{}, nil
}

func (m *mockCheckInRepository) CountByTerminal(ctx context.Context, terminalID uint) (int64, error) {
	if m.countByTermFunc != nil {
		return m.countByTermFunc(ctx, terminalID)
	}
	return 0, nil
}

func existingTerminal(id, tenantID uint) *terminal.Terminal {
	term, err := terminal.NewTerminal(tenantID, nil, "Front Desk", terminal.Settings{
		Hours: map[string]*terminal.HoursWindow{
			"mon": {Open: "09:00", Close: "21:00"},
		},
	})
	if err != nil {
		panic(err)
	}
	term.SetID(id)
	return term
}
