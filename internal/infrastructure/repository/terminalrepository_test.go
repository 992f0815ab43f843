package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
)

func boolPtr(b bool) *bool { return &b }
func uintPtr(v uint) *uint { return &v }

func newTestTerminal(t *testing.T, tenantID uint, name string) *terminal.Terminal {
	t.Helper()
	term, err := terminal.NewTerminal(tenantID, uintPtr(1), name, terminal.Settings{
		Sound: boolPtr(true),
		Hours: map[string]*terminal.HoursWindow{
			"mon": {Open: "09:00", Close: "21:00"},
		},
	})
	require.NoError(t, err)
	return term
}

func TestTerminalRepository_CreateAndGet(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))
	ctx := context.Background()

	term := newTestTerminal(t, 1, "Front Desk")
	require.NoError(t, repo.Create(ctx, term))
	assert.NotZero(t, term.ID())

	got, err := repo.GetBySID(ctx, term.SID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, term.SID(), got.SID())
	assert.Equal(t, "Front Desk", got.Name())
	assert.True(t, got.IsActive())
	assert.True(t, got.Settings().SoundEnabled())
	require.NotNil(t, got.Settings().Hours["mon"])
	assert.Equal(t, "09:00", got.Settings().Hours["mon"].Open)
}

func TestTerminalRepository_GetBySID_NotFound(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))

	got, err := repo.GetBySID(context.Background(), "trm_missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTerminalRepository_TenantScoping(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))
	ctx := context.Background()

	term := newTestTerminal(t, 1, "Front Desk")
	require.NoError(t, repo.Create(ctx, term))

	got, err := repo.GetBySIDAndTenant(ctx, term.SID(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = repo.GetBySIDAndTenant(ctx, term.SID(), 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTerminalRepository_Update(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))
	ctx := context.Background()

	term := newTestTerminal(t, 1, "Front Desk")
	require.NoError(t, repo.Create(ctx, term))

	require.NoError(t, term.Rename("Back Door"))
	term.Deactivate()
	require.NoError(t, term.ApplySettings(terminal.SettingsPatch{Sound: boolPtr(false)}))
	require.NoError(t, repo.Update(ctx, term))

	got, err := repo.GetBySID(ctx, term.SID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Back Door", got.Name())
	assert.False(t, got.IsActive())
	assert.False(t, got.Settings().SoundEnabled())
	assert.NotNil(t, got.Settings().Hours["mon"])
}

func TestTerminalRepository_Delete(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))
	ctx := context.Background()

	term := newTestTerminal(t, 1, "Front Desk")
	require.NoError(t, repo.Create(ctx, term))

	require.NoError(t, repo.Delete(ctx, term.ID()))

	got, err := repo.GetBySID(ctx, term.SID())
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, term.ID()), terminal.ErrTerminalNotFound)
}

func TestTerminalRepository_List(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, newTestTerminal(t, 1, name)))
	}
	other := newTestTerminal(t, 2, "Other Tenant")
	require.NoError(t, repo.Create(ctx, other))

	inactive := newTestTerminal(t, 1, "Inactive")
	inactive.Deactivate()
	require.NoError(t, repo.Create(ctx, inactive))

	list, total, err := repo.List(ctx, 1, terminal.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, list, 4)

	list, total, err = repo.List(ctx, 1, terminal.Filter{Active: boolPtr(true)})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	for _, item := range list {
		assert.True(t, item.IsActive())
	}
}

func TestTerminalRepository_UpdateLastSeen(t *testing.T) {
	repo := NewTerminalRepository(setupTestDB(t))
	ctx := context.Background()

	term := newTestTerminal(t, 1, "Front Desk")
	require.NoError(t, repo.Create(ctx, term))
	require.Nil(t, term.LastSeenAt())

	seen := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.UpdateLastSeen(ctx, term.ID(), seen))

	got, err := repo.GetBySID(ctx, term.SID())
	require.NoError(t, err)
	require.NotNil(t, got.LastSeenAt())
	assert.Equal(t, seen, *got.LastSeenAt())
}
