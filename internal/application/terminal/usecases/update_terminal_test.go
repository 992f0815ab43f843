package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
)

func TestUpdateTerminal_SettingsMerge(t *testing.T) {
	term := existingTerminal(5, 7)
	var saved *terminal.Terminal
	terminals := &mockTerminalRepository{
		getBySIDAndTenantFunc: func(_ context.Context, sid string, tenantID uint) (*terminal.Terminal, error) {
			if sid == term.SID() && tenantID == 7 {
				return term, nil
			}
			return nil, nil
		},
		updateFunc: func(_ context.Context, updated *terminal.Terminal) error {
			saved = updated
			return nil
		},
	}
	uc := NewUpdateTerminalUseCase(terminals, &mockLocationRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), UpdateTerminalCommand{
		TenantID: 7,
		SID:      term.SID(),
		Settings: &terminal.SettingsPatch{Sound: boolPtr(false)},
	})
	require.NoError(t, err)

	// The sound toggle must not clobber the configured hours.
	assert.False(t, result.Settings.SoundEnabled())
	require.NotNil(t, result.Settings.Hours["mon"])
	assert.Equal(t, "09:00", result.Settings.Hours["mon"].Open)
	require.NotNil(t, saved)
}

func TestUpdateTerminal_RenameAndDeactivate(t *testing.T) {
	term := existingTerminal(5, 7)
	terminals := &mockTerminalRepository{
		getBySIDAndTenantFunc: func(_ context.Context, _ string, _ uint) (*terminal.Terminal, error) {
			return term, nil
		},
	}
	uc := NewUpdateTerminalUseCase(terminals, &mockLocationRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), UpdateTerminalCommand{
		TenantID: 7,
		SID:      term.SID(),
		Name:     strPtr("Back Door"),
		Active:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Back Door", result.Name)
	assert.False(t, result.Active)
}

func TestUpdateTerminal_NotFound(t *testing.T) {
	uc := NewUpdateTerminalUseCase(&mockTerminalRepository{}, &mockLocationRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTerminalCommand{
		TenantID: 7,
		SID:      "trm_missing",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTerminal_CrossTenantLocationRejected(t *testing.T) {
	term := existingTerminal(5, 7)
	terminals := &mockTerminalRepository{
		getBySIDAndTenantFunc: func(_ context.Context, _ string, _ uint) (*terminal.Terminal, error) {
			return term, nil
		},
	}
	uc := NewUpdateTerminalUseCase(terminals, &mockLocationRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), UpdateTerminalCommand{
		TenantID:   7,
		SID:        term.SID(),
		LocationID: uintPtr(99),
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
