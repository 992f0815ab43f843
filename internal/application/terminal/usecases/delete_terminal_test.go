package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
)

func TestDeleteTerminal_HardDeleteWithoutHistory(t *testing.T) {
	term := existingTerminal(5, 7)
	deleted := false
	terminals := &mockTerminalRepository{
		getBySIDAndTenantFunc: func(_ context.Context, _ string, _ uint) (*terminal.Terminal, error) {
			return term, nil
		},
		deleteFunc: func(_ context.Context, tid uint) error {
			assert.Equal(t, uint(5), tid)
			deleted = true
			return nil
		},
	}
	uc := NewDeleteTerminalUseCase(terminals, &mockCheckInRepository{}, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTerminalCommand{TenantID: 7, SID: term.SID()})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteTerminal_SoftDeleteWithHistory(t *testing.T) {
	term := existingTerminal(5, 7)
	var saved *terminal.Terminal
	terminals := &mockTerminalRepository{
		getBySIDAndTenantFunc: func(_ context.Context, _ string, _ uint) (*terminal.Terminal, error) {
			return term, nil
		},
		updateFunc: func(_ context.Context, updated *terminal.Terminal) error {
			saved = updated
			return nil
		},
		deleteFunc: func(_ context.Context, _ uint) error {
			t.Fatal("terminal with history must not be hard-deleted")
			return nil
		},
	}
	checkIns := &mockCheckInRepository{
		countByTermFunc: func(_ context.Context, _ uint) (int64, error) {
			return 12, nil
		},
	}
	uc := NewDeleteTerminalUseCase(terminals, checkIns, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTerminalCommand{TenantID: 7, SID: term.SID()})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.False(t, saved.IsActive())
}

func TestDeleteTerminal_NotFound(t *testing.T) {
	uc := NewDeleteTerminalUseCase(&mockTerminalRepository{}, &mockCheckInRepository{}, newTestLogger())

	err := uc.Execute(context.Background(), DeleteTerminalCommand{TenantID: 7, SID: "trm_missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
