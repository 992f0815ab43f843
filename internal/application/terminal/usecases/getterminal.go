package usecases

import (
	"context"
	"fmt"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/terminal/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
)

// GetTerminalCommand fetches one terminal by device identifier.
type GetTerminalCommand struct {
	TenantID uint
	SID      string
}

// GetTerminalUseCase fetches a single tenant-scoped terminal.
type GetTerminalUseCase struct {
	terminals terminal.Repository
}

// NewGetTerminalUseCase creates the use case.
func NewGetTerminalUseCase(terminals terminal.Repository) *GetTerminalUseCase {
	return &GetTerminalUseCase{terminals: terminals}
}

// Execute fetches the terminal within the caller's tenant.
func (uc *GetTerminalUseCase) Execute(ctx context.Context, cmd GetTerminalCommand) (*dto.TerminalDTO, error) {
	term, err := uc.terminals.GetBySIDAndTenant(ctx, cmd.SID, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("get terminal: %w", err)
	}
	if term == nil {
		return nil, errors.NewNotFoundError("terminal not found")
	}

	result := dto.FromDomain(term)
	return &result, nil
}
