package usecases

import (
	"context"
	"fmt"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/terminal/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/location"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

// CreateTerminalCommand registers a new kiosk device.
type CreateTerminalCommand struct {
	TenantID   uint
	Name       string
	LocationID *uint
	Settings   terminal.Settings
}

// CreateTerminalUseCase registers terminals. Device identifiers are
// generated server-side, never client-supplied.
type CreateTerminalUseCase struct {
	terminals terminal.Repository
	locations location.ReadRepository
	logger    logger.Interface
}

// NewCreateTerminalUseCase creates the use case.
func NewCreateTerminalUseCase(
	terminals terminal.Repository,
	locations location.ReadRepository,
	logger logger.Interface,
) *CreateTerminalUseCase {
	return &CreateTerminalUseCase{
		terminals: terminals,
		locations: locations,
		logger:    logger,
	}
}

// Execute validates the location binding and persists the terminal.
func (uc *CreateTerminalUseCase) Execute(ctx context.Context, cmd CreateTerminalCommand) (*dto.TerminalDTO, error) {
	if cmd.LocationID != nil {
		loc, err := uc.locations.GetByIDAndTenant(ctx, *cmd.LocationID, cmd.TenantID)
		if err != nil {
			return nil, fmt.Errorf("resolve location: %w", err)
		}
		if loc == nil {
			return nil, errors.NewNotFoundError("location not found")
		}
	}

	term, err := terminal.NewTerminal(cmd.TenantID, cmd.LocationID, cmd.Name, cmd.Settings)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.terminals.Create(ctx, term); err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	uc.logger.Infow("terminal registered",
		"terminal_id", term.SID(),
		"tenant_id", cmd.TenantID,
	)

	result := dto.FromDomain(term)
	return &result, nil
}
