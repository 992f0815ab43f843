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

// UpdateTerminalCommand carries a partial terminal update. Nil fields are
// left untouched. Settings are merged, never replaced.
type UpdateTerminalCommand struct {
	TenantID   uint
	SID        string
	Name       *string
	LocationID *uint
	Active     *bool
	Settings   *terminal.SettingsPatch
}

// UpdateTerminalUseCase applies partial updates to a terminal.
type UpdateTerminalUseCase struct {
	terminals terminal.Repository
	locations location.ReadRepository
	logger    logger.Interface
}

// NewUpdateTerminalUseCase creates the use case.
func NewUpdateTerminalUseCase(
	terminals terminal.Repository,
	locations location.ReadRepository,
	logger logger.Interface,
) *UpdateTerminalUseCase {
	return &UpdateTerminalUseCase{
		terminals: terminals,
		locations: locations,
		logger:    logger,
	}
}

// Execute loads the terminal and applies the requested changes.
func (uc *UpdateTerminalUseCase) Execute(ctx context.Context, cmd UpdateTerminalCommand) (*dto.TerminalDTO, error) {
	term, err := uc.terminals.GetBySIDAndTenant(ctx, cmd.SID, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("get terminal: %w", err)
	}
	if term == nil {
		return nil, errors.NewNotFoundError("terminal not found")
	}

	if cmd.Name != nil {
		if err := term.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.LocationID != nil {
		loc, err := uc.locations.GetByIDAndTenant(ctx, *cmd.LocationID, cmd.TenantID)
		if err != nil {
			return nil, fmt.Errorf("resolve location: %w", err)
		}
		if loc == nil {
			return nil, errors.NewNotFoundError("location not found")
		}
		term.Relocate(cmd.LocationID)
	}

	if cmd.Active != nil {
		if *cmd.Active {
			term.Activate()
		} else {
			term.Deactivate()
		}
	}

	if cmd.Settings != nil {
		if err := term.ApplySettings(*cmd.Settings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.terminals.Update(ctx, term); err != nil {
		return nil, fmt.Errorf("update terminal: %w", err)
	}

	uc.logger.Infow("terminal updated",
		"terminal_id", term.SID(),
		"tenant_id", cmd.TenantID,
	)

	result := dto.FromDomain(term)
	return &result, nil
}
