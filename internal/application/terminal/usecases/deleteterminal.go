package usecases

import (
	"context"
	"fmt"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

// DeleteTerminalCommand removes a terminal from the registry.
type DeleteTerminalCommand struct {
	TenantID uint
	SID      string
}

// DeleteTerminalUseCase removes terminals. A terminal referenced by
// admission history is deactivated instead of hard-deleted so that the
// history keeps resolving.
type DeleteTerminalUseCase struct {
	terminals terminal.Repository
	checkIns  checkin.Repository
	logger    logger.Interface
}

// NewDeleteTerminalUseCase creates the use case.
func NewDeleteTerminalUseCase(
	terminals terminal.Repository,
	checkIns checkin.Repository,
	logger logger.Interface,
) *DeleteTerminalUseCase {
	return &DeleteTerminalUseCase{
		terminals: terminals,
		checkIns:  checkIns,
		logger:    logger,
	}
}

// Execute hard-deletes when no history references the terminal, otherwise
// deactivates it.
func (uc *DeleteTerminalUseCase) Execute(ctx context.Context, cmd DeleteTerminalCommand) error {
	term, err := uc.terminals.GetBySIDAndTenant(ctx, cmd.SID, cmd.TenantID)
	if err != nil {
		return fmt.Errorf("get terminal: %w", err)
	}
	if term == nil {
		return errors.NewNotFoundError("terminal not found")
	}

	count, err := uc.checkIns.CountByTerminal(ctx, term.ID())
	if err != nil {
		return fmt.Errorf("count terminal history: %w", err)
	}

	if count > 0 {
		term.Deactivate()
		if err := uc.terminals.Update(ctx, term); err != nil {
			return fmt.Errorf("deactivate terminal: %w", err)
		}
		uc.logger.Infow("terminal deactivated",
			"terminal_id", term.SID(),
			"tenant_id", cmd.TenantID,
			"history_count", count,
		)
		return nil
	}

	if err := uc.terminals.Delete(ctx, term.ID()); err != nil {
		return fmt.Errorf("delete terminal: %w", err)
	}

	uc.logger.Infow("terminal deleted",
		"terminal_id", term.SID(),
		"tenant_id", cmd.TenantID,
	)
	return nil
}
