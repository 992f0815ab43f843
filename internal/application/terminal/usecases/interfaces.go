package usecases

import (
	"context"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/terminal/dto"
)

// CreateTerminalExecutor defines the interface for registering terminals
type CreateTerminalExecutor interface {
	Execute(ctx context.Context, cmd CreateTerminalCommand) (*dto.TerminalDTO, error)
}

// ListTerminalsExecutor defines the interface for listing terminals
type ListTerminalsExecutor interface {
	Execute(ctx context.Context, cmd ListTerminalsCommand) (*dto.ListDTO, error)
}

// GetTerminalExecutor defines the interface for fetching one terminal
type GetTerminalExecutor interface {
	Execute(ctx context.Context, cmd GetTerminalCommand) (*dto.TerminalDTO, error)
}

// UpdateTerminalExecutor defines the interface for updating terminals
type UpdateTerminalExecutor interface {
	Execute(ctx context.Context, cmd UpdateTerminalCommand) (*dto.TerminalDTO, error)
}

// DeleteTerminalExecutor defines the interface for deleting terminals
type DeleteTerminalExecutor interface {
	Execute(ctx context.Context, cmd DeleteTerminalCommand) error
}
