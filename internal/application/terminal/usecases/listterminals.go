package usecases

import (
	"context"
	"fmt"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/terminal/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/query"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// ListTerminalsCommand filters the tenant's terminals.
type ListTerminalsCommand struct {
	TenantID   uint
	LocationID uint
	Active     *bool
	Page       int
	PageSize   int
}

// ListTerminalsUseCase pages through a tenant's terminals.
type ListTerminalsUseCase struct {
	terminals terminal.Repository
	logger    logger.Interface
}

// NewListTerminalsUseCase creates the use case.
func NewListTerminalsUseCase(terminals terminal.Repository, logger logger.Interface) *ListTerminalsUseCase {
	return &ListTerminalsUseCase{
		terminals: terminals,
		logger:    logger,
	}
}

// Execute lists terminals scoped to the tenant.
func (uc *ListTerminalsUseCase) Execute(ctx context.Context, cmd ListTerminalsCommand) (*dto.ListDTO, error) {
	filter := terminal.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(cmd.Page, cmd.PageSize)),
		LocationID: cmd.LocationID,
		Active:     cmd.Active,
	}

	terminals, total, err := uc.terminals.List(ctx, cmd.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}

	items := make([]dto.TerminalDTO, 0, len(terminals))
	for _, term := range terminals {
		items = append(items, dto.FromDomain(term))
	}

	return &dto.ListDTO{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: utils.TotalPages(total, filter.PageSize),
	}, nil
}
