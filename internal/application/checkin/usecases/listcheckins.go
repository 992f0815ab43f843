package usecases

import (
	"context"
	"fmt"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/dto"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/biztime"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/query"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// ListCheckInsCommand filters the admission history. FromDate and ToDate
// are YYYY-MM-DD days in the business timezone.
type ListCheckInsCommand struct {
	TenantID   uint
	FromDate   string
	ToDate     string
	MemberID   uint
	TerminalID uint
	Status     string
	Page       int
	PageSize   int
}

// ListCheckInsUseCase pages through admission records with per-status
// counts over the same filtered set.
type ListCheckInsUseCase struct {
	checkIns checkin.Repository
	logger   logger.Interface
}

// NewListCheckInsUseCase creates the use case.
func NewListCheckInsUseCase(checkIns checkin.Repository, logger logger.Interface) *ListCheckInsUseCase {
	return &ListCheckInsUseCase{
		checkIns: checkIns,
		logger:   logger,
	}
}

// Execute lists matching records and their status breakdown.
func (uc *ListCheckInsUseCase) Execute(ctx context.Context, cmd ListCheckInsCommand) (*dto.HistoryDTO, error) {
	filter, err := uc.buildFilter(cmd)
	if err != nil {
		return nil, err
	}

	records, total, err := uc.checkIns.List(ctx, cmd.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	counts, err := uc.checkIns.CountByStatus(ctx, cmd.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("count check-ins: %w", err)
	}

	items := make([]dto.CheckInDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.CheckInFromDomain(rec))
	}

	statusCounts := make(map[string]int64, len(counts))
	for status, count := range counts {
		statusCounts[string(status)] = count
	}

	return &dto.HistoryDTO{
		Items:        items,
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
		TotalPages:   utils.TotalPages(total, filter.PageSize),
		StatusCounts: statusCounts,
	}, nil
}

func (uc *ListCheckInsUseCase) buildFilter(cmd ListCheckInsCommand) (checkin.Filter, error) {
	filter := checkin.Filter{
		BaseFilter: query.NewBaseFilter(query.WithPage(cmd.Page, cmd.PageSize)),
		MemberID:   cmd.MemberID,
		TerminalID: cmd.TerminalID,
	}

	if cmd.Status != "" {
		status := checkin.Status(cmd.Status)
		if !status.IsValid() {
			return checkin.Filter{}, errors.NewValidationError("invalid status filter")
		}
		filter.Status = status
	}

	if cmd.FromDate != "" {
		day, err := biztime.ParseDateInBizTimezone(cmd.FromDate)
		if err != nil {
			return checkin.Filter{}, errors.NewValidationError("invalid from date", "expected YYYY-MM-DD")
		}
		from := biztime.StartOfDayUTC(day)
		filter.From = &from
	}

	if cmd.ToDate != "" {
		day, err := biztime.ParseDateInBizTimezone(cmd.ToDate)
		if err != nil {
			return checkin.Filter{}, errors.NewValidationError("invalid to date", "expected YYYY-MM-DD")
		}
		to := biztime.EndOfDayUTC(day)
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return checkin.Filter{}, errors.NewValidationError("to date must not precede from date")
	}

	return filter, nil
}
