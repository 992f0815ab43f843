package checkin

import (
	"context"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/query"
)

// Filter narrows history listings. Zero values mean no constraint. From and
// To are UTC instants derived from business-timezone day boundaries.
type Filter struct {
	query.BaseFilter
	From       *time.Time
	To         *time.Time
	MemberID   uint
	TerminalID uint
	Status     Status
}

// Repository persists admission records. Records are insert-only.
type Repository interface {
	Create(ctx context.Context, c *CheckIn) error
	List(ctx context.Context, tenantID uint, filter Filter) ([]*CheckIn, int64, error)
	CountByStatus(ctx context.Context, tenantID uint, filter Filter) (map[Status]int64, error)
	CountByTerminal(ctx context.Context, terminalID uint) (int64, error)
}
