package terminal

import (
	"context"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/query"
)

// Filter narrows terminal listings. Zero values mean no constraint.
type Filter struct {
	query.BaseFilter
	LocationID uint
	Active     *bool
}

// Repository persists terminals. Lookups return (nil, nil) when no matching
// terminal exists.
type Repository interface {
	Create(ctx context.Context, t *Terminal) error
	Update(ctx context.Context, t *Terminal) error
	Delete(ctx context.Context, tid uint) error
	GetBySID(ctx context.Context, sid string) (*Terminal, error)
	GetBySIDAndTenant(ctx context.Context, sid string, tenantID uint) (*Terminal, error)
	List(ctx context.Context, tenantID uint, filter Filter) ([]*Terminal, int64, error)
	UpdateLastSeen(ctx context.Context, tid uint, at time.Time) error
}
