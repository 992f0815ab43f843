package member

import "context"

// ReadRepository provides read-only access to members. Lookups return
// (nil, nil) when no matching member exists.
type ReadRepository interface {
	GetByIDAndTenant(ctx context.Context, id, tenantID uint) (*Member, error)
	GetByUserID(ctx context.Context, userID uint) (*Member, error)
}
