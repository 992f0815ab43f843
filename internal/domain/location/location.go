package location

import "context"

// Location is a read model over facility locations owned by the tenant
// management context.
type Location struct {
	id       uint
	tenantID uint
	name     string
}

// ReconstructLocation rebuilds a location read model from persisted state.
func ReconstructLocation(id, tenantID uint, name string) *Location {
	return &Location{id: id, tenantID: tenantID, name: name}
}

func (l *Location) ID() uint { return l.id }
func (l *Location) TenantID() uint { return l.tenantID }
func (l *Location) Name() string { return l.name }

// ReadRepository provides read-only access to locations. Lookups return
// (nil, nil) when no matching location exists.
type ReadRepository interface {
	GetByIDAndTenant(ctx context.Context, id, tenantID uint) (*Location, error)
}
