package terminal

import (
	"strings"
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/id"
)

const maxNameLength = 100

// Terminal is a registered check-in device bound to a tenant location.
type Terminal struct {
	id         uint
	sid        string
	tenantID   uint
	locationID *uint
	name       string
	active     bool
	settings   Settings
	lastSeenAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewTerminal creates a terminal with a fresh device identifier. New
// terminals start active.
func NewTerminal(tenantID uint, locationID *uint, name string, settings Settings) (*Terminal, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalidName
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	sid, err := id.NewTerminalID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Terminal{
		sid:        sid,
		tenantID:   tenantID,
		locationID: locationID,
		name:       name,
		active:     true,
		settings:   settings,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructTerminal rebuilds a terminal from persisted state.
func ReconstructTerminal(
	tid uint,
	sid string,
	tenantID uint,
	locationID *uint,
	name string,
	active bool,
	settings Settings,
	lastSeenAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Terminal {
	return &Terminal{
		id:         tid,
		sid:        sid,
		tenantID:   tenantID,
		locationID: locationID,
		name:       name,
		active:     active,
		settings:   settings,
		lastSeenAt: lastSeenAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (t *Terminal) ID() uint { return t.id }
func (t *Terminal) SID() string { return t.sid }
func (t *Terminal) TenantID() uint { return t.tenantID }
func (t *Terminal) LocationID() *uint { return t.locationID }
func (t *Terminal) Name() string { return t.name }
func (t *Terminal) IsActive() bool { return t.active }
func (t *Terminal) Settings() Settings { return t.settings }
func (t *Terminal) LastSeenAt() *time.Time { return t.lastSeenAt }
func (t *Terminal) CreatedAt() time.Time { return t.createdAt }
func (t *Terminal) UpdatedAt() time.Time { return t.updatedAt }

// SetID assigns the persistence identifier after initial save.
func (t *Terminal) SetID(tid uint) {
	t.id = tid
}

// Rename changes the terminal's display name.
func (t *Terminal) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return ErrInvalidName
	}
	t.name = name
	t.touch()
	return nil
}

// Relocate moves the terminal to another location in the same tenant. A nil
// location detaches the terminal from any location.
func (t *Terminal) Relocate(locationID *uint) {
	t.locationID = locationID
	t.touch()
}

// ApplySettings merges a partial settings update into the current settings.
func (t *Terminal) ApplySettings(patch SettingsPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	t.settings = t.settings.Merge(patch)
	t.touch()
	return nil
}

// Activate re-enables a deactivated terminal.
func (t *Terminal) Activate() {
	t.active = true
	t.touch()
}

// Deactivate disables the terminal. Inactive terminals reject all scans.
func (t *Terminal) Deactivate() {
	t.active = false
	t.touch()
}

// AdmitsAt decides whether the terminal's opening hours allow admission at
// the given instant, evaluated in loc.
func (t *Terminal) AdmitsAt(at time.Time, loc *time.Location) (bool, string) {
	return t.settings.WithinHours(at, loc)
}

func (t *Terminal) touch() {
	t.updatedAt = time.Now().UTC()
}
