package terminal

import (
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
)

// CreateTerminalRequest registers a new kiosk device. The device
// identifier is always generated server-side.
type CreateTerminalRequest struct {
	Name       string            `json:"name" binding:"required,max=100"`
	LocationID *uint             `json:"location_id"`
	Settings   terminal.Settings `json:"settings"`
}

// UpdateTerminalRequest is a partial update. Absent fields stay untouched;
// settings are merged field-wise.
type UpdateTerminalRequest struct {
	Name       *string                 `json:"name" binding:"omitempty,max=100"`
	LocationID *uint                   `json:"location_id"`
	Active     *bool                   `json:"active"`
	Settings   *terminal.SettingsPatch `json:"settings"`
}
