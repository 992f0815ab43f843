package dto

import (
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
)

// TerminalDTO is the API view of a terminal. The device identifier is the
// public ID; numeric keys stay internal.
type TerminalDTO struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	LocationID *uint             `json:"location_id,omitempty"`
	Active     bool              `json:"active"`
	Settings   terminal.Settings `json:"settings"`
	LastSeenAt *time.Time        `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// FromDomain converts a domain terminal.
func FromDomain(t *terminal.Terminal) TerminalDTO {
	return TerminalDTO{
		ID:         t.SID(),
		Name:       t.Name(),
		LocationID: t.LocationID(),
		Active:     t.IsActive(),
		Settings:   t.Settings(),
		LastSeenAt: t.LastSeenAt(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

// ListDTO is a page of terminals.
type ListDTO struct {
	Items      []TerminalDTO `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}
