package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

// TerminalMapper converts between terminal domain aggregates and
// persistence models.
type TerminalMapper struct{}

// NewTerminalMapper creates a terminal mapper.
func NewTerminalMapper() *TerminalMapper {
	return &TerminalMapper{}
}

// ToModel converts a domain terminal to its persistence model.
func (m *TerminalMapper) ToModel(t *terminal.Terminal) (*models.TerminalModel, error) {
	settings, err := settingsToJSONMap(t.Settings())
	if err != nil {
		return nil, err
	}

	var lastSeen *int64
	if t.LastSeenAt() != nil {
		ms := t.LastSeenAt().UnixMilli()
		lastSeen = &ms
	}

	return &models.TerminalModel{
		ID:         t.ID(),
		DeviceID:   t.SID(),
		TenantID:   t.TenantID(),
		LocationID: t.LocationID(),
		Name:       t.Name(),
		Active:     t.IsActive(),
		Settings:   settings,
		LastSeenAt: lastSeen,
		CreatedAt:  t.CreatedAt().UnixMilli(),
		UpdatedAt:  t.UpdatedAt().UnixMilli(),
	}, nil
}

// ToDomain converts a persistence model to a domain terminal.
func (m *TerminalMapper) ToDomain(model *models.TerminalModel) (*terminal.Terminal, error) {
	settings, err := settingsFromJSONMap(model.Settings)
	if err != nil {
		return nil, err
	}

	var lastSeen *time.Time
	if model.LastSeenAt != nil {
		t := time.UnixMilli(*model.LastSeenAt).UTC()
		lastSeen = &t
	}

	return terminal.ReconstructTerminal(
		model.ID,
		model.DeviceID,
		model.TenantID,
		model.LocationID,
		model.Name,
		model.Active,
		settings,
		lastSeen,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	), nil
}

func settingsToJSONMap(s terminal.Settings) (datatypes.JSONMap, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}

	var jsonMap datatypes.JSONMap
	if err := json.Unmarshal(raw, &jsonMap); err != nil {
		return nil, fmt.Errorf("convert settings: %w", err)
	}
	return jsonMap, nil
}

func settingsFromJSONMap(jsonMap datatypes.JSONMap) (terminal.Settings, error) {
	if len(jsonMap) == 0 {
		return terminal.Settings{}, nil
	}

	raw, err := json.Marshal(jsonMap)
	if err != nil {
		return terminal.Settings{}, fmt.Errorf("marshal settings map: %w", err)
	}

	var settings terminal.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return terminal.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings, nil
}
