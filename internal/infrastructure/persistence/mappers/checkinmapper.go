package mappers

import (
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

// CheckInMapper converts between admission records and persistence models.
type CheckInMapper struct{}

// NewCheckInMapper creates a check-in mapper.
func NewCheckInMapper() *CheckInMapper {
	return &CheckInMapper{}
}

// ToModel converts an admission record to its persistence model.
func (m *CheckInMapper) ToModel(c *checkin.CheckIn) *models.CheckInModel {
	return &models.CheckInModel{
		ID:         c.ID(),
		TenantID:   c.TenantID(),
		MemberID:   c.MemberID(),
		TerminalID: c.TerminalID(),
		Method:     string(c.Method()),
		Status:     string(c.Status()),
		Note:       c.Note(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

// ToDomain converts a persistence model to an admission record.
func (m *CheckInMapper) ToDomain(model *models.CheckInModel) *checkin.CheckIn {
	return checkin.ReconstructCheckIn(
		model.ID,
		model.TenantID,
		model.MemberID,
		model.TerminalID,
		checkin.Method(model.Method),
		checkin.Status(model.Status),
		model.Note,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
