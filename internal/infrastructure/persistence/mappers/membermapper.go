package mappers

import (
	"time"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/location"
	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/member"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/persistence/models"
)

// MemberMapper converts member rows to the read model. Write mapping is
// deliberately absent.
type MemberMapper struct{}

// NewMemberMapper creates a member mapper.
func NewMemberMapper() *MemberMapper {
	return &MemberMapper{}
}

// ToDomain converts a persistence model to a member read model.
func (m *MemberMapper) ToDomain(model *models.MemberModel) *member.Member {
	return member.ReconstructMember(
		model.ID,
		model.TenantID,
		model.UserID,
		model.FirstName,
		model.LastName,
		model.Photo,
		model.Rank,
		member.Status(model.Status),
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

// LocationMapper converts location rows to the read model.
type LocationMapper struct{}

// NewLocationMapper creates a location mapper.
func NewLocationMapper() *LocationMapper {
	return &LocationMapper{}
}

// ToDomain converts a persistence model to a location read model.
func (m *LocationMapper) ToDomain(model *models.LocationModel) *location.Location {
	return location.ReconstructLocation(model.ID, model.TenantID, model.Name)
}
