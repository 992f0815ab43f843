package member

import "time"

// Status represents a member's account status within a tenant.
type Status string

const (
	StatusActive    Status = "active"
	StatusFrozen    Status = "frozen"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
)

// IsActive reports whether the status allows facility admission.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// Member is a read model over membership data owned by the membership
// context. The check-in context never mutates members.
type Member struct {
	id        uint
	tenantID  uint
	userID    uint
	firstName string
	lastName  string
	photo     string
	rank      string
	status    Status
	createdAt time.Time
}

// ReconstructMember rebuilds a member read model from persisted state.
func ReconstructMember(
	id uint,
	tenantID uint,
	userID uint,
	firstName string,
	lastName string,
	photo string,
	rank string,
	status Status,
	createdAt time.Time,
) *Member {
	return &Member{
		id:        id,
		tenantID:  tenantID,
		userID:    userID,
		firstName: firstName,
		lastName:  lastName,
		photo:     photo,
		rank:      rank,
		status:    status,
		createdAt: createdAt,
	}
}

func (m *Member) ID() uint { return m.id }
func (m *Member) TenantID() uint { return m.tenantID }
func (m *Member) UserID() uint { return m.userID }
func (m *Member) FirstName() string { return m.firstName }
func (m *Member) LastName() string { return m.lastName }
func (m *Member) Photo() string { return m.photo }
func (m *Member) Rank() string { return m.rank }
func (m *Member) Status() Status { return m.status }
func (m *Member) CreatedAt() time.Time { return m.createdAt }

// Summary is the sanitized member snapshot surfaced to validation callers.
// It never carries contact or billing details.
type Summary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo,omitempty"`
	Rank      string `json:"rank,omitempty"`
}

// Summary returns the admission-facing snapshot of the member.
func (m *Member) Summary() Summary {
	return Summary{
		ID:        m.id,
		FirstName: m.firstName,
		LastName:  m.lastName,
		Photo:     m.photo,
		Rank:      m.rank,
	}
}
