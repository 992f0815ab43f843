package checkin

import "time"

// Status is the outcome of an admission attempt.
type Status string

const (
	StatusSuccess            Status = "success"
	StatusDeniedNoAccess     Status = "denied_no_access"
	StatusDeniedExpired      Status = "denied_expired"
	StatusDeniedInactive     Status = "denied_inactive"
	StatusDeniedOutsideHours Status = "denied_outside_hours"
)

// IsValid reports whether s is a known outcome status.
func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusDeniedNoAccess, StatusDeniedExpired,
		StatusDeniedInactive, StatusDeniedOutsideHours:
		return true
	}
	return false
}

// IsSuccess reports whether the attempt was admitted.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// Method tags how the admission attempt was presented.
type Method string

const (
	MethodCredential Method = "credential"
	MethodManual     Method = "manual"
)

// IsValid reports whether m is a known presentation method.
func (m Method) IsValid() bool {
	return m == MethodCredential || m == MethodManual
}

// CheckIn is an immutable admission attempt record. MemberID is nil when
// the attempt never resolved a member (expired credential with an
// authentic signature). TerminalID is nil for terminal-less attempts.
type CheckIn struct {
	id         uint
	tenantID   uint
	memberID   *uint
	terminalID *uint
	method     Method
	status     Status
	note       string
	createdAt  time.Time
}

// NewCheckIn creates an admission record for persistence.
func NewCheckIn(tenantID uint, memberID, terminalID *uint, method Method, status Status, note string) *CheckIn {
	return &CheckIn{
		tenantID:   tenantID,
		memberID:   memberID,
		terminalID: terminalID,
		method:     method,
		status:     status,
		note:       note,
		createdAt:  time.Now().UTC(),
	}
}

// ReconstructCheckIn rebuilds a record from persisted state.
func ReconstructCheckIn(
	id uint,
	tenantID uint,
	memberID *uint,
	terminalID *uint,
	method Method,
	status Status,
	note string,
	createdAt time.Time,
) *CheckIn {
	return &CheckIn{
		id:         id,
		tenantID:   tenantID,
		memberID:   memberID,
		terminalID: terminalID,
		method:     method,
		status:     status,
		note:       note,
		createdAt:  createdAt,
	}
}

func (c *CheckIn) ID() uint { return c.id }
func (c *CheckIn) TenantID() uint { return c.tenantID }
func (c *CheckIn) MemberID() *uint { return c.memberID }
func (c *CheckIn) TerminalID() *uint { return c.terminalID }
func (c *CheckIn) Method() Method { return c.method }
func (c *CheckIn) Status() Status { return c.status }
func (c *CheckIn) Note() string { return c.note }
func (c *CheckIn) CreatedAt() time.Time { return c.createdAt }

// SetID assigns the persistence identifier after initial save.
func (c *CheckIn) SetID(id uint) {
	c.id = id
}
