package checkin

// IssueCredentialRequest is the mint request body. MemberID is required
// for staff callers and ignored for member callers.
type IssueCredentialRequest struct {
	MemberID uint `json:"member_id"`
}

// ValidateRequest is one admission attempt from a kiosk. Method is an
// extensible tag; values outside the known set are rejected here. A
// missing credential binds as empty and fails verification downstream,
// so the kiosk still receives a tagged denial.
type ValidateRequest struct {
	Credential string `json:"credential"`
	TerminalID string `json:"terminal_id"`
	Method     string `json:"method" binding:"omitempty,oneof=credential"`
}

// ManualCheckInRequest is a staff-entered admission.
type ManualCheckInRequest struct {
	MemberID uint   `json:"member_id" binding:"required"`
	Note     string `json:"note" binding:"max=255"`
}
