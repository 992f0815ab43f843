package kiosk

import "time"

// Admission statuses returned by the validate endpoint.
const (
	StatusSuccess            = "success"
	StatusDeniedNoAccess     = "denied_no_access"
	StatusDeniedExpired      = "denied_expired"
	StatusDeniedInactive     = "denied_inactive"
	StatusDeniedOutsideHours = "denied_outside_hours"
)

// MemberSummary is the sanitized member view a kiosk is allowed to show.
type MemberSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo,omitempty"`
	Rank      string `json:"rank,omitempty"`
}

// ValidationResult is the outcome of one admission validation.
type ValidationResult struct {
	Valid     bool           `json:"valid"`
	Status    string         `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	Member    *MemberSummary `json:"member,omitempty"`
	CheckInID *uint          `json:"check_in_id,omitempty"`
	Sound     bool           `json:"sound"`
}

// OK reports whether the member was admitted.
func (r *ValidationResult) OK() bool {
	return r.Status == StatusSuccess
}

// CredentialGrant is a freshly minted check-in credential.
type CredentialGrant struct {
	Credential       string    `json:"credential"`
	ExpiresAt        time.Time `json:"expires_at"`
	ExpiresInSeconds int       `json:"expires_in_seconds"`
}

// apiResponse is the server's response envelope.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
