package checkin

// Credential is the identity carried by a verified check-in credential.
// The token itself is opaque transport; only the binding matters here.
type Credential struct {
	MemberID uint
	TenantID uint
}
