package checkin

import "errors"

var (
	// ErrCredentialExpired indicates an authentic credential past its expiry.
	ErrCredentialExpired = errors.New("credential expired")
	// ErrCredentialInvalid indicates a credential that failed parsing,
	// signature verification or purpose checks.
	ErrCredentialInvalid = errors.New("credential invalid")
	// ErrInvalidStatus indicates an unknown outcome status value.
	ErrInvalidStatus = errors.New("invalid check-in status")
	// ErrInvalidMethod indicates an unknown presentation method value.
	ErrInvalidMethod = errors.New("invalid check-in method")
)
