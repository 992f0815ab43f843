package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyTenantID  = "tenant_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableMembers   = "members"
	TableLocations = "locations"
	TableTerminals = "terminals"
	TableCheckIns  = "check_ins"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
