package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/errors"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/id"
)

// ParseSIDParam extracts and validates a prefixed short ID path parameter.
// Returns an error response-ready AppError when the value is missing or
// does not carry the expected prefix.
func ParseSIDParam(c *gin.Context, name, prefix string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", errors.NewValidationError(name + " is required")
	}
	if err := id.ValidatePrefix(value, prefix); err != nil {
		return "", errors.NewValidationError("invalid "+name+" format", err.Error())
	}
	return value, nil
}
