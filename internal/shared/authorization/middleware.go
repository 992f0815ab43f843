package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/constants"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// RequireStaff rejects requests whose authenticated role is not staff.
// Must run after the auth middleware has populated the role context key.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != string(RoleStaff) {
			utils.ErrorResponse(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
