package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/auth"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/authorization"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/constants"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// Auth verifies the bearer token and stores the caller identity in the
// request context.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyTenantID, claims.TenantID)
		c.Set(constants.ContextKeyUserRole, string(authorization.ParseRole(claims.Role)))

		c.Next()
	}
}

// CallerIdentity extracts the authenticated identity set by Auth.
func CallerIdentity(c *gin.Context) (userID, tenantID uint, role authorization.Role) {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			userID = id
		}
	}
	if v, ok := c.Get(constants.ContextKeyTenantID); ok {
		if id, ok := v.(uint); ok {
			tenantID = id
		}
	}
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if r, ok := v.(string); ok {
			role = authorization.Role(r)
		}
	}
	return userID, tenantID, role
}
