package routes

import (
	"github.com/gin-gonic/gin"

	checkinhandler "github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/handlers/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/authorization"
)

// CheckInRouteConfig holds dependencies for check-in routes.
type CheckInRouteConfig struct {
	CheckInHandler *checkinhandler.Handler
	Auth           gin.HandlerFunc
	RateLimit      gin.HandlerFunc // may be nil when rate limiting is disabled
}

// SetupCheckInRoutes configures credential minting, admission validation
// and history routes. Validation is unauthenticated so kiosks can call it
// without tenant credentials; everything it reveals is bounded by the
// validator itself.
func SetupCheckInRoutes(engine *gin.Engine, cfg *CheckInRouteConfig) {
	group := engine.Group("/checkin")
	{
		if cfg.RateLimit != nil {
			group.POST("/validate", cfg.RateLimit, cfg.CheckInHandler.Validate)
		} else {
			group.POST("/validate", cfg.CheckInHandler.Validate)
		}

		authed := group.Group("")
		authed.Use(cfg.Auth)
		{
			authed.POST("/credentials", cfg.CheckInHandler.IssueCredential)
			authed.POST("/manual", authorization.RequireStaff(), cfg.CheckInHandler.Manual)
			authed.GET("/history", authorization.RequireStaff(), cfg.CheckInHandler.History)
		}
	}
}
