package routes

import (
	"github.com/gin-gonic/gin"

	terminalhandler "github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/handlers/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/authorization"
)

// TerminalRouteConfig holds dependencies for terminal management routes.
type TerminalRouteConfig struct {
	TerminalHandler *terminalhandler.Handler
	Auth            gin.HandlerFunc
}

// SetupTerminalRoutes configures terminal registry routes. All of them are
// staff-only and tenant-scoped through the authenticated claims.
func SetupTerminalRoutes(engine *gin.Engine, cfg *TerminalRouteConfig) {
	terminals := engine.Group("/terminals")
	terminals.Use(cfg.Auth, authorization.RequireStaff())
	{
		terminals.POST("", cfg.TerminalHandler.Create)
		terminals.GET("", cfg.TerminalHandler.List)
		terminals.GET("/:id", cfg.TerminalHandler.Get)
		terminals.PATCH("/:id", cfg.TerminalHandler.Update)
		terminals.DELETE("/:id", cfg.TerminalHandler.Delete)
	}
}
