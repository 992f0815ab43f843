package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	checkinusecases "github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/usecases"
	terminalusecases "github.com/igiffrekt/MusqlApp-sub002/internal/application/terminal/usecases"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/auth"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/config"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/ratelimit"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/repository"
	checkinhandler "github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/handlers/checkin"
	terminalhandler "github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/handlers/terminal"
	"github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/middleware"
	"github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/routes"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface. The redis client may be nil, in
// which case the validate endpoint runs without rate limiting.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories.
	terminalRepo := repository.NewTerminalRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	// Services.
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	credentialService := auth.NewCredentialService(&cfg.Auth.Credential)

	// Use cases.
	issueCredential := checkinusecases.NewIssueCredentialUseCase(memberRepo, credentialService, log)
	validateAdmission := checkinusecases.NewValidateAdmissionUseCase(credentialService, memberRepo, terminalRepo, checkInRepo, log)
	manualCheckIn := checkinusecases.NewManualCheckInUseCase(memberRepo, checkInRepo, log)
	listCheckIns := checkinusecases.NewListCheckInsUseCase(checkInRepo, log)

	createTerminal := terminalusecases.NewCreateTerminalUseCase(terminalRepo, locationRepo, log)
	listTerminals := terminalusecases.NewListTerminalsUseCase(terminalRepo, log)
	getTerminal := terminalusecases.NewGetTerminalUseCase(terminalRepo)
	updateTerminal := terminalusecases.NewUpdateTerminalUseCase(terminalRepo, locationRepo, log)
	deleteTerminal := terminalusecases.NewDeleteTerminalUseCase(terminalRepo, checkInRepo, log)

	// Handlers.
	checkInHandler := checkinhandler.NewHandler(issueCredential, validateAdmission, manualCheckIn, listCheckIns, log)
	terminalHandler := terminalhandler.NewHandler(createTerminal, listTerminals, getTerminal, updateTerminal, deleteTerminal, log)

	authMiddleware := middleware.Auth(jwtService)

	var rateLimitMiddleware gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(
			redisClient,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		rateLimitMiddleware = middleware.RateLimit(limiter, log)
	}

	routes.SetupCheckInRoutes(engine, &routes.CheckInRouteConfig{
		CheckInHandler: checkInHandler,
		Auth:           authMiddleware,
		RateLimit:      rateLimitMiddleware,
	})
	routes.SetupTerminalRoutes(engine, &routes.TerminalRouteConfig{
		TerminalHandler: terminalHandler,
		Auth:            authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
