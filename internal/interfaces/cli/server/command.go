package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/cache"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/config"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/database"
	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/migration"
	httprouter "github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/biztime"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

var (
	configPath  string
	autoMigrate bool
)

// NewCommand creates the server subcommand.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  "Start the check-in HTTP server with the specified configuration.",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	debugMode := cfg.Server.Mode == gin.DebugMode
	if err := logger.Init(&cfg.Logger, debugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server",
		"addr", cfg.Server.GetAddr(),
		"auto_migrate", autoMigrate,
	)

	biztime.MustInit(cfg.CheckIn.Timezone)

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migration.NewManager(database.Get()).Up(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		// Rate limiting is the only redis consumer; the server stays up
		// without it.
		logger.Warn("redis unavailable, rate limiting disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	log := logger.NewLoggerWithSlog(logger.Get())
	router := httprouter.NewRouter(cfg, database.Get(), redisClient, log)

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
