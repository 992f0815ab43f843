package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/config"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
)

var db *gorm.DB

// Init opens the database connection and configures the pool.
func Init(cfg *config.DatabaseConfig) error {
	gormDB, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: newSlogAdapter(),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	db = gormDB
	logger.Info("database connection established",
		"host", cfg.Host,
		"database", cfg.Database,
	)
	return nil
}

// Get returns the shared database handle. Init must have been called first.
func Get() *gorm.DB {
	if db == nil {
		panic("database not initialized")
	}
	return db
}

// Close shuts down the connection pool.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// slogAdapter routes gorm logs into the application logger. Record-not-found
// errors are suppressed since repositories treat them as absent rows.
type slogAdapter struct {
	slowThreshold time.Duration
}

func newSlogAdapter() gormlogger.Interface {
	return &slogAdapter{slowThreshold: 200 * time.Millisecond}
}

func (l *slogAdapter) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *slogAdapter) Info(_ context.Context, msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}

func (l *slogAdapter) Warn(_ context.Context, msg string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *slogAdapter) Error(_ context.Context, msg string, args ...interface{}) {
	logger.Error(fmt.Sprintf(msg, args...))
}

func (l *slogAdapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !strings.Contains(err.Error(), "record not found"):
		sql, rows := fc()
		logger.Error("query failed", "error", err, "sql", sql, "rows", rows, "elapsed", elapsed)
	case elapsed > l.slowThreshold:
		sql, rows := fc()
		logger.Warn("slow query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
