package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	errs "github.com/amirhossein-jamali/date-engine/internal/domain/error"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
)

// Connection holds the database handle and its configuration
type Connection struct {
	DB     *gorm.DB
	Config *Config
}

// Connect establishes a database connection, retrying transient failures
// up to Config.RetryAttempts with Config.RetryDelay between attempts.
// Sleeping goes through the time provider so tests can connect without
// real delays.
func Connect(config *Config, logger core.Logger, timeProvider core.TimeProvider) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	var lastErr error
	attempts := config.RetryAttempts + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := open(config)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		if attempt < attempts {
			logger.Warn("Database connection failed, retrying", map[string]any{
				"attempt": attempt,
				"error":   err.Error(),
			})
			timeProvider.Sleep(core.Duration(config.RetryDelay))
		}
	}

	return nil, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, lastErr)
}

func open(config *Config) (*Connection, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(config.LogLevel)),
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{DB: db, Config: config}, nil
}

// AutoMigrate creates or updates the tables backing the given models
func (c *Connection) AutoMigrate(models ...any) error {
	return c.DB.AutoMigrate(models...)
}

// Close closes the database connection
func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// gormLogLevel maps the configured level onto GORM's logger levels
func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug", "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
