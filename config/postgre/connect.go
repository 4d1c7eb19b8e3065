package postgre

import (
	"context"
	"fmt"
	"sync"
	"time"

	"frostwatch-srv/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	// defaultConnectTimeout is the maximum time to wait for the initial connection.
	defaultConnectTimeout = 5 * time.Second
	// defaultMaxIdleConns is the maximum number of idle connections in the pool.
	defaultMaxIdleConns = 25
	// defaultMaxOpenConns is the maximum number of open connections to the database.
	defaultMaxOpenConns = 100
	// defaultConnMaxLifetime is the maximum amount of time a connection may be reused.
	defaultConnMaxLifetime = 30 * time.Minute
	// defaultConnMaxIdleTime is the maximum amount of time a connection may be idle.
	defaultConnMaxIdleTime = 5 * time.Minute
)

var (
	instance *gorm.DB
	mu       sync.Mutex
)

func buildDSN(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)
}

// Connect opens the PostgreSQL connection through GORM and verifies it with a
// ping. Returns the existing handle if already connected; a failed attempt can
// be retried by calling Connect again.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	db, err := gorm.Open(postgres.Open(buildDSN(cfg)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(defaultMaxIdleConns)
	sqlDB.SetMaxOpenConns(defaultMaxOpenConns)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(connectCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	instance = db
	return instance, nil
}

// Disconnect closes the PostgreSQL connection and resets the singleton so a
// new connection can be established by calling Connect again.
func Disconnect(ctx context.Context, db *gorm.DB) error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	instance = nil
	return nil
}

// HealthCheck pings the database. Returns an error when the connection is not
// initialized or the ping fails.
func HealthCheck(ctx context.Context) error {
	mu.Lock()
	db := instance
	mu.Unlock()

	if db == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	return nil
}
