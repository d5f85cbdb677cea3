package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/yigit/admission/internal/config"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// driverNames maps configured drivers to registered database/sql drivers
var driverNames = map[string]string{
	config.DriverMySQL:    "mysql",
	config.DriverPostgres: "pgx",
	config.DriverSQLite:   "sqlite",
}

// Provider hands out one scoped connection per data-access operation
type Provider struct {
	DB     *sql.DB
	driver string
}

// Open opens and pings the configured database
func Open(ctx context.Context, cfg *config.Config) (*Provider, error) {
	driverName, ok := driverNames[cfg.Database.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	sqlDB, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return New(sqlDB, cfg.Database.Driver), nil
}

// New wraps an already opened handle
func New(sqlDB *sql.DB, driver string) *Provider {
	return &Provider{DB: sqlDB, driver: driver}
}

// Acquire returns a dedicated connection. The caller must Close it.
func (p *Provider) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := p.DB.Conn(ctx)
	if err != nil {
		logger.Error().Err(err).Str("driver", p.driver).Msg("Failed to acquire database connection")
		return nil, apperrors.NewConnectionError(err)
	}
	return conn, nil
}

// Builder returns a statement builder using the driver's placeholder style
func (p *Provider) Builder() squirrel.StatementBuilderType {
	if p.driver == config.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Ping checks that a connection can be acquired and used
func (p *Provider) Ping(ctx context.Context) error {
	return p.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.PingContext(ctx)
	})
}

// Close closes the underlying handle
func (p *Provider) Close() error {
	if p.DB != nil {
		return p.DB.Close()
	}
	return nil
}
