// Package database opens the gorm handle the repositories share and keeps
// the schema in sync with the models.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/client"
	"github.com/MikeMC777/restau-management/internal/config"
	"github.com/MikeMC777/restau-management/internal/family"
	"github.com/MikeMC777/restau-management/internal/observability"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
	"github.com/MikeMC777/restau-management/internal/product"
	"github.com/MikeMC777/restau-management/internal/table"
	"github.com/MikeMC777/restau-management/internal/user"
)

type DB struct {
	Gorm *gorm.DB
	sql  *sql.DB
	pool *pgxpool.Pool
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Open connects to the configured driver and registers the tracing callbacks.
func Open(ctx context.Context, cfg config.Config, tel *observability.Telemetry) (*DB, error) {
	var (
		d   *DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres", "":
		d, err = openPostgres(ctx, cfg.PostgresDSN)
	case "sqlite":
		d, err = OpenSQLite(cfg.SQLitePath, logger.Warn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}
	if tel != nil {
		if err := observability.RegisterGORMCallbacks(d.Gorm, tel); err != nil {
			d.Close()
			return nil, fmt.Errorf("register callbacks: %w", err)
		}
	}
	return d, nil
}

func openPostgres(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	g, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(logger.Warn))
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return &DB{Gorm: g, sql: sqlDB, pool: pool}, nil
}

// OpenSQLite opens a SQLite database. ":memory:" databases are pinned to a
// single connection so every statement sees the same schema.
func OpenSQLite(path string, level logger.LogLevel) (*DB, error) {
	g, err := gorm.Open(sqlite.Open(path), gormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	sqlDB, err := g.DB()
	if err != nil {
		return nil, err
	}
	if path == ":memory:" || path == "file::memory:" {
		sqlDB.SetMaxOpenConns(1)
	}
	return &DB{Gorm: g, sql: sqlDB}, nil
}

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&category.Category{},
		&family.Family{},
		&product.Product{},
		&client.Client{},
		&table.Table{},
		&paymentmethod.Method{},
		&order.Order{},
		&order.Item{},
		&payment.Payment{},
	}
}

func (d *DB) Migrate(ctx context.Context) error {
	if err := d.Gorm.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	return d.sql.PingContext(ctx)
}

func (d *DB) Close() {
	if d.sql != nil {
		_ = d.sql.Close()
	}
	if d.pool != nil {
		d.pool.Close()
	}
}
