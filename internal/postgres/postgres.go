package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/types"
	"go.uber.org/fx"
)

// DB wraps sqlx.DB and routes every query through a TracedQuerier
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// Querier interface defines the database operations repositories use.
// Both *sqlx.DB and *sqlx.Tx implement these methods
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// Module provides the database handle and closes it on shutdown
func Module() fx.Option {
	return fx.Options(
		fx.Provide(NewDB),
		fx.Invoke(registerHooks),
	)
}

// NewDB opens the configured database, retrying the first connection with
// exponential backoff until cfg.Postgres.ConnectTimeout elapses.
func NewDB(cfg *config.Configuration, logger *logger.Logger) (*DB, error) {
	driver := string(cfg.Postgres.Driver)
	dsn := cfg.Postgres.GetDSN()

	var db *sqlx.DB
	connect := func() error {
		var err error
		db, err = sqlx.Connect(driver, dsn)
		if err != nil {
			logger.Warnw("database not reachable yet", "driver", driver, "error", err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.Postgres.ConnectTimeout
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if cfg.Postgres.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	}
	if cfg.Postgres.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	}

	logger.Infow("connected to database", "driver", driver, "host", cfg.Postgres.Host)

	return NewFromSqlx(db, logger), nil
}

// NewFromSqlx wraps an already opened handle, e.g. one backed by sqlmock.
func NewFromSqlx(db *sqlx.DB, logger *logger.Logger) *DB {
	return &DB{DB: db, logger: logger}
}

// Dialect returns the database/sql driver name the handle was opened with
func (db *DB) Dialect() types.DatabaseDriver {
	return types.DatabaseDriver(db.DriverName())
}

// Close closes the database connection
func (db *DB) Close() {
	if err := db.DB.Close(); err != nil {
		db.logger.Errorw("error closing database", "error", err)
	}
}

// GetQuerier returns a traced querier over the base handle
func (db *DB) GetQuerier(ctx context.Context) Querier {
	return NewTracedQuerier(db.DB, db.logger, types.GetRequestID(ctx))
}

func registerHooks(lc fx.Lifecycle, db *DB, cfg *config.Configuration, logger *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Postgres.AutoMigrate {
				return nil
			}
			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			return Migrate(ctx, db, logger)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("closing database")
			db.Close()
			return nil
		},
	})
}
