// Package db opens the connection pool of the configured engine and migrates the schema.
package db

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/showcase-apps/showcase/internal/config"
	"github.com/showcase-apps/showcase/internal/db/dsn"
	"github.com/showcase-apps/showcase/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 200 * time.Millisecond

// ErrUnknownEngine is returned for an engine other than postgres, mysql or sqlite.
var ErrUnknownEngine = errors.New("unknown database engine")

// Open connects to the configured database. The returned func closes the pool.
// Postgres connections come from a pgx pool shared through database/sql.
func Open(ctx context.Context, cfg *config.DB) (*gorm.DB, func(), error) {
	var (
		dialector gorm.Dialector
		closers   []func()
	)

	switch cfg.Engine {
	case config.EnginePostgres:
		poolCfg, err := pgxpool.ParseConfig(dsn.Create(cfg))
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to parse postgres dsn")
		}

		if cfg.MaxConns > 0 {
			poolCfg.MaxConns = cfg.MaxConns
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create postgres pool")
		}

		if err = pool.Ping(ctx); err != nil {
			pool.Close()

			return nil, nil, errors.Wrap(err, "failed to connect to postgres")
		}

		sqlDB := stdlib.OpenDBFromPool(pool)
		closers = append(closers, func() { _ = sqlDB.Close() }, pool.Close)
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	default:
		return nil, nil, errors.Wrap(ErrUnknownEngine, cfg.Engine)
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.NewComponent("gorm"), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  LogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		closeAll()

		return nil, nil, errors.Wrap(err, "failed to open database")
	}

	if cfg.Engine != config.EnginePostgres {
		sqlDB, err := sqlPool(gdb)
		if err != nil {
			closeAll()

			return nil, nil, err
		}

		switch {
		case cfg.Engine == config.EngineSQLite && strings.Contains(dsn.Create(cfg), ":memory:"):
			sqlDB.SetMaxOpenConns(1)
		case cfg.MaxConns > 0:
			sqlDB.SetMaxOpenConns(int(cfg.MaxConns))
		}

		closers = append(closers, func() { _ = sqlDB.Close() })
	}

	return gdb, closeAll, nil
}

// sqlPool returns the database/sql pool behind gdb. Without one the connection pool is closed.
func sqlPool(gdb *gorm.DB) (*sql.DB, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		if c, ok := gdb.ConnPool.(io.Closer); ok {
			_ = c.Close()
		}

		return nil, errors.Wrap(err, "failed to get database pool")
	}

	return sqlDB, nil
}

// LogLevel maps a config string to the gorm log level. Unknown values mean warn.
func LogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
