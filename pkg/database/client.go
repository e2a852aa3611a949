// Package database opens the PostgreSQL pool behind the ent client and
// applies the embedded schema migrations on startup.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
)

//go:embed migrations
var migrationsFS embed.FS

// Client bundles the generated ent client with the raw pool it runs on. The
// raw handle serves health checks and the expression-index DDL that ent
// cannot emit from its schema.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the raw pool for callers that bypass ent.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open ent client. Test helpers use this
// after provisioning a schema of their own.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the pool, applies pending migrations, and returns a ready
// client. The embedded migration set is the source of truth for production
// schemas; tests create throwaway schemas through ent instead.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	db, err := openPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := migrateUp(db, cfg.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	if err := CreateProfileSlotIndexes(ctx, drv); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create profile slot indexes: %w", err)
	}

	return &Client{Client: ent.NewClient(ent.Driver(drv)), db: db}, nil
}

// openPool dials PostgreSQL through the pgx stdlib driver and applies the
// configured pool limits.
func openPool(ctx context.Context, cfg Config) (*stdsql.DB, error) {
	db, err := stdsql.Open("pgx", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// migrateUp applies every pending embedded migration. Migration SQL is
// generated from the ent schema (make migrate-create), committed under
// pkg/database/migrations, and embedded at compile time so the binary
// carries its own schema history.
func migrateUp(db *stdsql.DB, dbName string) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list embedded migrations: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("no embedded migration files found, binary may be built incorrectly")
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}
	drv, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dbName, drv)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source. m.Close() would also close the postgres driver,
	// and with it the shared *sql.DB the ent client is about to run on.
	if err := src.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}
	return nil
}
