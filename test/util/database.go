// Package util bootstraps PostgreSQL for integration tests: one shared
// server per test binary, one throwaway schema per test.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
)

var server struct {
	once sync.Once
	dsn  string
	err  error
}

// PostgresDSN returns the DSN of the PostgreSQL server shared by every test
// in the binary. CI points it at a service container via CI_DATABASE_URL;
// local runs start one testcontainer on first use and let Ryuk reap it.
func PostgresDSN(t *testing.T) string {
	t.Helper()

	if fromCI := os.Getenv("CI_DATABASE_URL"); fromCI != "" {
		return fromCI
	}

	server.once.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			server.err = fmt.Errorf("start postgres container: %w", err)
			return
		}
		server.dsn, server.err = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, server.err, "shared PostgreSQL instance unavailable")
	return server.dsn
}

// NewSchema carves an isolated schema out of the shared server and returns a
// DSN whose search_path pins every pooled connection to it. The schema is
// dropped in t.Cleanup, after any clients opened later have closed.
func NewSchema(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	base := PostgresDSN(t)
	name := schemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+name)
	require.NoError(t, admin.Close())
	require.NoError(t, err)

	t.Cleanup(func() {
		admin, err := stdsql.Open("pgx", base)
		if err != nil {
			t.Logf("drop schema %s: %v", name, err)
			return
		}
		defer admin.Close()
		if _, err := admin.ExecContext(context.Background(), "DROP SCHEMA IF EXISTS "+name+" CASCADE"); err != nil {
			t.Logf("drop schema %s: %v", name, err)
		}
	})

	return WithSearchPath(base, name)
}

// Open opens a small pool over dsn, wraps it in an ent client, and registers
// both for cleanup. It does not create tables; call Migrate on one of the
// clients sharing the schema.
func Open(t *testing.T, dsn string) (*ent.Client, *stdsql.DB) {
	t.Helper()

	db, err := stdsql.Open("pgx", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	t.Cleanup(func() {
		_ = client.Close()
		_ = db.Close()
	})
	return client, db
}

// Migrate creates the ent-managed tables in the client's search_path schema.
func Migrate(t *testing.T, client *ent.Client) {
	t.Helper()
	require.NoError(t, client.Schema.Create(context.Background()))
}

// WithSearchPath appends a search_path parameter so every connection in the
// pool lands in the given schema.
func WithSearchPath(dsn, schema string) string {
	sep := "?"
	if strings.ContainsRune(dsn, '?') {
		sep = "&"
	}
	return dsn + sep + "search_path=" + schema
}

// schemaName derives a unique, identifier-safe schema name from the test
// name. PostgreSQL truncates identifiers at 63 bytes, so the test-name part
// is capped and a random suffix keeps parallel runs apart.
func schemaName(t *testing.T) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, t.Name())
	if len(sanitized) > 40 {
		sanitized = sanitized[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("schema name suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", sanitized, hex.EncodeToString(suffix))
}
