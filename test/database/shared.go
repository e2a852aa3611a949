package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/database"
	"github.com/AlwaysBluer/lindorm-memobase/test/util"
)

// SharedTestDB is one schema served to several independent connection pools.
// Multi-worker tests use it to model replicas racing over the same buffer
// rows: each replica gets its own pool via NewClient, all pointing at the
// same tables.
type SharedTestDB struct {
	dsn string
}

// NewSharedTestDB provisions the schema, creates the tables and raw indexes
// once, and schedules the schema drop for after every client has closed
// (t.Cleanup runs in LIFO order).
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	dsn := util.NewSchema(t)

	// Bootstrap client: migrations and index DDL only. It stays open until
	// cleanup but holds no connections once idle ones expire.
	entClient, db := util.Open(t, dsn)
	util.Migrate(t, entClient)
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateProfileSlotIndexes(context.Background(), drv))

	return &SharedTestDB{dsn: dsn}
}

// NewClient opens an independent pool over the shared schema so each
// simulated replica can be shut down on its own.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.Open(t, s.dsn)
	return database.NewClientFromEnt(entClient, db)
}
