// Package database provides ready-to-use database clients for integration
// tests: an isolated schema per test, ent tables created, and the expression
// indexes applied.
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

// NewTestClient returns a client over a fresh schema on the shared test
// server. Tables come from ent's auto-migration rather than the embedded SQL
// migrations, plus the raw profile-slot indexes. Everything is torn down in
// t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.Open(t, util.NewSchema(t))
	util.Migrate(t, entClient)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateProfileSlotIndexes(context.Background(), drv))

	return database.NewClientFromEnt(entClient, db)
}
