package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateProfileSlotIndexes creates expression indexes over the JSONB profile
// attributes. Profile rows are logically keyed by (user_id, topic, sub_topic)
// where topic and sub_topic live inside the attributes column, which Ent
// cannot index directly.
func CreateProfileSlotIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Expression index for slot lookups during merge and dedupe repair
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_slot
		ON user_profiles (user_id, (attributes->>'topic'), (attributes->>'sub_topic'))`)
	if err != nil {
		return fmt.Errorf("failed to create profile slot index: %w", err)
	}

	// GIN index for containment filtering on attributes
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_user_profiles_attributes_gin
		ON user_profiles USING gin(attributes jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create attributes GIN index: %w", err)
	}

	return nil
}
