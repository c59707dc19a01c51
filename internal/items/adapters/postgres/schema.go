package postgres

import (
	"context"
	"fmt"

	"item-stats-service/internal/platform/database"
)

const createItemsTableSQL = `
CREATE TABLE IF NOT EXISTS items (
    id        BIGSERIAL PRIMARY KEY,
    user_id   UUID             NOT NULL,
    value     TEXT             NOT NULL,
    name      TEXT             NOT NULL,
    notes     TEXT,
    completed BOOLEAN          NOT NULL DEFAULT FALSE,
    duration  DOUBLE PRECISION,
    created   TIMESTAMPTZ      NOT NULL DEFAULT now(),
    updated   TIMESTAMPTZ      NOT NULL DEFAULT now()
);
`

const createItemsIndexesSQL = `
CREATE INDEX IF NOT EXISTS items_user_id_idx ON items (user_id);
CREATE INDEX IF NOT EXISTS items_completed_idx ON items (completed) WHERE completed;
`

// EnsureSchema creates the items table and its indexes when missing.
func EnsureSchema(ctx context.Context, db database.DB) error {
	for _, stmt := range []string{createItemsTableSQL, createItemsIndexesSQL} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure items schema: %w", err)
		}
	}
	return nil
}
