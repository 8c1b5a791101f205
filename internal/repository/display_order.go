package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// replaceDisplayOrder rewrites display_order for every id in one transaction
// so the persisted sequence is always the dense 0..n-1 order of the slice.
// Deletes deliberately do not pass through here; gaps they leave are kept.
func replaceDisplayOrder(ctx context.Context, db *sqlx.DB, table string, ids []string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder %s: %w", table, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := fmt.Sprintf("UPDATE %s SET display_order = $1, updated_at = $2 WHERE id = $3", table)
	now := time.Now().UTC()
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, query, i, now, id); err != nil {
			return fmt.Errorf("reorder %s id %s: %w", table, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder %s: %w", table, err)
	}
	return nil
}
