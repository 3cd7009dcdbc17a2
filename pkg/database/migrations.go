package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on question and
// final_answer fields.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for question full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_query_sessions_question_gin
		ON query_sessions USING gin(to_tsvector('english', question))`)
	if err != nil {
		return fmt.Errorf("failed to create question GIN index: %w", err)
	}

	// GIN index for final_answer full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_query_sessions_final_answer_gin
		ON query_sessions USING gin(to_tsvector('english', COALESCE(final_answer, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_answer GIN index: %w", err)
	}

	return nil
}
