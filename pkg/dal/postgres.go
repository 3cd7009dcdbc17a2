package dal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver
)

func init() {
	RegisterToolFactory("postgres", NewPostgresTool)
	RegisterToolFactory("postgresql", NewPostgresTool)
}

// NewPostgresTool opens a Postgres query target through the pgx driver.
func NewPostgresTool(ctx context.Context, dsn string, opts ToolOptions) (QueryTool, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres target: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(2)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres target: %w", err)
	}
	return NewPostgresToolFromDB(db, opts), nil
}

// NewPostgresToolFromDB wraps an existing connection (useful for testing).
func NewPostgresToolFromDB(db *sql.DB, opts ToolOptions) QueryTool {
	return &sqlTool{
		name:     "postgres",
		provider: "postgres",
		db:       db,
		caps: Capabilities{
			Provider:              "postgres",
			Backend:               "postgres",
			DeterministicOrdering: true,
			SupportsPagination:    true,
		},
		opts:     opts,
		classify: classifyPostgresError,
	}
}

// classifyPostgresError maps a driver error onto the envelope taxonomy using
// the SQLSTATE class.
func classifyPostgresError(err error) *ToolError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ToolError{
			Message:     "query exceeded its time budget",
			Category:    CategoryTimeout,
			ErrorCode:   "DB_TIMEOUT",
			IsRetryable: true,
		}
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &ToolError{Message: err.Error(), Category: CategoryUnknown, ErrorCode: "UNKNOWN"}
	}

	te := &ToolError{Message: pgErr.Message, Code: pgErr.Code}
	switch {
	case pgErr.Code == "57014":
		te.Category = CategoryTimeout
		te.ErrorCode = "DB_TIMEOUT"
		te.IsRetryable = true
	case pgErr.Code == "40001" || pgErr.Code == "40P01":
		te.Category = CategoryTransient
		te.ErrorCode = "TRANSIENT"
		te.IsRetryable = true
	case pgErr.Code == "0A000":
		te.Category = CategoryUnsupported
		te.ErrorCode = "UNSUPPORTED_CAPABILITY"
	case strings.HasPrefix(pgErr.Code, "08"):
		te.Category = CategoryConnectivity
		te.ErrorCode = "CONNECTIVITY"
		te.IsRetryable = true
	case strings.HasPrefix(pgErr.Code, "28"):
		te.Category = CategoryAuth
		te.ErrorCode = "AUTH"
	case strings.HasPrefix(pgErr.Code, "53"):
		te.Category = CategoryResourceExhausted
		te.ErrorCode = "RESOURCE_EXHAUSTED"
		te.IsRetryable = true
	case strings.HasPrefix(pgErr.Code, "42"):
		te.Category = CategorySyntax
		te.ErrorCode = "SYNTAX_ERROR"
	default:
		te.Category = CategoryUnknown
		te.ErrorCode = "UNKNOWN"
	}
	return te
}
