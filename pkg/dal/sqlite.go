package dal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // register the cgo-free sqlite driver
)

func init() {
	RegisterToolFactory("sqlite", NewSQLiteTool)
}

// dollarPlaceholder rewrites $n placeholders into the ?n form sqlite binds
// positionally.
var dollarPlaceholder = regexp.MustCompile(`\$(\d+)`)

// NewSQLiteTool opens a SQLite query target.
func NewSQLiteTool(ctx context.Context, dsn string, opts ToolOptions) (QueryTool, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite target: %w", err)
	}
	// sqlite serializes writers; a single connection avoids lock thrash.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite target: %w", err)
	}
	return NewSQLiteToolFromDB(db, opts), nil
}

// NewSQLiteToolFromDB wraps an existing connection (useful for testing).
func NewSQLiteToolFromDB(db *sql.DB, opts ToolOptions) QueryTool {
	return &sqlTool{
		name:     "sqlite",
		provider: "sqlite",
		db:       db,
		caps: Capabilities{
			Provider:              "sqlite",
			Backend:               "sqlite",
			DeterministicOrdering: true,
			SupportsPagination:    true,
		},
		opts:     opts,
		classify: classifySQLiteError,
		translate: func(query string) string {
			return dollarPlaceholder.ReplaceAllString(query, "?$1")
		},
	}
}

// classifySQLiteError maps driver errors onto the envelope taxonomy. The
// driver surfaces sqlite result codes as message text, so this goes by
// substring.
func classifySQLiteError(err error) *ToolError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ToolError{
			Message:     "query exceeded its time budget",
			Category:    CategoryTimeout,
			ErrorCode:   "DB_TIMEOUT",
			IsRetryable: true,
		}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	te := &ToolError{Message: msg}
	switch {
	case strings.Contains(lower, "interrupted"):
		te.Category = CategoryTimeout
		te.ErrorCode = "DB_TIMEOUT"
		te.IsRetryable = true
	case strings.Contains(lower, "database is locked") || strings.Contains(lower, "busy"):
		te.Category = CategoryTransient
		te.ErrorCode = "TRANSIENT"
		te.IsRetryable = true
	case strings.Contains(lower, "syntax error"),
		strings.Contains(lower, "no such table"),
		strings.Contains(lower, "no such column"),
		strings.Contains(lower, "no such function"):
		te.Category = CategorySyntax
		te.ErrorCode = "SYNTAX_ERROR"
	case strings.Contains(lower, "unable to open"):
		te.Category = CategoryConnectivity
		te.ErrorCode = "CONNECTIVITY"
		te.IsRetryable = true
	default:
		te.Category = CategoryUnknown
		te.ErrorCode = "UNKNOWN"
	}
	return te
}
