package models

import (
	"time"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
)

// CreateSessionRequest contains fields for submitting a new question run
type CreateSessionRequest struct {
	SessionID        string `json:"session_id"`
	TenantID         int64  `json:"tenant_id"`
	Question         string `json:"question"`
	SchemaSnapshotID string `json:"schema_snapshot_id,omitempty"`
	PageSize         int    `json:"page_size,omitempty"`
	PageToken        string `json:"page_token,omitempty"`
	Seed             *int64 `json:"seed,omitempty"`
	TraceID          string `json:"trace_id,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Status         string     `json:"status,omitempty"`
	TenantID       *int64     `json:"tenant_id,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*ent.QuerySession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// SessionOutcome carries the terminal write applied when a run finishes.
// Status must be one of the terminal session statuses.
type SessionOutcome struct {
	Status        querysession.Status `json:"status"`
	FinalSQL      string              `json:"final_sql,omitempty"`
	ResultPayload map[string]any      `json:"result_payload,omitempty"`
	FinalAnswer   string              `json:"final_answer,omitempty"`
	ErrorMessage  string              `json:"error_message,omitempty"`
	ErrorCode     string              `json:"error_code,omitempty"`
	TraceID       string              `json:"trace_id,omitempty"`
}
