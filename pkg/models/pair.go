package models

import "github.com/querra-ai/querra/ent"

// UpsertPairRequest contains fields for creating or refreshing a registry
// pair keyed by (signature_key, tenant_id)
type UpsertPairRequest struct {
	SignatureKey string         `json:"signature_key"`
	TenantID     int64          `json:"tenant_id"`
	Question     string         `json:"question"`
	SQL          string         `json:"sql_query"`
	Embedding    []float32      `json:"embedding,omitempty"`
	Roles        []string       `json:"roles,omitempty"`
	Status       string         `json:"status,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Performance  map[string]any `json:"performance,omitempty"`
}

// PairFilters contains filtering options for listing registry pairs
type PairFilters struct {
	TenantID *int64 `json:"tenant_id,omitempty"`
	Status   string `json:"status,omitempty"`
	Role     string `json:"role,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// PairListResponse contains a paginated registry pair list
type PairListResponse struct {
	Pairs      []*ent.QueryPair `json:"pairs"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}
