package api

// SubmitQuestionRequest is the HTTP request body for POST /api/v1/questions.
type SubmitQuestionRequest struct {
	TenantID         int64  `json:"tenant_id"`
	Question         string `json:"question"`
	SchemaSnapshotID string `json:"schema_snapshot_id,omitempty"`
	PageSize         int    `json:"page_size,omitempty"`
	PageToken        string `json:"page_token,omitempty"`
	Seed             *int64 `json:"seed,omitempty"`
	TraceID          string `json:"trace_id,omitempty"`
}

// ClarificationRequest is the HTTP request body for
// POST /api/v1/sessions/:id/clarification.
type ClarificationRequest struct {
	Answer string `json:"answer"`
}
