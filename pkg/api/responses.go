package api

import (
	"time"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/queue"
)

// QuestionResponse is returned by POST /api/v1/questions and by the
// clarification endpoint when a session re-enters the queue.
type QuestionResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// SessionResponse is the session detail view returned by GET /api/v1/sessions/:id.
type SessionResponse struct {
	SessionID             string     `json:"session_id"`
	TenantID              int64      `json:"tenant_id"`
	Question              string     `json:"question"`
	Status                string     `json:"status"`
	FinalSQL              string     `json:"final_sql,omitempty"`
	FinalAnswer           string     `json:"final_answer,omitempty"`
	ErrorMessage          string     `json:"error_message,omitempty"`
	ErrorCode             string     `json:"error_code,omitempty"`
	ClarificationQuestion string     `json:"clarification_question,omitempty"`
	TraceID               string     `json:"trace_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	StartedAt             *time.Time `json:"started_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
}

func newSessionResponse(s *ent.QuerySession) *SessionResponse {
	resp := &SessionResponse{
		SessionID:   s.ID,
		TenantID:    s.TenantID,
		Question:    s.Question,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
	}
	resp.FinalSQL = derefString(s.FinalSQL)
	resp.FinalAnswer = derefString(s.FinalAnswer)
	resp.ErrorMessage = derefString(s.ErrorMessage)
	resp.ErrorCode = derefString(s.ErrorCode)
	resp.ClarificationQuestion = derefString(s.ClarificationQuestion)
	resp.TraceID = derefString(s.TraceID)
	return resp
}

// ResultResponse is returned by GET /api/v1/sessions/:id/result for terminal
// sessions. Result holds the engine payload (rows, columns, completeness
// metadata); NextPageToken is lifted out of it so continuation submissions
// don't have to dig through the payload.
type ResultResponse struct {
	SessionID     string         `json:"session_id"`
	Status        string         `json:"status"`
	FinalSQL      string         `json:"final_sql,omitempty"`
	FinalAnswer   string         `json:"final_answer,omitempty"`
	Result        map[string]any `json:"result,omitempty"`
	PageToken     string         `json:"page_token,omitempty"`
	NextPageToken string         `json:"next_page_token,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	ErrorCode     string         `json:"error_code,omitempty"`
	TraceID       string         `json:"trace_id,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
}

func newResultResponse(s *ent.QuerySession) *ResultResponse {
	resp := &ResultResponse{
		SessionID:    s.ID,
		Status:       string(s.Status),
		FinalSQL:     derefString(s.FinalSQL),
		FinalAnswer:  derefString(s.FinalAnswer),
		Result:       s.ResultPayload,
		PageToken:    derefString(s.PageToken),
		ErrorMessage: derefString(s.ErrorMessage),
		ErrorCode:    derefString(s.ErrorCode),
		TraceID:      derefString(s.TraceID),
		CompletedAt:  s.CompletedAt,
	}
	if tok, ok := s.ResultPayload["next_page_token"].(string); ok {
		resp.NextPageToken = tok
	}
	return resp
}

// CancelResponse is returned by POST /api/v1/sessions/:id/cancel.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HealthCheck describes one subsystem's health.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	Checks        map[string]HealthCheck `json:"checks"`
	Database      *database.HealthStatus `json:"database,omitempty"`
	WorkerPool    *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Configuration ConfigurationStats     `json:"configuration"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	LLMProviders int `json:"llm_providers"`
	QueryTargets int `json:"query_targets"`
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
