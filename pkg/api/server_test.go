package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/services"
	testdb "github.com/querra-ai/querra/test/database"
)

// newTestServer builds a full API server over a fresh test database.
// No worker pool: session transitions are driven directly through the
// service layer so handler behavior stays deterministic.
func newTestServer(t *testing.T) (*Server, *database.Client, *services.SessionService) {
	t.Helper()

	client := testdb.NewTestClient(t)
	defaults := &config.Defaults{PageSize: 100}
	pagination := config.DefaultPaginationConfig()
	questions := services.NewQuestionService(client.Client, defaults, pagination)
	sessions := services.NewSessionService(client.Client)
	cfg := &config.Config{Defaults: defaults, Pagination: pagination}

	return NewServer(cfg, client, questions, sessions, nil), client, sessions
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestServer_QuestionLifecycle(t *testing.T) {
	srv, _, sessions := newTestServer(t)
	ctx := context.Background()

	// Submit a question
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/questions", SubmitQuestionRequest{
		TenantID: 7,
		Question: "How many orders shipped last week?",
		PageSize: 50,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	submitted := decodeJSON[QuestionResponse](t, rec)
	assert.NotEmpty(t, submitted.SessionID)
	assert.Equal(t, "queued", submitted.Status)

	// Session detail shows it pending
	rec = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+submitted.SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decodeJSON[SessionResponse](t, rec)
	assert.Equal(t, submitted.SessionID, detail.SessionID)
	assert.Equal(t, int64(7), detail.TenantID)
	assert.Equal(t, "pending", detail.Status)
	assert.Nil(t, detail.CompletedAt)

	// Result is not available yet
	rec = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+submitted.SessionID+"/result", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "has not finished")

	// Simulate a worker finishing the run
	err := sessions.FinishSession(ctx, submitted.SessionID, models.SessionOutcome{
		Status:      querysession.StatusCompleted,
		FinalSQL:    "SELECT count(*) FROM orders WHERE tenant_id = $1",
		FinalAnswer: "1,204 orders shipped last week.",
		ResultPayload: map[string]any{
			"rows":            []any{map[string]any{"count": float64(1204)}},
			"rows_returned":   float64(1),
			"is_truncated":    true,
			"next_page_token": "eyJ2IjoxLCJrIjpbImlkIl19",
		},
		TraceID: "trace-abc",
	})
	require.NoError(t, err)

	// Result now returns the outcome with the continuation token lifted out
	rec = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+submitted.SessionID+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeJSON[ResultResponse](t, rec)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "1,204 orders shipped last week.", result.FinalAnswer)
	assert.Equal(t, "eyJ2IjoxLCJrIjpbImlkIl19", result.NextPageToken)
	assert.Equal(t, "trace-abc", result.TraceID)
	require.NotNil(t, result.Result)
	assert.EqualValues(t, 1, result.Result["rows_returned"])

	// Continuation submission carries the token forward
	rec = doRequest(t, srv, http.MethodPost, "/api/v1/questions", SubmitQuestionRequest{
		TenantID:  7,
		Question:  "How many orders shipped last week?",
		PageToken: result.NextPageToken,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	continuation := decodeJSON[QuestionResponse](t, rec)
	stored, err := sessions.GetSession(ctx, continuation.SessionID, false)
	require.NoError(t, err)
	require.NotNil(t, stored.PageToken)
	assert.Equal(t, result.NextPageToken, *stored.PageToken)
}

func TestServer_QuestionValidationViaService(t *testing.T) {
	srv, _, _ := newTestServer(t)

	t.Run("zero tenant", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/v1/questions", SubmitQuestionRequest{
			Question: "who am I?",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tenant_id")
	})

	t.Run("page size above maximum", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/v1/questions", SubmitQuestionRequest{
			TenantID: 1,
			Question: "big page",
			PageSize: 100_000,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "page_size")
	})
}

func TestServer_ClarificationFlow(t *testing.T) {
	srv, _, sessions := newTestServer(t)
	ctx := context.Background()

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/questions", SubmitQuestionRequest{
		TenantID: 3,
		Question: "Show the report",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	submitted := decodeJSON[QuestionResponse](t, rec)

	// Worker suspends the run waiting for an answer
	err := sessions.AwaitClarification(ctx, submitted.SessionID, "Which report: sales or inventory?")
	require.NoError(t, err)

	// Result endpoint surfaces the pending question
	rec = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+submitted.SessionID+"/result", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "awaiting clarification")
	assert.Contains(t, rec.Body.String(), "sales or inventory")

	// Posting the answer requeues the session
	rec = doRequest(t, srv, http.MethodPost,
		"/api/v1/sessions/"+submitted.SessionID+"/clarification",
		ClarificationRequest{Answer: "sales"})
	require.Equal(t, http.StatusOK, rec.Code)

	resumed, err := sessions.GetSession(ctx, submitted.SessionID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusPending, resumed.Status)
	require.NotNil(t, resumed.ClarificationAnswer)
	assert.Equal(t, "sales", *resumed.ClarificationAnswer)
	assert.Nil(t, resumed.ClarificationQuestion)

	// A second answer hits a session that is no longer awaiting
	rec = doRequest(t, srv, http.MethodPost,
		"/api/v1/sessions/"+submitted.SessionID+"/clarification",
		ClarificationRequest{Answer: "inventory"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown session resolves to 404, not 409
	rec = doRequest(t, srv, http.MethodPost,
		"/api/v1/sessions/"+uuid.New().String()+"/clarification",
		ClarificationRequest{Answer: "sales"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CancelFlow(t *testing.T) {
	srv, _, sessions := newTestServer(t)
	ctx := context.Background()

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/questions", SubmitQuestionRequest{
		TenantID: 5,
		Question: "Long running analysis",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	submitted := decodeJSON[QuestionResponse](t, rec)

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+submitted.SessionID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cancelled, err := sessions.GetSession(ctx, submitted.SessionID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusCancelled, cancelled.Status)

	// Already terminal: nothing left to cancel
	rec = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+submitted.SessionID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+uuid.New().String()+"/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetSessionNotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource not found")
}

func TestServer_Healthz(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decodeJSON[HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
	require.Contains(t, health.Checks, "database")
	assert.Equal(t, "healthy", health.Checks["database"].Status)
	// No worker pool wired in this test server
	assert.NotContains(t, health.Checks, "worker_pool")
	require.NotNil(t, health.Database)
	assert.Equal(t, "healthy", health.Database.Status)
}

func TestServer_SecurityHeadersOnRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
