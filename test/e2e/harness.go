// Package e2e exercises the full agent stack: the HTTP API over a live
// worker pool, the workflow graph driven by a scripted LLM, and the
// execution engine dispatching against a seeded SQLite target, with the
// shared Postgres test database as the control plane.
package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/dal"
	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/queue"
	"github.com/querra-ai/querra/pkg/registry"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/services"
	"github.com/querra-ai/querra/pkg/sqlguard"
	"github.com/querra-ai/querra/pkg/tenant"
	"github.com/querra-ai/querra/pkg/workflow"
)

// salesData seeds the query target with two tenants' worth of orders:
// tenant 7 has five orders (three shipped, totals summing to 275), tenant 8
// has two (one shipped). The scenarios assert against these figures.
var salesData = []string{
	`CREATE TABLE customers (
		id        INTEGER PRIMARY KEY,
		tenant_id INTEGER NOT NULL,
		name      TEXT NOT NULL,
		region    TEXT NOT NULL
	)`,
	`CREATE TABLE orders (
		id          INTEGER PRIMARY KEY,
		tenant_id   INTEGER NOT NULL,
		customer_id INTEGER NOT NULL REFERENCES customers (id),
		status      TEXT NOT NULL,
		total       REAL NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`INSERT INTO customers (id, tenant_id, name, region) VALUES
		(1, 7, 'Acme Logistics', 'north'),
		(2, 7, 'Borealis Foods', 'south'),
		(3, 8, 'Cullen Freight', 'east')`,
	`INSERT INTO orders (id, tenant_id, customer_id, status, total, created_at) VALUES
		(1, 7, 1, 'shipped',   120.0, '2026-07-01'),
		(2, 7, 1, 'pending',    35.0, '2026-07-03'),
		(3, 7, 2, 'shipped',    60.0, '2026-07-05'),
		(4, 7, 2, 'shipped',    45.0, '2026-07-09'),
		(5, 7, 1, 'cancelled',  15.0, '2026-07-11'),
		(6, 8, 3, 'shipped',    99.0, '2026-07-02'),
		(7, 8, 3, 'pending',    11.0, '2026-07-04')`,
}

// openSalesDB opens an in-memory SQLite target and seeds the sales data.
// A single pinned connection keeps the memory database alive for the test.
func openSalesDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })
	for _, stmt := range salesData {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

// salesSnapshot mirrors the seeded tables so retrieval, binding validation,
// and keyset tie-breaker checks see the schema the target actually has.
func salesSnapshot() *schemastore.Snapshot {
	return schemastore.NewSnapshot([]schemastore.TableDef{
		{
			Name:        "customers",
			Description: "Buying organizations",
			Columns: []schemastore.ColumnDef{
				{Name: "id", Type: "bigint", NotNull: true},
				{Name: "tenant_id", Type: "bigint", NotNull: true},
				{Name: "name", Type: "text", NotNull: true},
				{Name: "region", Type: "text", NotNull: true},
			},
			UniqueKeys: [][]string{{"id"}},
		},
		{
			Name:        "orders",
			Description: "Customer orders with fulfillment status",
			Columns: []schemastore.ColumnDef{
				{Name: "id", Type: "bigint", NotNull: true},
				{Name: "tenant_id", Type: "bigint", NotNull: true},
				{Name: "customer_id", Type: "bigint", NotNull: true},
				{Name: "status", Type: "text", NotNull: true},
				{Name: "total", Type: "numeric", NotNull: true},
				{Name: "created_at", Type: "timestamp", NotNull: true},
			},
			ForeignKeys: []schemastore.ForeignKey{
				{Column: "customer_id", RefTable: "customers", RefColumn: "id"},
			},
			UniqueKeys: [][]string{{"id"}},
		},
	})
}

// appOptions tunes one replica. The zero value works for most scenarios;
// only llm is required.
type appOptions struct {
	podID string
	llm   *scriptedLLM
	queue *config.QueueConfig
	// limits overrides the workflow loop bounds; zero uses the e2e defaults
	// (two correction rounds, one clarify round).
	limits workflow.Limits
	// guard overrides the validation policy; nil uses the built-in defaults.
	guard *sqlguard.Options
	// failOpen degrades checkpoint and interaction write failures to a flag.
	failOpen bool
	// cache wires the write-through query cache.
	cache bool
	// fewShot wires the recommendation registry into the generate prompt.
	fewShot bool

	pageSize        int
	questionTimeout time.Duration
}

// app is one running replica over the shared control plane.
type app struct {
	handler      http.Handler
	pool         *queue.WorkerPool
	client       *database.Client
	sessions     *services.SessionService
	interactions *services.InteractionService
	pairs        *services.PairService
}

// startApp assembles the replica the way the server binary does: services,
// schema store, query tool, engine, workflow runner, executor, worker pool,
// and the HTTP server on top. The pool starts polling immediately and stops
// on test cleanup.
func startApp(t *testing.T, client *database.Client, dataDB *sql.DB, opts appOptions) *app {
	t.Helper()
	require.NotNil(t, opts.llm, "appOptions.llm is required")

	if opts.podID == "" {
		opts.podID = "pod-" + uuid.New().String()[:8]
	}
	if opts.queue == nil {
		opts.queue = e2eQueueConfig()
	}
	if opts.limits == (workflow.Limits{}) {
		opts.limits = e2eLimits()
	}
	if opts.pageSize == 0 {
		opts.pageSize = 100
	}
	if opts.questionTimeout == 0 {
		opts.questionTimeout = 15 * time.Second
	}
	guard := sqlguard.DefaultOptions()
	if opts.guard != nil {
		guard = *opts.guard
	}

	defaults := &config.Defaults{PageSize: opts.pageSize, FewShotLimit: 2}
	pagination := config.DefaultPaginationConfig()

	sessions := services.NewSessionService(client.Client)
	questions := services.NewQuestionService(client.Client, defaults, pagination)
	interactions := services.NewInteractionService(client.Client)
	pairs := services.NewPairService(client.Client, nil)

	var cacheLookup workflow.CacheLookup
	var cacheWriter engine.CacheWriter
	if opts.cache {
		cacheSvc := services.NewCacheService(client.Client, nil, services.CacheOptions{})
		cacheLookup, cacheWriter = cacheSvc, cacheSvc
	}

	var fewShot workflow.FewShotProvider
	if opts.fewShot {
		fewShot = services.NewFewShotService(registry.New(pairs, registry.DefaultOptions()))
	}

	snapshot := salesSnapshot()
	store := schemastore.NewStore(snapshot, schemastore.StoreConfig{})

	// The tool wraps the caller-owned handle so replicas can share one
	// seeded target; openSalesDB owns the close.
	tool := dal.NewSQLiteToolFromDB(dataDB, dal.ToolOptions{
		CursorSecret:   []byte("e2e-cursor-secret"),
		RowLimit:       500,
		TieBreakerMeta: snapshot.TieBreakerMeta,
	})

	eng := engine.New(tool, store, cacheWriter, engine.Options{
		Guard:                   guard,
		TenantEnabled:           true,
		Tenant:                  tenant.DefaultOptions(),
		MaxPages:                5,
		MaxRows:                 1000,
		SchemaBindingValidation: true,
		SchemaBindingSoftMode:   true,
		DefaultPageSize:         50,
	})
	t.Cleanup(eng.Close)

	checkpointer := workflow.NewEntCheckpointer(client.Client)
	runner := workflow.NewRunner(&workflow.Nodes{
		LLM:          opts.llm,
		Engine:       eng,
		Retriever:    store,
		Cache:        cacheLookup,
		FewShot:      fewShot,
		Guard:        guard,
		FewShotLimit: defaults.FewShotLimit,
	}, workflow.RunnerConfig{
		Checkpointer:        checkpointer,
		Recorder:            interactions,
		Limits:              opts.limits,
		PersistenceFailOpen: opts.failOpen,
	})

	executor := queue.NewWorkflowExecutor(queue.ExecutorConfig{
		Runner:          runner,
		Checkpointer:    checkpointer,
		QuestionTimeout: opts.questionTimeout,
		DefaultPageSize: defaults.PageSize,
	})

	pool := queue.NewWorkerPool(opts.podID, client.Client, sessions, opts.queue, executor)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	cfg := &config.Config{Defaults: defaults, Pagination: pagination, Queue: opts.queue}
	srv := api.NewServer(cfg, client, questions, sessions, pool)

	return &app{
		handler:      srv.Handler(),
		pool:         pool,
		client:       client,
		sessions:     sessions,
		interactions: interactions,
		pairs:        pairs,
	}
}

func e2eQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   8,
		PollInterval:            25 * time.Millisecond,
		SessionTimeout:          20 * time.Second,
		HeartbeatInterval:       time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
		OrphanDetectionInterval: 250 * time.Millisecond,
		OrphanThreshold:         time.Minute,
		MaxRequeues:             1,
	}
}

func e2eLimits() workflow.Limits {
	return workflow.Limits{
		MaxCorrectionRounds: 2,
		MaxClarifyRounds:    1,
		MaxAuditEntries:     50,
		MaxAuditBytes:       64 * 1024,
		MaxTransitions:      40,
	}
}

func (a *app) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
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
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// submit posts a question and returns the accepted response.
func (a *app) submit(t *testing.T, req api.SubmitQuestionRequest) api.QuestionResponse {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/questions", req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	return decodeBody[api.QuestionResponse](t, rec)
}

// result fetches a terminal session's stored outcome.
func (a *app) result(t *testing.T, sessionID string) api.ResultResponse {
	t.Helper()
	rec := a.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[api.ResultResponse](t, rec)
}

// awaitStatus polls until the session reaches the wanted status. Reaching a
// different terminal status fails immediately with the stored error.
func (a *app) awaitStatus(t *testing.T, sessionID string, want querysession.Status) *ent.QuerySession {
	t.Helper()
	var last *ent.QuerySession
	awaitCondition(t, 15*time.Second, 25*time.Millisecond,
		fmt.Sprintf("session %s to reach %s", sessionID, want),
		func() bool {
			sess, err := a.sessions.GetSession(context.Background(), sessionID, false)
			if err != nil {
				return false
			}
			last = sess
			if sess.Status == want {
				return true
			}
			if terminalStatus(sess.Status) {
				t.Fatalf("session %s settled at %s (error %q) while waiting for %s",
					sessionID, sess.Status, deref(sess.ErrorMessage), want)
			}
			return false
		})
	return last
}

func terminalStatus(s querysession.Status) bool {
	switch s {
	case querysession.StatusCompleted, querysession.StatusFailed,
		querysession.StatusTimedOut, querysession.StatusCancelled:
		return true
	}
	return false
}

func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %v: %s", timeout, msg)
}

// resultRows unpacks the rows list from a stored result payload.
func resultRows(t *testing.T, res api.ResultResponse) []map[string]any {
	t.Helper()
	raw, ok := res.Result["rows"].([]any)
	require.True(t, ok, "result payload carries no rows: %v", res.Result)
	rows := make([]map[string]any, len(raw))
	for i, r := range raw {
		m, ok := r.(map[string]any)
		require.True(t, ok, "row %d is not an object: %v", i, r)
		rows[i] = m
	}
	return rows
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
