package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/querra-ai/querra/pkg/dal"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/sqlguard"
	"github.com/querra-ai/querra/pkg/telemetry"
	"github.com/querra-ai/querra/pkg/tenant"
)

func init() {
	telemetry.RegisterContract("engine.execute", "engine.outcome")
}

// Engine owns the execution pipeline for one query target. It is safe for
// concurrent use; the prefetch scope it owns lives until Close.
type Engine struct {
	tool      dal.QueryTool
	retriever schemastore.Retriever
	cache     CacheWriter
	prefetch  *PrefetchGroup
	opts      Options
}

// New creates an engine over one query tool. retriever and cache are
// optional; nil disables the schema-check and write-through stages.
func New(tool dal.QueryTool, retriever schemastore.Retriever, cache CacheWriter, opts Options) *Engine {
	return &Engine{
		tool:      tool,
		retriever: retriever,
		cache:     cache,
		prefetch:  NewPrefetchGroup(context.Background(), opts.PrefetchMaxConcurrency),
		opts:      opts,
	}
}

// Close cancels and awaits all in-flight prefetches.
func (e *Engine) Close() {
	e.prefetch.Close()
}

// Execute runs the full pipeline. Domain failures come back inside the
// Outcome; the error return is reserved for invariant violations.
func (e *Engine) Execute(ctx context.Context, req *Request) (*Outcome, error) {
	if req == nil || strings.TrimSpace(req.SQL) == "" {
		return nil, errors.New("engine: empty request")
	}

	ctx, span := telemetry.StartSpan(ctx, "engine.execute", telemetry.KindInternal, map[string]any{
		"engine.tenant_id":  req.TenantID,
		"engine.page_size":  e.opts.pageSize(req),
		"engine.from_cache": req.FromCache,
	})
	defer span.End()

	out := &Outcome{}

	// Budget gate: abort before issuing a doomed call.
	if !req.Deadline.IsZero() && time.Until(req.Deadline) < e.opts.deadlineGrace() {
		return e.fail(span, out, &Failure{
			Category: dal.CategoryTimeout,
			Code:     CodeDBTimeout,
			Message:  "query budget exhausted before dispatch",
		}), nil
	}

	// Structural validation. Failures never reach the tool.
	guardRes := sqlguard.Validate(req.SQL, e.opts.Guard)
	if !guardRes.IsValid {
		v := guardRes.Violations[0]
		return e.fail(span, out, &Failure{
			Category:  "validation",
			Code:      string(v.Type),
			Message:   v.Message,
			Retryable: true,
			Metadata:  map[string]any{"violation_count": len(guardRes.Violations)},
		}), nil
	}

	// Tenant rewrite. Failures never reach the tool either. Statements
	// without eligible base-table references have nothing to enforce and
	// dispatch as-is.
	dispatchSQL, params := req.SQL, []any(nil)
	if e.opts.TenantEnabled && len(guardRes.Metadata.TableLineage) > 0 {
		res, err := tenant.Rewrite(tenant.Request{
			SQL:          req.SQL,
			Provider:     e.tool.Capabilities().Provider,
			TenantID:     req.TenantID,
			TenantColumn: e.opts.TenantColumn,
			ExemptTables: e.opts.ExemptTables,
			TableColumns: e.tableColumns(),
			Options:      e.opts.Tenant,
		})
		switch {
		case err == nil:
			dispatchSQL, params = res.SQL, res.Params
			out.RewrittenSQL = res.SQL
			out.Params = res.Params
			out.RewrittenTables = res.RewrittenTables
			span.SetAttribute("tenant.predicate_count", res.PredicateCount)
		case isNoPredicates(err):
			// Every referenced table is exempt: shared reference data needs
			// no scoping.
			out.decide("tenant_rewrite", "no_eligible_references", nil)
		default:
			return e.fail(span, out, tenantFailure(err)), nil
		}
	}

	// Pre-execution schema check. Soft mode records a drift hint and lets
	// the dispatch proceed; hard mode blocks it before the tool is reached.
	if e.retriever != nil && e.opts.SchemaBindingValidation {
		if hint := schemastore.DetectDrift(e.retriever.Snapshot(), guardRes.Metadata.ColumnUsage, e.opts.SchemaDriftAutoRefresh); hint != nil {
			out.Drift = hint
			out.decide("schema_check", "drift_suspected", map[string]any{
				"missing_identifiers": hint.MissingIdentifiers,
			})
			if !e.opts.SchemaBindingSoftMode {
				return e.fail(span, out, &Failure{
					Category:  "validation",
					Code:      string(sqlguard.ViolationValidationError),
					Message:   "query references identifiers not present in the bound schema",
					Retryable: true,
				}), nil
			}
		}
	}

	size := e.opts.pageSize(req)

	// Replay shortcut: a matching recorded response skips dispatch entirely.
	if env, ok := e.lookupReplay(req, dispatchSQL, params, size); ok {
		out.decide("replay", "hit", nil)
		if env.Error != nil {
			return e.fail(span, out, e.classifyTool(env.Error)), nil
		}
		out.Result = resultFromEnvelope(env, false)
		span.SetAttribute("engine.outcome", "success")
		return out, nil
	}

	// Prefetch admission: a ready prefetched page becomes the first page.
	key := e.pageKey(dispatchSQL, req, req.PageToken, size)
	var first *dal.ToolResponseEnvelope
	var firstLatency time.Duration
	fromPrefetch := false
	if env, ok := e.prefetch.TakeReady(key); ok {
		first = env
		fromPrefetch = true
		out.decide("prefetch", "hit", nil)
	}

	// First-page dispatch.
	if first == nil {
		start := time.Now()
		env, fail := e.fetchPage(ctx, key, dispatchSQL, params, req, req.PageToken, size, e.dispatchTimeout(req))
		firstLatency = time.Since(start)
		if fail != nil {
			return e.fail(span, out, fail), nil
		}
		first = env
	}
	if fail := e.checkEnvelope(span, first); fail != nil {
		return e.fail(span, out, fail), nil
	}
	if first.Error != nil {
		return e.fail(span, out, e.classifyTool(first.Error)), nil
	}

	result := resultFromEnvelope(first, fromPrefetch)

	// Auto-pagination drains the stream sequentially; failures mid-stream
	// degrade to a partial result, never a hard error.
	if e.opts.AutoPagination && result.NextPageToken != "" {
		e.autoPaginate(ctx, out, result, dispatchSQL, params, req, size)
	}

	// Prefetch scheduling for the page after the one just served.
	if e.opts.PrefetchEnabled {
		if reason, ok := e.schedulePrefetch(req, dispatchSQL, params, result, size, firstLatency); !ok {
			out.decide("prefetch", "suppressed", map[string]any{"reason": string(reason)})
		} else {
			out.decide("prefetch", "scheduled", nil)
		}
	}

	// Cache write-through on first-time success only. The write must survive
	// request cancellation, so it runs on a detached context with its own
	// timeout.
	if e.cache != nil && !req.FromCache && req.RetryCount == 0 && req.Question != "" {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		if err := e.cache.UpdateCache(writeCtx, req.TenantID, req.Question, req.SQL, req.SchemaSnapshotID); err != nil {
			slog.Warn("Cache write-through failed", "tenant_id", req.TenantID, "error", err)
			out.decide("cache", "write_failed", nil)
		} else {
			out.decide("cache", "written", nil)
		}
		cancel()
	}

	out.Result = result
	span.SetAttribute("engine.outcome", "success")
	span.SetAttribute("engine.rows_returned", result.RowsReturned)
	span.SetAttribute("engine.pages_fetched", result.PagesFetched)
	return out, nil
}

// autoPaginate appends pages to result until a stop condition fires.
func (e *Engine) autoPaginate(ctx context.Context, out *Outcome, result *QueryResult, sql string, params []any, req *Request, size int) {
	token := result.NextPageToken
	seen := map[string]struct{}{}
	if req.PageToken != "" {
		seen[req.PageToken] = struct{}{}
	}
	emptyStreak := 0
	if result.RowsReturned == 0 {
		emptyStreak = 1
	}
	stop := StopNoNextPage

loop:
	for token != "" {
		switch {
		case e.opts.MaxPages > 0 && result.PagesFetched >= e.opts.MaxPages:
			stop = StopMaxPages
			break loop
		case e.opts.MaxRows > 0 && result.RowsReturned >= e.opts.MaxRows:
			stop = StopMaxRows
			break loop
		case !req.Deadline.IsZero() && time.Until(req.Deadline) < e.opts.deadlineGrace():
			stop = StopBudgetExhausted
			break loop
		}
		if _, dup := seen[token]; dup {
			stop = StopTokenRepeat
			break
		}
		seen[token] = struct{}{}

		key := e.pageKey(sql, req, token, size)
		env, fail := e.fetchPage(ctx, key, sql, params, req, token, size, e.dispatchTimeout(req))
		if fail != nil {
			if fail.Code == CodeMalformedResponse {
				stop = StopFetchError
			} else {
				stop = StopFetchException
			}
			break
		}
		if env.Error != nil {
			if env.Error.Category == dal.CategoryUnsupported || env.Error.RequiredCapability != "" {
				stop = StopUnsupportedCapability
			} else {
				stop = StopFetchError
			}
			break
		}
		if !dal.CompatibleVersion(env.SchemaVersion) {
			stop = StopFetchError
			break
		}

		appendEnvelope(result, env)
		next := env.Metadata.NextPageToken

		if len(env.Rows) == 0 && next != "" {
			emptyStreak++
			if emptyStreak >= 2 {
				stop = StopPathologicalEmptyPages
				token = next
				break
			}
			if e.opts.MaxPages > 0 && result.PagesFetched >= e.opts.MaxPages {
				stop = StopEmptyPageWithToken
				token = next
				break
			}
			out.decide("auto_pagination", "empty_page_with_token", nil)
		} else if len(env.Rows) > 0 {
			emptyStreak = 0
		}

		token = next
	}

	result.StopReason = stop
	if stop == StopNoNextPage {
		result.NextPageToken = ""
		result.IsTruncated = false
		result.PartialReason = ""
	} else {
		result.NextPageToken = token
		result.IsTruncated = true
		result.PartialReason = string(stop)
	}
	out.decide("auto_pagination", "stopped", map[string]any{
		"reason": string(stop),
		"pages":  result.PagesFetched,
		"rows":   result.RowsReturned,
	})
}

// schedulePrefetch applies the cheap-page heuristic and admits a background
// fetch of the next page. Returns the suppression reason when nothing was
// scheduled.
func (e *Engine) schedulePrefetch(req *Request, sql string, params []any, result *QueryResult, size int, firstLatency time.Duration) (SuppressReason, bool) {
	if e.opts.AutoPagination {
		return SuppressAutoPaginationActive, false
	}
	if result.NextPageToken == "" {
		return SuppressNoNextPage, false
	}
	if firstLatency > e.opts.CheapLatency ||
		(e.opts.CheapRowFactor > 0 && result.RowsReturned > e.opts.CheapRowFactor*size) {
		return SuppressNotCheap, false
	}
	remaining := time.Duration(0)
	if !req.Deadline.IsZero() {
		remaining = time.Until(req.Deadline)
		if remaining < e.opts.PrefetchMinBudget {
			return SuppressLowBudget, false
		}
	}

	timeout := e.opts.PrefetchCeiling
	if remaining > 0 && remaining < timeout {
		timeout = remaining
	}
	token := result.NextPageToken
	nextKey := e.pageKey(sql, req, token, size)
	dreq := dal.ExecuteRequest{
		SQL:              sql,
		TenantID:         req.TenantID,
		Params:           params,
		IncludeColumns:   true,
		Timeout:          timeout,
		PageToken:        token,
		PageSize:         size,
		SchemaSnapshotID: req.SchemaSnapshotID,
	}
	ok := e.prefetch.Schedule(nextKey, timeout, func(ctx context.Context) (*dal.ToolResponseEnvelope, error) {
		return e.tool.ExecuteSQLQuery(ctx, dreq)
	})
	if !ok {
		return SuppressAlreadyCachedOrInflight, false
	}
	return "", true
}

// fetchPage performs one page fetch through the shared singleflight group.
// Infrastructure errors and contract breaches come back as a Failure.
func (e *Engine) fetchPage(ctx context.Context, key, sql string, params []any, req *Request, token string, size int, timeout time.Duration) (*dal.ToolResponseEnvelope, *Failure) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	dreq := dal.ExecuteRequest{
		SQL:              sql,
		TenantID:         req.TenantID,
		Params:           params,
		IncludeColumns:   true,
		Timeout:          timeout,
		PageToken:        token,
		PageSize:         size,
		SchemaSnapshotID: req.SchemaSnapshotID,
	}
	env, err := e.prefetch.Fetch(ctx, key, func(ctx context.Context) (*dal.ToolResponseEnvelope, error) {
		return e.tool.ExecuteSQLQuery(ctx, dreq)
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Failure{
				Category:  dal.CategoryTimeout,
				Code:      CodeDBTimeout,
				Message:   "query timed out",
				Retryable: true,
			}
		}
		return nil, &Failure{
			Category:  dal.CategoryUnknown,
			Code:      CodeUnknown,
			Message:   "query dispatch failed",
			Retryable: true,
			Metadata:  map[string]any{"details_safe": boundDetail(err.Error())},
		}
	}
	if env == nil {
		return nil, e.malformed("empty tool response")
	}
	return env, nil
}

// checkEnvelope enforces the envelope contract on the first page.
func (e *Engine) checkEnvelope(span *telemetry.Span, env *dal.ToolResponseEnvelope) *Failure {
	if env.SchemaVersion == "" {
		return e.malformed("missing schema_version")
	}
	if !dal.CompatibleVersion(env.SchemaVersion) {
		span.SetAttribute("engine.envelope_version", env.SchemaVersion)
		return e.malformed(fmt.Sprintf("schema_version %s is incompatible", env.SchemaVersion))
	}
	return nil
}

func (e *Engine) malformed(detail string) *Failure {
	return &Failure{
		Category:  dal.CategoryUnknown,
		Code:      CodeMalformedResponse,
		Message:   "query tool returned a malformed response",
		Retryable: false,
		Metadata:  map[string]any{"details_safe": boundDetail(detail)},
	}
}

// lookupReplay serves a recorded response when the request carries a bundle
// entry for this exact dispatch.
func (e *Engine) lookupReplay(req *Request, sql string, params []any, size int) (*dal.ToolResponseEnvelope, bool) {
	if len(req.ReplayBundle) == 0 {
		return nil, false
	}
	raw, ok := req.ReplayBundle[ReplayKey(sql, params, req.TenantID, req.PageToken, size)]
	if !ok {
		return nil, false
	}
	env, err := dal.ParseEnvelope(raw, dal.ParseOptions{})
	if err != nil {
		slog.Warn("Replay bundle entry is not a valid envelope", "error", err)
		return nil, false
	}
	return env, true
}

// ReplayKey identifies one recorded dispatch inside a replay bundle.
func ReplayKey(sql string, params []any, tenantID int64, pageToken string, pageSize int) string {
	payload, _ := json.Marshal(map[string]any{
		"sql":        sql,
		"params":     params,
		"tenant_id":  tenantID,
		"page_token": pageToken,
		"page_size":  pageSize,
	})
	return PrefetchKey(string(payload), tenantID, pageToken, pageSize, "", 0, "replay")
}

func (e *Engine) pageKey(sql string, req *Request, token string, size int) string {
	return PrefetchKey(sql, req.TenantID, token, size, req.SchemaSnapshotID, req.Seed, req.CompletenessHint)
}

func (e *Engine) dispatchTimeout(req *Request) time.Duration {
	if req.Deadline.IsZero() {
		return 0
	}
	remaining := time.Until(req.Deadline)
	if remaining < 0 {
		return time.Millisecond
	}
	return remaining
}

func (e *Engine) tableColumns() map[string][]string {
	if e.retriever == nil {
		return nil
	}
	return e.retriever.Snapshot().TableColumns()
}

// fail finalizes an error outcome: drift hints are folded into the error
// metadata, span attributes are stamped, and the outcome is returned.
func (e *Engine) fail(span *telemetry.Span, out *Outcome, f *Failure) *Outcome {
	if out.Drift != nil {
		if f.Metadata == nil {
			f.Metadata = make(map[string]any, 4)
		}
		f.Metadata["schema_drift_suspected"] = true
		f.Metadata["missing_identifiers"] = out.Drift.MissingIdentifiers
		f.Metadata["schema_snapshot_id"] = out.Drift.SchemaSnapshotID
		f.Metadata["schema_drift_auto_refresh"] = out.Drift.AutoRefresh
	}
	out.Error = f
	span.SetAttribute("engine.outcome", f.Code)
	if f.Code == "PAGINATION_BACKEND_SET_CHANGED" {
		span.SetAttribute("pagination.backend_set_mismatch", true)
	}
	span.RecordError(errors.New(f.Message))
	return out
}

// classifyTool maps a structured tool error onto the canonical taxonomy.
// Tenant and capability rejections get generic messages; the original text
// goes to span-safe metadata only.
func (e *Engine) classifyTool(te *dal.ToolError) *Failure {
	code := te.ErrorCode
	if code == "" {
		switch te.Category {
		case dal.CategoryTimeout:
			code = CodeDBTimeout
		case dal.CategoryTransient:
			code = CodeTransient
		case dal.CategoryUnsupported:
			code = CodeUnsupportedCapability
		case dal.CategoryConnectivity:
			code = CodeConnectivity
		case dal.CategoryAuth:
			code = CodeAuth
		case dal.CategoryResourceExhausted:
			code = CodeResourceExhausted
		case dal.CategorySyntax:
			code = CodeSyntaxError
		case dal.CategoryTenantEnforcement:
			code = CodeTenantUnsupported
		default:
			code = CodeUnknown
		}
	}

	msg := te.Message
	switch {
	case code == CodeTenantUnsupported || te.Category == dal.CategoryTenantEnforcement:
		msg = tenant.KindUnsupportedShape.Message()
	case code == CodeUnsupportedCapability || strings.HasPrefix(code, "PAGINATION_") || strings.HasPrefix(code, "KEYSET_"):
		msg = "the query requires a capability the target does not support"
	}

	meta := map[string]any{"provider": te.Provider}
	if te.Code != "" {
		meta["provider_code"] = te.Code
	}
	if msg != te.Message {
		meta["details_safe"] = boundDetail(te.Message)
	}
	return &Failure{
		Category:          te.Category,
		Code:              code,
		Message:           msg,
		Retryable:         te.IsRetryable,
		RetryAfterSeconds: te.RetryAfterSeconds,
		Metadata:          meta,
	}
}

func isNoPredicates(err error) bool {
	var terr *tenant.Error
	return errors.As(err, &terr) && terr.Kind == tenant.KindNoPredicatesProduced
}

// tenantFailure maps a rewrite error onto the taxonomy. Every kind surfaces
// the generic tenant message except parse failures, which are plain syntax
// errors.
func tenantFailure(err error) *Failure {
	var terr *tenant.Error
	if !errors.As(err, &terr) {
		return &Failure{
			Category:  "validation",
			Code:      CodeTenantUnsupported,
			Message:   tenant.KindUnsupportedShape.Message(),
			Retryable: true,
		}
	}
	if terr.Kind == tenant.KindParseFailed {
		return &Failure{
			Category:  dal.CategorySyntax,
			Code:      CodeSyntaxError,
			Message:   terr.Error(),
			Retryable: true,
			Metadata:  map[string]any{"details_safe": boundDetail(terr.Detail())},
		}
	}
	retryable := true
	switch terr.Kind {
	case tenant.KindMissingTenantColumn, tenant.KindDialectUnsupported:
		retryable = false
	}
	return &Failure{
		Category:  dal.CategoryTenantEnforcement,
		Code:      CodeTenantUnsupported,
		Message:   terr.Error(),
		Retryable: retryable,
		Metadata:  map[string]any{"tenant_error_kind": string(terr.Kind), "details_safe": boundDetail(terr.Detail())},
	}
}

func resultFromEnvelope(env *dal.ToolResponseEnvelope, fromPrefetch bool) *QueryResult {
	res := &QueryResult{
		Rows:            env.Rows,
		Columns:         env.Columns,
		RowsReturned:    len(env.Rows),
		IsTruncated:     env.Metadata.IsTruncated,
		NextPageToken:   env.Metadata.NextPageToken,
		PartialReason:   env.Metadata.PartialReason,
		Provider:        env.Metadata.Provider,
		ExecutionTimeMs: env.Metadata.ExecutionTimeMs,
		PagesFetched:    1,
		FromPrefetch:    fromPrefetch,
	}
	if res.Rows == nil {
		res.Rows = []map[string]any{}
	}
	return res
}

func appendEnvelope(result *QueryResult, env *dal.ToolResponseEnvelope) {
	result.Rows = append(result.Rows, env.Rows...)
	result.RowsReturned = len(result.Rows)
	result.PagesFetched++
	result.ExecutionTimeMs += env.Metadata.ExecutionTimeMs
	if len(result.Columns) == 0 && len(env.Columns) > 0 {
		result.Columns = env.Columns
	}
}

func (o *Outcome) decide(stage, reason string, details map[string]any) {
	o.Decisions = append(o.Decisions, Decision{Stage: stage, Reason: reason, Details: details})
}

const maxDetailLen = 512

func boundDetail(s string) string {
	if len(s) > maxDetailLen {
		return s[:maxDetailLen] + "...(truncated)"
	}
	return s
}
