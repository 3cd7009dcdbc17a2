package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func findSpan(t *testing.T, spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("span %q not recorded", name)
	return nil
}

func TestSiblingSpansShareSequenceCounter(t *testing.T) {
	sr := setupRecorder(t)

	ctx := WithSticky(context.Background(), "session_id", "s-1")

	ctxA, spanA := StartSpan(ctx, "first", KindWorkflow, nil)
	childCtx, child := StartSpan(ctxA, "first.child", KindNode, nil)
	_, grandchild := StartSpan(childCtx, "first.grandchild", KindNode, nil)
	grandchild.End()
	child.End()
	_, child2 := StartSpan(ctxA, "first.child2", KindNode, nil)
	child2.End()
	spanA.End()
	_, spanB := StartSpan(ctx, "second", KindWorkflow, nil)
	spanB.End()

	spans := sr.Ended()
	require.Len(t, spans, 5)

	wantSeq := map[string]int64{
		"first":            0,
		"second":           1,
		"first.child":      0,
		"first.child2":     1,
		"first.grandchild": 0,
	}
	for name, want := range wantSeq {
		v, ok := spanAttr(findSpan(t, spans, name), "event.seq")
		require.True(t, ok, "span %s has no event.seq", name)
		assert.Equal(t, want, v.AsInt64(), "span %s", name)
	}
}

func TestStickyMetadataDoesNotLeakUpward(t *testing.T) {
	sr := setupRecorder(t)

	ctx := WithSticky(context.Background(), "session_id", "s-1")
	ctxA, spanA := StartSpan(ctx, "parent", KindWorkflow, nil)

	ctxA = WithSticky(ctxA, "node", "plan")
	_, inner := StartSpan(ctxA, "inner", KindNode, nil)
	inner.End()
	spanA.End()

	// A sibling of parent started from the original context must not see the
	// value written inside parent's subtree.
	_, sibling := StartSpan(ctx, "sibling", KindWorkflow, nil)
	sibling.End()

	spans := sr.Ended()
	v, ok := spanAttr(findSpan(t, spans, "inner"), "node")
	require.True(t, ok)
	assert.Equal(t, "plan", v.AsString())

	_, ok = spanAttr(findSpan(t, spans, "sibling"), "node")
	assert.False(t, ok, "sticky write leaked upward")

	v, ok = spanAttr(findSpan(t, spans, "sibling"), "session_id")
	require.True(t, ok)
	assert.Equal(t, "s-1", v.AsString())
}

func TestStartSpanAutoFillsEventFields(t *testing.T) {
	sr := setupRecorder(t)

	_, span := StartSpan(context.Background(), "db.query", KindDB, map[string]any{"db.rows": 3})
	span.End()

	s := findSpan(t, sr.Ended(), "db.query")
	v, ok := spanAttr(s, "event.type")
	require.True(t, ok)
	assert.Equal(t, "db", v.AsString())
	v, ok = spanAttr(s, "event.name")
	require.True(t, ok)
	assert.Equal(t, "db.query", v.AsString())
	v, ok = spanAttr(s, "db.rows")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsInt64())
	assert.Equal(t, trace.SpanKindClient, s.SpanKind())
}

func TestGuardAttributesRedaction(t *testing.T) {
	out := GuardAttributes(map[string]any{
		"password":      "hunter2",
		"Authorization": "Bearer abc.def",
		"note":          "call with Bearer xyz.123 attached",
		"nested":        map[string]any{"api_key": "k-123", "plain": "ok"},
		"count":         7,
	})

	assert.Equal(t, redactedPlaceholder, out["password"])
	assert.Equal(t, redactedPlaceholder, out["Authorization"])
	assert.NotContains(t, out["note"], "xyz.123")
	nested := out["nested"].(map[string]any)
	assert.Equal(t, redactedPlaceholder, nested["api_key"])
	assert.Equal(t, "ok", nested["plain"])
	assert.Equal(t, 7, out["count"])
}

func TestGuardAttributesBounds(t *testing.T) {
	long := strings.Repeat("x", maxStringLen+100)
	out := GuardAttributes(map[string]any{"body": long})
	bounded := out["body"].(string)
	assert.Contains(t, bounded, "truncated 100 bytes")
	assert.Less(t, len(bounded), len(long))

	items := make([]any, maxItems+10)
	for i := range items {
		items[i] = i
	}
	out = GuardAttributes(map[string]any{"rows": items})
	rows := out["rows"].([]any)
	assert.Len(t, rows, maxItems+1)
	assert.Contains(t, rows[maxItems], "10 items truncated")
}

func TestGuardAttributesPayloadCeiling(t *testing.T) {
	huge := map[string]any{"chunk": strings.Repeat("y", maxStringLen)}
	payload := make([]any, 0, 32)
	for i := 0; i < 32; i++ {
		payload = append(payload, huge)
	}
	out := GuardAttributes(map[string]any{"result": payload})

	ref, ok := out["result"].(map[string]any)
	require.True(t, ok, "oversized payload should collapse to a hash reference")
	assert.Contains(t, ref["_ref"], "sha256:")
	assert.Greater(t, ref["_bytes"].(int), maxPayloadBytes)
}

func TestContractEnforcement(t *testing.T) {
	sr := setupRecorder(t)
	RegisterContract("tool.execute", "tool.name", "tool.status")
	t.Cleanup(func() {
		contractMu.Lock()
		delete(contracts, "tool.execute")
		contractMu.Unlock()
		SetContractLevel(ContractWarn)
	})

	SetContractLevel(ContractWarn)
	_, span := StartSpan(context.Background(), "tool.execute", KindTool, map[string]any{"tool.name": "execute_sql_query"})
	span.End()

	s := findSpan(t, sr.Ended(), "tool.execute")
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "telemetry.contract_violation", s.Events()[0].Name)

	// Satisfied contract emits nothing.
	_, span = StartSpan(context.Background(), "tool.execute", KindTool, map[string]any{"tool.name": "x"})
	span.SetAttribute("tool.status", "ok")
	span.End()
	spans := sr.Ended()
	assert.Empty(t, spans[len(spans)-1].Events())

	// Off level skips the check entirely.
	SetContractLevel(ContractOff)
	_, span = StartSpan(context.Background(), "tool.execute", KindTool, nil)
	span.End()
	spans = sr.Ended()
	assert.Empty(t, spans[len(spans)-1].Events())
}

func TestContextSerializationRoundTrip(t *testing.T) {
	// Setup installs the propagator; the recorder provider goes in afterwards
	// so spans carry real trace ids.
	shutdown, err := Setup(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	setupRecorder(t)

	ctx := WithSticky(context.Background(), "session_id", "s-9")
	ctx = WithSticky(ctx, "attempt", 2)
	ctx, span := StartSpan(ctx, "origin", KindWorkflow, nil)
	defer span.End()

	wire := SerializeContext(ctx)
	assert.Contains(t, wire, "traceparent")
	assert.Contains(t, wire, stickyMetadataField)

	restored := DeserializeContext(context.Background(), wire)
	v, ok := StickyValue(restored, "session_id")
	require.True(t, ok)
	assert.Equal(t, "s-9", v)

	want := trace.SpanContextFromContext(ctx).TraceID()
	got := trace.SpanContextFromContext(restored).TraceID()
	assert.Equal(t, want, got)
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, KindLLM.IsValid())
	assert.True(t, KindDB.IsValid())
	assert.False(t, SpanKind("bogus").IsValid())

	assert.True(t, ContractWarn.IsValid())
	assert.False(t, ContractLevel("loud").IsValid())
}
