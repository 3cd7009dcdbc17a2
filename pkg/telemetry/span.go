package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SpanKind classifies a span for the event.type attribute
type SpanKind string

const (
	KindInternal SpanKind = "internal"
	KindWorkflow SpanKind = "workflow"
	KindNode     SpanKind = "node"
	KindLLM      SpanKind = "llm"
	KindTool     SpanKind = "tool"
	KindDB       SpanKind = "db"
)

// IsValid checks if the span kind is valid
func (k SpanKind) IsValid() bool {
	switch k {
	case KindInternal, KindWorkflow, KindNode, KindLLM, KindTool, KindDB:
		return true
	}
	return false
}

func (k SpanKind) otelKind() trace.SpanKind {
	switch k {
	case KindLLM, KindTool, KindDB:
		return trace.SpanKindClient
	default:
		return trace.SpanKindInternal
	}
}

// Span wraps an otel span together with its contract bookkeeping.
type Span struct {
	span trace.Span
	name string
	set  map[string]struct{}
}

// StartSpan opens a span under the current task. The sequence number comes
// from the parent bag shared by this span's siblings; the subtree under the
// returned context gets a fresh copy with its counter reset. Callers must
// End the span on every exit path, normally via defer.
func StartSpan(ctx context.Context, name string, kind SpanKind, attrs map[string]any) (context.Context, *Span) {
	parent := bagFrom(ctx)
	if parent == nil {
		parent = newSticky()
	}
	seq := parent.next()
	ctx = context.WithValue(ctx, stickyCtxKey{}, parent.child())

	kvs := []attribute.KeyValue{
		attribute.String("event.type", string(kind)),
		attribute.String("event.name", name),
		attribute.Int64("event.seq", seq),
	}
	for k, v := range GuardAttributes(parent.snapshot()) {
		kvs = append(kvs, attrKeyValue(k, v))
	}
	guarded := GuardAttributes(attrs)
	for k, v := range guarded {
		kvs = append(kvs, attrKeyValue(k, v))
	}

	ctx, otspan := otel.Tracer(instrumentationName).Start(ctx, name,
		trace.WithSpanKind(kind.otelKind()),
		trace.WithAttributes(kvs...),
	)
	s := &Span{span: otspan, name: name, set: make(map[string]struct{}, len(guarded))}
	for k := range guarded {
		s.set[k] = struct{}{}
	}
	return ctx, s
}

// SetAttribute records a guarded attribute on the span.
func (s *Span) SetAttribute(key string, value any) {
	guarded, _ := guardValue(key, value, 0)
	s.span.SetAttributes(attrKeyValue(key, capPayload(guarded)))
	s.set[key] = struct{}{}
}

// AddEvent records a point-in-time event with guarded attributes.
func (s *Span) AddEvent(name string, attrs map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range GuardAttributes(attrs) {
		kvs = append(kvs, attrKeyValue(k, v))
	}
	s.span.AddEvent(name, trace.WithAttributes(kvs...))
}

// RecordError marks the span failed.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// TraceID returns the hex trace id of the span, empty when not sampled into
// a real trace.
func (s *Span) TraceID() string {
	sc := s.span.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// End enforces the span's attribute contract and closes it.
func (s *Span) End() {
	required, level := contractFor(s.name)
	if level != ContractOff && len(required) > 0 {
		var missing []string
		for _, attr := range required {
			if _, ok := s.set[attr]; !ok {
				missing = append(missing, attr)
			}
		}
		if len(missing) > 0 {
			s.span.AddEvent("telemetry.contract_violation", trace.WithAttributes(
				attribute.String("telemetry.span", s.name),
				attribute.StringSlice("telemetry.missing", missing),
			))
			switch level {
			case ContractError:
				s.span.SetStatus(codes.Error, "attribute contract violation")
				logger.Error("Span attribute contract violation",
					"span", s.name, "missing", strings.Join(missing, ","))
			case ContractWarn:
				logger.Warn("Span attribute contract violation",
					"span", s.name, "missing", strings.Join(missing, ","))
			}
		}
	}
	s.span.End()
}
