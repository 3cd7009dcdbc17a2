package telemetry

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// stickyMetadataField carries the sticky bag across process boundaries next
// to the W3C trace headers.
const stickyMetadataField = "_sticky_metadata"

// SerializeContext renders the current tracing context and sticky metadata as
// a wire-safe string map.
func SerializeContext(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	out := map[string]string(carrier)
	if b := bagFrom(ctx); b != nil {
		if data, err := json.Marshal(b.snapshot()); err == nil && string(data) != "{}" {
			out[stickyMetadataField] = string(data)
		}
	}
	return out
}

// DeserializeContext restores a context serialized elsewhere: trace linkage
// via the propagator and a fresh sticky bag seeded with the carried values.
// Using the returned context scopes the attachment; the input context is
// untouched.
func DeserializeContext(ctx context.Context, m map[string]string) context.Context {
	if len(m) == 0 {
		return ctx
	}
	carrier := propagation.MapCarrier{}
	for k, v := range m {
		if k == stickyMetadataField {
			continue
		}
		carrier.Set(k, v)
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	if raw, ok := m[stickyMetadataField]; ok {
		values := map[string]any{}
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			b := newSticky()
			for k, v := range values {
				b.values[k] = v
			}
			ctx = context.WithValue(ctx, stickyCtxKey{}, b)
		}
	}
	return ctx
}
