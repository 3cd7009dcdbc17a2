package llm

import "context"

// requestDefaults stamps provider-level defaults onto requests that leave
// MaxTokens or Temperature unset. Callers build bare requests; the provider
// config decides the fallbacks.
type requestDefaults struct {
	inner       Client
	maxTokens   int
	temperature *float32
}

var _ Client = (*requestDefaults)(nil)

// WithRequestDefaults wraps a client so requests without an explicit
// MaxTokens or Temperature pick up the provider-configured values. Zero
// maxTokens and nil temperature leave the request untouched.
func WithRequestDefaults(c Client, maxTokens int, temperature *float32) Client {
	if maxTokens <= 0 && temperature == nil {
		return c
	}
	return &requestDefaults{inner: c, maxTokens: maxTokens, temperature: temperature}
}

// Complete fills the unset knobs and delegates. The request is copied so
// callers never see their inputs mutated.
func (d *requestDefaults) Complete(ctx context.Context, req *Request) (*Response, error) {
	filled := *req
	if filled.MaxTokens == 0 && d.maxTokens > 0 {
		filled.MaxTokens = d.maxTokens
	}
	if filled.Temperature == nil && d.temperature != nil {
		t := *d.temperature
		filled.Temperature = &t
	}
	return d.inner.Complete(ctx, &filled)
}

// Close closes the wrapped client.
func (d *requestDefaults) Close() error { return d.inner.Close() }
