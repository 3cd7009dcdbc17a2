package telemetry

import (
	"context"
	"sync"
)

type stickyCtxKey struct{}

// sticky is the per-task metadata bag. Spans started under the same parent
// share the parent's bag, which is what coordinates their event sequence
// numbers; each started span installs a copy for its own subtree so writes
// below never leak upward.
type sticky struct {
	mu     sync.Mutex
	values map[string]any
	seq    int64
}

func newSticky() *sticky {
	return &sticky{values: make(map[string]any)}
}

func (s *sticky) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.seq
	s.seq++
	return n
}

func (s *sticky) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *sticky) snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// child copies the values and resets the sequence counter.
func (s *sticky) child() *sticky {
	return &sticky{values: s.snapshot()}
}

func bagFrom(ctx context.Context) *sticky {
	b, _ := ctx.Value(stickyCtxKey{}).(*sticky)
	return b
}

// WithSticky records a metadata value on the current task's bag. The value is
// merged into the attributes of every span subsequently started under this
// context, including siblings sharing the bag.
func WithSticky(ctx context.Context, key string, value any) context.Context {
	if b := bagFrom(ctx); b != nil {
		b.set(key, value)
		return ctx
	}
	b := newSticky()
	b.set(key, value)
	return context.WithValue(ctx, stickyCtxKey{}, b)
}

// StickyValue reads a metadata value from the current task's bag.
func StickyValue(ctx context.Context, key string) (any, bool) {
	b := bagFrom(ctx)
	if b == nil {
		return nil, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	return v, ok
}
