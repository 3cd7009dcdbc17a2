package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/querra-ai/querra/pkg/dal"
)

// slotState tracks the lifecycle of one prefetched page
type slotState string

const (
	slotInflight  slotState = "inflight"
	slotReady     slotState = "ready"
	slotFailed    slotState = "failed"
	slotCancelled slotState = "cancelled"
)

type slot struct {
	state slotState
	env   *dal.ToolResponseEnvelope
}

// PrefetchGroup is the structured-concurrency scope for background page
// fetches. Scheduled fetches run under a bounded errgroup derived from the
// scope context; Close cancels the context and awaits every goroutine, so no
// fetch outlives the scope. Results land in a keyed slot map consumed by
// later executions; cancelled slots are kept as markers so they never serve
// stale lookups.
//
// Foreground fetches share the same singleflight group, so a request landing
// on a key with an in-flight prefetch joins that call instead of issuing a
// duplicate to the backend.
type PrefetchGroup struct {
	mu    sync.Mutex
	slots map[string]*slot

	sf     singleflight.Group
	eg     *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPrefetchGroup creates a scope bounded to maxConcurrency background
// fetches. The scope lives until Close; parent cancellation propagates.
func NewPrefetchGroup(parent context.Context, maxConcurrency int) *PrefetchGroup {
	ctx, cancel := context.WithCancel(parent)
	eg, ctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		eg.SetLimit(maxConcurrency)
	}
	return &PrefetchGroup{
		slots:  make(map[string]*slot),
		eg:     eg,
		ctx:    ctx,
		cancel: cancel,
	}
}

// PrefetchKey builds the admission key for one page fetch.
func PrefetchKey(sql string, tenantID int64, pageToken string, pageSize int, schemaSnapshotID string, seed int64, completenessHint string) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s\x1f%d\x1f%s\x1f%d\x1f%s\x1f%d\x1f%s",
		sql, tenantID, pageToken, pageSize, schemaSnapshotID, seed, completenessHint))
	return hex.EncodeToString(h[:])
}

// FetchFunc performs one page fetch against the backend.
type FetchFunc func(ctx context.Context) (*dal.ToolResponseEnvelope, error)

// Schedule admits one background fetch for key. Returns false with
// ALREADY_CACHED_OR_INFLIGHT semantics when the key is taken; the caller
// records the suppression reason. timeout bounds the fetch.
func (g *PrefetchGroup) Schedule(key string, timeout time.Duration, fetch FetchFunc) bool {
	g.mu.Lock()
	if existing, ok := g.slots[key]; ok && existing.state != slotCancelled && existing.state != slotFailed {
		g.mu.Unlock()
		return false
	}
	g.slots[key] = &slot{state: slotInflight}
	g.mu.Unlock()

	started := g.eg.TryGo(func() error {
		ctx := g.ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		env, err, _ := g.do(ctx, key, fetch)

		g.mu.Lock()
		defer g.mu.Unlock()
		switch {
		case g.ctx.Err() != nil || ctx.Err() != nil:
			// Dropped silently: the slot marker prevents the stale result
			// from poisoning later lookups.
			g.slots[key] = &slot{state: slotCancelled}
		case err != nil || env == nil:
			g.slots[key] = &slot{state: slotFailed}
			slog.Debug("Prefetch fetch failed", "error", err)
		default:
			g.slots[key] = &slot{state: slotReady, env: env}
		}
		return nil
	})
	if !started {
		// Concurrency limit reached: free the reservation.
		g.mu.Lock()
		delete(g.slots, key)
		g.mu.Unlock()
	}
	return started
}

// TakeReady consumes a completed prefetch for key. Misses on in-flight,
// failed, and cancelled slots; failed and cancelled markers are cleared so
// the key can be re-admitted.
func (g *PrefetchGroup) TakeReady(key string) (*dal.ToolResponseEnvelope, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.slots[key]
	if !ok {
		return nil, false
	}
	switch s.state {
	case slotReady:
		delete(g.slots, key)
		return s.env, true
	case slotFailed, slotCancelled:
		delete(g.slots, key)
	}
	return nil, false
}

// Fetch runs a foreground fetch through the shared singleflight group, so a
// concurrent prefetch of the same key produces exactly one backend call.
func (g *PrefetchGroup) Fetch(ctx context.Context, key string, fetch FetchFunc) (*dal.ToolResponseEnvelope, error) {
	env, err, _ := g.do(ctx, key, fetch)
	return env, err
}

func (g *PrefetchGroup) do(ctx context.Context, key string, fetch FetchFunc) (*dal.ToolResponseEnvelope, error, bool) {
	ch := g.sf.DoChan(key, func() (any, error) {
		return fetch(ctx)
	})
	select {
	case res := <-ch:
		env, _ := res.Val.(*dal.ToolResponseEnvelope)
		return env, res.Err, res.Shared
	case <-ctx.Done():
		return nil, ctx.Err(), false
	}
}

// Close cancels every in-flight prefetch and awaits them.
func (g *PrefetchGroup) Close() {
	g.cancel()
	_ = g.eg.Wait()
}
