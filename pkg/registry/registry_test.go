package registry

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves canned candidates per status bucket, in the order given
// (the real store returns similarity-sorted results). MinScore is
// deliberately not applied, and a bucket may serve an entry whose status has
// since changed; the recommender re-checks validity either way.
type fakeStore struct {
	byStatus     map[Status][]Candidate
	interactions []Candidate
	bySignature  map[string]*Example
	queries      []SearchQuery
	searchErr    error
	getErr       error
}

func (s *fakeStore) SemanticSearch(_ context.Context, q SearchQuery) ([]Candidate, error) {
	s.queries = append(s.queries, q)
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	var out []Candidate
	if q.Role == RoleInteraction {
		out = append(out, s.interactions...)
	} else {
		for _, st := range q.Statuses {
			out = append(out, s.byStatus[st]...)
		}
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *fakeStore) GetBySignature(_ context.Context, _ int64, sig string) (*Example, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.bySignature[sig], nil
}

func example(sig, question, sql string, status Status) Example {
	return Example{
		SignatureKey: sig,
		Question:     question,
		SQL:          sql,
		Status:       status,
		Roles:        []Role{RoleExample},
		UpdatedAt:    time.Now(),
	}
}

func plainOptions() Options {
	opts := DefaultOptions()
	opts.DiversityEnabled = false
	opts.MinSimilarity = 0
	return opts
}

func TestRecommendPins(t *testing.T) {
	store := &fakeStore{
		bySignature: map[string]*Example{
			"sig-revenue": ref(example("sig-revenue", "monthly revenue", "SELECT 1", StatusVerified)),
			"sig-dead":    ref(example("sig-dead", "old", "SELECT 2", StatusTombstoned)),
			"sig-orders":  ref(example("sig-orders", "order count", "SELECT 3", StatusVerified)),
		},
	}

	opts := plainOptions()
	opts.Pins = []PinRule{
		{Match: MatchContains, Pattern: "revenue", Priority: 2, Signatures: []string{"sig-revenue", "sig-dead", "sig-missing"}},
		{Match: MatchExact, Pattern: "show revenue by month", Priority: 1, Signatures: []string{"sig-orders"}},
	}
	r := New(store, opts)

	res, err := r.Recommend(context.Background(), Query{Question: "Show Revenue By Month", Limit: 5})
	require.NoError(t, err)

	// The exact rule has the lower priority value so its example leads; the
	// tombstoned and unresolvable signatures are skipped.
	require.Len(t, res.Examples, 2)
	assert.Equal(t, "order count", res.Examples[0].Question)
	assert.Equal(t, SourcePinned, res.Examples[0].Source)
	assert.Equal(t, 1.0, res.Examples[0].Score)
	assert.Equal(t, "monthly revenue", res.Examples[1].Question)

	assert.Equal(t, []string{"show revenue by month", "revenue"}, res.Explanation.PinsMatched)
}

func TestRecommendStatusRanking(t *testing.T) {
	store := &fakeStore{byStatus: map[Status][]Candidate{
		StatusSeeded: {
			{Example: example("s1", "seeded best", "SELECT 1", StatusSeeded), Score: 0.95},
			{Example: example("s2", "seeded next", "SELECT 2", StatusSeeded), Score: 0.90},
		},
		StatusVerified: {
			{Example: example("v1", "verified best", "SELECT 3", StatusVerified), Score: 0.80},
			{Example: example("v2", "verified next", "SELECT 4", StatusVerified), Score: 0.70},
		},
	}}
	r := New(store, plainOptions())

	res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 4})
	require.NoError(t, err)

	require.Len(t, res.Examples, 4)
	assert.Equal(t, "verified best", res.Examples[0].Question)
	assert.Equal(t, "verified next", res.Examples[1].Question)
	assert.Equal(t, "seeded best", res.Examples[2].Question)
	assert.Equal(t, "seeded next", res.Examples[3].Question)

	assert.Equal(t, 2, res.Explanation.Candidates[SourceVerified])
	assert.Equal(t, 2, res.Explanation.Candidates[SourceSeeded])
}

func TestRecommendValidityFilters(t *testing.T) {
	old := example("o1", "old", "SELECT 1", StatusVerified)
	old.UpdatedAt = time.Now().AddDate(0, 0, -90)

	store := &fakeStore{byStatus: map[Status][]Candidate{
		StatusVerified: {
			// Tombstoned after the index was built.
			{Example: example("t1", "gone", "SELECT 1", StatusTombstoned), Score: 0.9},
			{Example: example("i1", "", "SELECT 1", StatusVerified), Score: 0.9},
			{Example: old, Score: 0.9},
			{Example: example("u1", "drops things", "DROP TABLE users", StatusVerified), Score: 0.9},
			{Example: example("b1", "blocked", "SELECT * FROM internal_audit", StatusVerified), Score: 0.9},
			{Example: example("l1", "long", "SELECT '"+strings.Repeat("x", 9000)+"'", StatusVerified), Score: 0.9},
			{Example: example("w1", "below floor", "SELECT 1", StatusVerified), Score: 0.2},
			{Example: example("g1", "kept", "SELECT count(*) FROM orders", StatusVerified), Score: 0.9},
		},
	}}

	opts := plainOptions()
	opts.MinSimilarity = 0.5
	opts.StaleMaxAgeDays = 30
	opts.Blocklist = []*regexp.Regexp{regexp.MustCompile(`internal_audit`)}
	r := New(store, opts)

	res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 10})
	require.NoError(t, err)

	require.Len(t, res.Examples, 1)
	assert.Equal(t, "kept", res.Examples[0].Question)

	assert.Equal(t, 1, res.Explanation.Filtered[FilterTombstoned])
	assert.Equal(t, 1, res.Explanation.Filtered[FilterIncomplete])
	assert.Equal(t, 1, res.Explanation.Filtered[FilterStale])
	assert.Equal(t, 1, res.Explanation.Filtered[FilterBelowThreshold])
	assert.Equal(t, 3, res.Explanation.Filtered[FilterSafety], "sanitizer, blocklist, and length each drop one")
}

func TestRecommendFingerprintDedupe(t *testing.T) {
	store := &fakeStore{
		byStatus: map[Status][]Candidate{
			StatusVerified: {
				{Example: example("dup", "shared", "SELECT 1", StatusVerified), Score: 0.9},
				{Example: example("pinned-sig", "also pinned", "SELECT 2", StatusVerified), Score: 0.7},
			},
			StatusSeeded: {
				{Example: example("dup", "shared", "SELECT 1", StatusSeeded), Score: 0.8},
				{Example: example("other", "other", "SELECT 3", StatusSeeded), Score: 0.6},
			},
		},
		bySignature: map[string]*Example{
			"pinned-sig": ref(example("pinned-sig", "also pinned", "SELECT 2", StatusVerified)),
		},
	}

	opts := plainOptions()
	opts.Pins = []PinRule{{Match: MatchContains, Pattern: "q", Signatures: []string{"pinned-sig"}}}
	r := New(store, opts)

	res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 10})
	require.NoError(t, err)

	require.Len(t, res.Examples, 3)
	sigs := make(map[string]int)
	for _, ex := range res.Examples {
		sigs[ex.CanonicalGroupID]++
	}
	assert.Equal(t, 1, sigs["dup"], "fingerprint uniqueness is absolute")
	assert.Equal(t, 1, sigs["pinned-sig"], "a pinned signature is not re-selected from candidates")
	assert.Equal(t, 2, res.Explanation.DuplicatesDropped)
}

func TestRecommendDiversity(t *testing.T) {
	t.Run("verified floor is filled first", func(t *testing.T) {
		store := &fakeStore{byStatus: map[Status][]Candidate{
			StatusSeeded: {
				{Example: example("s1", "seeded high", "SELECT 1", StatusSeeded), Score: 0.95},
				{Example: example("s2", "seeded mid", "SELECT 2", StatusSeeded), Score: 0.90},
			},
			StatusVerified: {
				{Example: example("v1", "verified low", "SELECT 3", StatusVerified), Score: 0.40},
			},
		}}

		opts := plainOptions()
		opts.DiversityEnabled = true
		opts.DiversityMinVerified = 1
		opts.DiversityMaxPerSource = 2
		// Rank seeded above verified so the floor, not the ordering, is what
		// pulls the verified example in.
		opts.StatusPriority = map[Status]int{StatusSeeded: 2, StatusVerified: 1}
		r := New(store, opts)

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 2})
		require.NoError(t, err)

		require.Len(t, res.Examples, 2)
		assert.Equal(t, "verified low", res.Examples[0].Question)
		assert.Equal(t, "seeded high", res.Examples[1].Question)
		assert.True(t, res.Explanation.DiversityApplied)
	})

	t.Run("per-source cap", func(t *testing.T) {
		store := &fakeStore{byStatus: map[Status][]Candidate{
			StatusSeeded: {
				{Example: example("s1", "one", "SELECT 1", StatusSeeded), Score: 0.9},
				{Example: example("s2", "two", "SELECT 2", StatusSeeded), Score: 0.8},
				{Example: example("s3", "three", "SELECT 3", StatusSeeded), Score: 0.7},
			},
		}}

		opts := plainOptions()
		opts.DiversityEnabled = true
		opts.DiversityMinVerified = 0
		opts.DiversityMaxPerSource = 2
		r := New(store, opts)

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 3})
		require.NoError(t, err)

		require.Len(t, res.Examples, 2, "the third seeded example exceeds the source cap")
		assert.Positive(t, res.Explanation.DiversitySkipped)
	})

	t.Run("one example per canonical group", func(t *testing.T) {
		a := example("a", "first of group", "SELECT 1", StatusVerified)
		a.CanonicalGroupID = "group-1"
		b := example("b", "second of group", "SELECT 2", StatusVerified)
		b.CanonicalGroupID = "group-1"
		c := example("c", "other group", "SELECT 3", StatusVerified)

		store := &fakeStore{byStatus: map[Status][]Candidate{
			StatusVerified: {
				{Example: a, Score: 0.9},
				{Example: b, Score: 0.8},
				{Example: c, Score: 0.7},
			},
		}}

		opts := plainOptions()
		opts.DiversityEnabled = true
		opts.DiversityMinVerified = 0
		opts.DiversityMaxPerSource = 5
		r := New(store, opts)

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 3})
		require.NoError(t, err)

		require.Len(t, res.Examples, 2)
		assert.Equal(t, "first of group", res.Examples[0].Question)
		assert.Equal(t, "other group", res.Examples[1].Question)
		assert.Equal(t, 1, res.Explanation.DiversitySkipped)
	})
}

func TestRecommendFallback(t *testing.T) {
	t.Run("interaction history fills remaining capacity", func(t *testing.T) {
		past := example("i1", "past question", "SELECT 2", StatusSeeded)
		past.Roles = []Role{RoleInteraction}
		weak := example("i2", "weak match", "SELECT 3", StatusSeeded)
		weak.Roles = []Role{RoleInteraction}

		store := &fakeStore{
			byStatus: map[Status][]Candidate{
				StatusVerified: {
					{Example: example("v1", "only verified", "SELECT 1", StatusVerified), Score: 0.9},
				},
			},
			interactions: []Candidate{
				{Example: past, Score: 0.75},
				{Example: weak, Score: 0.40},
			},
		}

		r := New(store, plainOptions())

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 3, EnableFallback: true})
		require.NoError(t, err)

		require.Len(t, res.Examples, 2)
		assert.Equal(t, SourceInteraction, res.Examples[1].Source)
		assert.Equal(t, "past question", res.Examples[1].Question)
		assert.True(t, res.Explanation.FallbackUsed)
		assert.Equal(t, 1, res.Explanation.FallbackAdded)
		assert.Equal(t, 1, res.Explanation.Filtered[FilterBelowThreshold], "weak interaction match stays out")
	})

	t.Run("disabled fallback never searches interactions", func(t *testing.T) {
		store := &fakeStore{}
		r := New(store, plainOptions())

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 3})
		require.NoError(t, err)
		assert.Empty(t, res.Examples)

		for _, q := range store.queries {
			assert.NotEqual(t, RoleInteraction, q.Role)
		}
		assert.False(t, res.Explanation.FallbackUsed)
	})

	t.Run("satisfied selection skips fallback", func(t *testing.T) {
		store := &fakeStore{
			byStatus: map[Status][]Candidate{
				StatusVerified: {
					{Example: example("v1", "a", "SELECT 1", StatusVerified), Score: 0.9},
					{Example: example("v2", "b", "SELECT 2", StatusVerified), Score: 0.8},
				},
			},
			interactions: []Candidate{
				{Example: example("i1", "c", "SELECT 3", StatusSeeded), Score: 0.9},
			},
		}
		r := New(store, plainOptions())

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 2, EnableFallback: true})
		require.NoError(t, err)

		require.Len(t, res.Examples, 2)
		assert.False(t, res.Explanation.FallbackUsed)
	})
}

func TestRecommendStoreFailure(t *testing.T) {
	t.Run("semantic search failure is fatal", func(t *testing.T) {
		store := &fakeStore{searchErr: errors.New("embedding service down")}
		r := New(store, plainOptions())

		_, err := r.Recommend(context.Background(), Query{Question: "q"})
		require.Error(t, err)
	})

	t.Run("pin lookup failure degrades to candidates", func(t *testing.T) {
		store := &fakeStore{
			getErr: errors.New("connection reset"),
			byStatus: map[Status][]Candidate{
				StatusVerified: {
					{Example: example("v1", "still served", "SELECT 1", StatusVerified), Score: 0.9},
				},
			},
		}

		opts := plainOptions()
		opts.Pins = []PinRule{{Match: MatchContains, Pattern: "q", Signatures: []string{"sig-x"}}}
		r := New(store, opts)

		res, err := r.Recommend(context.Background(), Query{Question: "q", Limit: 3})
		require.NoError(t, err)

		require.Len(t, res.Examples, 1)
		assert.Equal(t, "still served", res.Examples[0].Question)
		assert.Equal(t, []string{"q"}, res.Explanation.PinsMatched)
	})
}

func TestRecommendDefaultLimit(t *testing.T) {
	var candidates []Candidate
	for _, sig := range []string{"a", "b", "c", "d", "e"} {
		candidates = append(candidates, Candidate{
			Example: example(sig, "question "+sig, "SELECT 1", StatusVerified),
			Score:   0.9,
		})
	}
	store := &fakeStore{byStatus: map[Status][]Candidate{StatusVerified: candidates}}
	r := New(store, plainOptions())

	res, err := r.Recommend(context.Background(), Query{Question: "q"})
	require.NoError(t, err)
	assert.Len(t, res.Examples, DefaultLimit)
}

func ref[T any](v T) *T { return &v }
