package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/querra-ai/querra/pkg/sqlguard"
)

// Recommender assembles few-shot example selections from the store.
type Recommender struct {
	store ExampleStore
	opts  Options
}

// New builds a recommender over the store.
func New(store ExampleStore, opts Options) *Recommender {
	if opts.StatusPriority == nil {
		opts.StatusPriority = map[Status]int{StatusVerified: 2, StatusSeeded: 1}
	}
	return &Recommender{store: store, opts: opts}
}

type pick struct {
	example Example
	score   float64
	source  string
}

// Recommend runs the selection pipeline: pins, retrieval, validity filters,
// status ranking, fingerprint dedupe, diversity, then interaction fallback.
func (r *Recommender) Recommend(ctx context.Context, q Query) (*Result, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	expl := Explanation{
		Candidates: map[string]int{},
		Filtered:   map[string]int{},
	}

	picks := r.resolvePins(ctx, q, limit, &expl)

	candidates, err := r.retrieve(ctx, q, limit, &expl)
	if err != nil {
		return nil, err
	}
	candidates = r.filterValid(candidates, time.Now(), &expl)
	rankByStatus(candidates, r.opts)

	seenSignatures := make(map[string]struct{}, len(picks))
	seenGroups := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		seenSignatures[p.example.SignatureKey] = struct{}{}
		seenGroups[p.example.GroupID()] = struct{}{}
	}
	candidates = dedupe(candidates, seenSignatures, &expl)

	if r.opts.DiversityEnabled {
		expl.DiversityApplied = true
		picks = r.diversify(picks, candidates, limit, seenGroups, &expl)
	} else {
		for _, c := range candidates {
			if len(picks) >= limit {
				break
			}
			seenGroups[c.Example.GroupID()] = struct{}{}
			picks = append(picks, pick{example: c.Example, score: c.Score, source: sourceForStatus(c.Example.Status)})
		}
	}

	if len(picks) < limit && q.EnableFallback {
		picks = r.fallback(ctx, q, limit, picks, seenSignatures, seenGroups, &expl)
	}

	out := make([]RecommendedExample, 0, len(picks))
	for _, p := range picks {
		out = append(out, RecommendedExample{
			Question:         p.example.Question,
			SQL:              p.example.SQL,
			Score:            p.score,
			Source:           p.source,
			CanonicalGroupID: p.example.GroupID(),
			Metadata:         p.example.Metadata,
		})
	}
	return &Result{Examples: out, Explanation: expl}, nil
}

// resolvePins returns examples forced in by matching pin rules, highest
// priority first. A signature that cannot be resolved degrades with a
// warning; pins are an override, not a dependency.
func (r *Recommender) resolvePins(ctx context.Context, q Query, limit int, expl *Explanation) []pick {
	if len(r.opts.Pins) == 0 {
		return nil
	}

	rules := make([]PinRule, len(r.opts.Pins))
	copy(rules, r.opts.Pins)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })

	var picks []pick
	seen := make(map[string]struct{})
	question := strings.TrimSpace(q.Question)

	for _, rule := range rules {
		if !rule.matches(question) {
			continue
		}
		expl.PinsMatched = append(expl.PinsMatched, rule.Pattern)

		for _, sig := range rule.Signatures {
			if len(picks) >= limit {
				return picks
			}
			if _, ok := seen[sig]; ok {
				continue
			}
			seen[sig] = struct{}{}

			ex, err := r.store.GetBySignature(ctx, q.TenantID, sig)
			if err != nil {
				slog.Warn("Pinned example lookup failed", "signature", sig, "error", err)
				continue
			}
			if ex == nil || ex.Status == StatusTombstoned {
				continue
			}
			picks = append(picks, pick{example: *ex, score: 1.0, source: SourcePinned})
		}
	}
	return picks
}

func (p PinRule) matches(question string) bool {
	switch p.Match {
	case MatchExact:
		return strings.EqualFold(question, strings.TrimSpace(p.Pattern))
	case MatchContains:
		return strings.Contains(strings.ToLower(question), strings.ToLower(p.Pattern))
	}
	return false
}

// retrieve runs the per-status semantic lookups.
func (r *Recommender) retrieve(ctx context.Context, q Query, limit int, expl *Explanation) ([]Candidate, error) {
	perSource := limit * r.opts.candidateMultiplier()
	var all []Candidate

	for _, status := range []Status{StatusVerified, StatusSeeded} {
		found, err := r.store.SemanticSearch(ctx, SearchQuery{
			TenantID: q.TenantID,
			Question: q.Question,
			Role:     RoleExample,
			Statuses: []Status{status},
			Limit:    perSource,
			MinScore: r.opts.MinSimilarity,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search %s examples: %w", status, err)
		}
		expl.Candidates[sourceForStatus(status)] += len(found)
		all = append(all, found...)
	}
	return all, nil
}

// filterValid applies the validity and safety filters, counting drops per
// reason.
func (r *Recommender) filterValid(candidates []Candidate, now time.Time, expl *Explanation) []Candidate {
	var staleCutoff time.Time
	if r.opts.StaleMaxAgeDays > 0 {
		staleCutoff = now.AddDate(0, 0, -r.opts.StaleMaxAgeDays)
	}

	kept := candidates[:0]
	for _, c := range candidates {
		switch {
		case c.Example.Status == StatusTombstoned:
			expl.Filtered[FilterTombstoned]++
		case c.Example.Question == "" || c.Example.SQL == "" || c.Example.SignatureKey == "":
			expl.Filtered[FilterIncomplete]++
		case !staleCutoff.IsZero() && c.Example.UpdatedAt.Before(staleCutoff):
			expl.Filtered[FilterStale]++
		case r.opts.MinSimilarity > 0 && c.Score < r.opts.MinSimilarity:
			expl.Filtered[FilterBelowThreshold]++
		case !r.safe(c.Example):
			expl.Filtered[FilterSafety]++
		default:
			kept = append(kept, c)
		}
	}
	return kept
}

func (r *Recommender) safe(e Example) bool {
	if r.opts.MaxQuestionLength > 0 && len(e.Question) > r.opts.MaxQuestionLength {
		return false
	}
	if r.opts.MaxSQLLength > 0 && len(e.SQL) > r.opts.MaxSQLLength {
		return false
	}
	for _, re := range r.opts.Blocklist {
		if re.MatchString(e.SQL) {
			return false
		}
	}
	if r.opts.Sanitize {
		if res := sqlguard.Validate(e.SQL, sqlguard.Options{}); !res.IsValid {
			return false
		}
	}
	return true
}

// rankByStatus orders candidates by status priority; the stable sort keeps
// similarity order within one status.
func rankByStatus(candidates []Candidate, opts Options) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return opts.statusPriority(candidates[i].Example.Status) > opts.statusPriority(candidates[j].Example.Status)
	})
}

// dedupe enforces absolute fingerprint uniqueness against everything already
// selected.
func dedupe(candidates []Candidate, seen map[string]struct{}, expl *Explanation) []Candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if _, ok := seen[c.Example.SignatureKey]; ok {
			expl.DuplicatesDropped++
			continue
		}
		seen[c.Example.SignatureKey] = struct{}{}
		kept = append(kept, c)
	}
	return kept
}

// diversify runs the two-pass selection: a verified floor first, then the
// remaining capacity under a per-source cap. One example per canonical group.
func (r *Recommender) diversify(picks []pick, candidates []Candidate, limit int, seenGroups map[string]struct{}, expl *Explanation) []pick {
	taken := make(map[string]bool, len(candidates))
	perSource := make(map[string]int)

	admit := func(c Candidate, source string) bool {
		group := c.Example.GroupID()
		if _, dup := seenGroups[group]; dup {
			// An occupied group can never admit this candidate; retire it so
			// the second pass does not count the skip again.
			taken[c.Example.SignatureKey] = true
			expl.DiversitySkipped++
			return false
		}
		seenGroups[group] = struct{}{}
		taken[c.Example.SignatureKey] = true
		perSource[source]++
		return true
	}

	// Pass A: the verified floor.
	for _, c := range candidates {
		if len(picks) >= limit || perSource[SourceVerified] >= r.opts.DiversityMinVerified {
			break
		}
		if c.Example.Status != StatusVerified {
			continue
		}
		if admit(c, SourceVerified) {
			picks = append(picks, pick{example: c.Example, score: c.Score, source: SourceVerified})
		}
	}

	// Pass B: remaining capacity, capped per source.
	for _, c := range candidates {
		if len(picks) >= limit {
			break
		}
		if taken[c.Example.SignatureKey] {
			continue
		}
		source := sourceForStatus(c.Example.Status)
		if r.opts.DiversityMaxPerSource > 0 && perSource[source] >= r.opts.DiversityMaxPerSource {
			expl.DiversitySkipped++
			continue
		}
		if admit(c, source) {
			picks = append(picks, pick{example: c.Example, score: c.Score, source: source})
		}
	}
	return picks
}

// fallback draws from interaction history at the raised similarity floor.
func (r *Recommender) fallback(ctx context.Context, q Query, limit int, picks []pick, seenSignatures, seenGroups map[string]struct{}, expl *Explanation) []pick {
	found, err := r.store.SemanticSearch(ctx, SearchQuery{
		TenantID: q.TenantID,
		Question: q.Question,
		Role:     RoleInteraction,
		Limit:    limit * r.opts.candidateMultiplier(),
		MinScore: r.opts.FallbackMinSimilarity,
	})
	if err != nil {
		slog.Warn("Interaction fallback search failed", "error", err)
		return picks
	}
	expl.Candidates[SourceInteraction] += len(found)
	expl.FallbackUsed = true

	cutoff := r.opts.FallbackMinSimilarity
	for _, c := range found {
		if len(picks) >= limit {
			break
		}
		if c.Example.Status == StatusTombstoned {
			expl.Filtered[FilterTombstoned]++
			continue
		}
		if cutoff > 0 && c.Score < cutoff {
			expl.Filtered[FilterBelowThreshold]++
			continue
		}
		if c.Example.Question == "" || c.Example.SQL == "" || c.Example.SignatureKey == "" {
			expl.Filtered[FilterIncomplete]++
			continue
		}
		if !r.safe(c.Example) {
			expl.Filtered[FilterSafety]++
			continue
		}
		if _, dup := seenSignatures[c.Example.SignatureKey]; dup {
			expl.DuplicatesDropped++
			continue
		}
		if _, dup := seenGroups[c.Example.GroupID()]; dup {
			expl.DiversitySkipped++
			continue
		}
		seenSignatures[c.Example.SignatureKey] = struct{}{}
		seenGroups[c.Example.GroupID()] = struct{}{}
		picks = append(picks, pick{example: c.Example, score: c.Score, source: SourceInteraction})
		expl.FallbackAdded++
	}
	return picks
}

func sourceForStatus(s Status) string {
	switch s {
	case StatusVerified:
		return SourceVerified
	case StatusSeeded:
		return SourceSeeded
	default:
		return string(s)
	}
}
