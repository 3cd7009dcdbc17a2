package evaluation

import (
	"math"
	"slices"
	"time"
)

// MetricSuiteV1 subscore names
const (
	SubTableOverlap        = "table_overlap"
	SubJoinSimilarity      = "join_similarity"
	SubAggregationMatch    = "aggregation_match"
	SubGroupByMatch        = "groupby_match"
	SubPredicateSimilarity = "predicate_similarity"
	SubLimitMatch          = "limit_match"
)

// MetricSuiteV2 subscore names
const (
	SubNumericRangeProximity = "numeric_range_proximity"
	SubDateRangeProximity    = "date_range_proximity"
	SubInOverlap             = "in_overlap"
	SubEqualityValueMatch    = "equality_value_match"
	SubLimitDistance         = "limit_distance"
)

var v1Weights = map[string]float64{
	SubTableOverlap:        0.35,
	SubJoinSimilarity:      0.15,
	SubAggregationMatch:    0.15,
	SubGroupByMatch:        0.10,
	SubPredicateSimilarity: 0.15,
	SubLimitMatch:          0.10,
}

var v2Names = []string{
	SubNumericRangeProximity,
	SubDateRangeProximity,
	SubInOverlap,
	SubEqualityValueMatch,
	SubLimitDistance,
}

// Composite weighting between the structural and value suites.
const (
	compositeV1Weight = 0.6
	compositeV2Weight = 0.4
)

// CaseMetrics is the full scoring of one (predicted, expected) pair.
type CaseMetrics struct {
	ExactMatch      bool               `json:"exact_match"`
	StructuralScore float64            `json:"structural_score"`
	ValueScore      float64            `json:"value_score"`
	CompositeScore  float64            `json:"composite_score"`
	Subscores       map[string]float64 `json:"subscores"`
	ValueSubscores  map[string]float64 `json:"value_subscores"`
	ParseFailed     bool               `json:"parse_failed,omitempty"`
}

// Score computes exact match, the structural suite, the value-aware suite
// and their composite for one pair. Exact match compares canonicalized
// parse trees; when either side fails to parse it falls back to a
// whitespace-folded string compare, and every subscore collapses to the
// exact-match outcome.
func Score(predicted, expected string) CaseMetrics {
	var exact bool
	predCanon, predOK := canonicalize(predicted)
	expCanon, expOK := canonicalize(expected)
	if predOK && expOK {
		exact = predCanon == expCanon
	} else {
		exact = foldWhitespace(predicted) == foldWhitespace(expected)
	}

	m := CaseMetrics{ExactMatch: exact}

	pf := extract(predicted)
	ef := extract(expected)
	if pf == nil || ef == nil {
		m.ParseFailed = true
		v := 0.0
		if exact {
			v = 1.0
		}
		m.Subscores = make(map[string]float64, len(v1Weights))
		for name := range v1Weights {
			m.Subscores[name] = v
		}
		m.ValueSubscores = make(map[string]float64, len(v2Names))
		for _, name := range v2Names {
			m.ValueSubscores[name] = v
		}
		m.StructuralScore = v
		m.ValueScore = v
		m.CompositeScore = v
		return m
	}

	m.Subscores = suiteV1(pf, ef)
	for name, w := range v1Weights {
		m.StructuralScore += w * m.Subscores[name]
	}

	m.ValueSubscores = suiteV2(pf, ef)
	for _, name := range v2Names {
		m.ValueScore += m.ValueSubscores[name]
	}
	m.ValueScore /= float64(len(v2Names))

	m.CompositeScore = compositeV1Weight*m.StructuralScore + compositeV2Weight*m.ValueScore
	return m
}

func suiteV1(p, e *queryFeatures) map[string]float64 {
	return map[string]float64{
		SubTableOverlap:        jaccard(p.tables, e.tables),
		SubJoinSimilarity:      countSimilarity(p.joins, e.joins),
		SubAggregationMatch:    boolMatch(p.aggregated, e.aggregated),
		SubGroupByMatch:        boolMatch(p.grouped, e.grouped),
		SubPredicateSimilarity: jaccard(p.predicates, e.predicates),
		SubLimitMatch:          limitSimilarity(p, e),
	}
}

func suiteV2(p, e *queryFeatures) map[string]float64 {
	return map[string]float64{
		SubNumericRangeProximity: numericProximity(p.rangeNums, e.rangeNums),
		SubDateRangeProximity:    dateProximity(p.rangeDates, e.rangeDates),
		SubInOverlap:             setOverlap(p.inValues, e.inValues),
		SubEqualityValueMatch:    setOverlap(p.eqValues, e.eqValues),
		SubLimitDistance:         limitSimilarity(p, e),
	}
}

// jaccard over two sets; two empty sets agree vacuously.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func boolMatch(a, b bool) float64 {
	if a == b {
		return 1
	}
	return 0
}

// countSimilarity is 1 for equal counts, otherwise 1 - |delta|/max floored
// at zero.
func countSimilarity(a, b int) float64 {
	if a == b {
		return 1
	}
	maxv := a
	if b > maxv {
		maxv = b
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return math.Max(0, 1-float64(d)/float64(maxv))
}

// limitSimilarity treats a missing limit as zero, so absent-vs-absent is a
// match and absent-vs-present scores zero.
func limitSimilarity(p, e *queryFeatures) float64 {
	pl, el := 0, 0
	if p.hasLimit {
		pl = p.limit
	}
	if e.hasLimit {
		el = e.limit
	}
	return countSimilarity(pl, el)
}

// numericProximity compares range comparison values per shared column. A
// column referenced on only one side contributes zero; no numeric ranges on
// either side agree vacuously.
func numericProximity(a, b map[string][]float64) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	cols := unionKeys(a, b)
	total := 0.0
	for col := range cols {
		av, bv := a[col], b[col]
		if len(av) == 0 || len(bv) == 0 {
			continue
		}
		total += pairedProximity(av, bv, valueProximity)
	}
	return total / float64(len(cols))
}

func dateProximity(a, b map[string][]time.Time) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	cols := unionKeys(a, b)
	total := 0.0
	for col := range cols {
		av, bv := asDays(a[col]), asDays(b[col])
		if len(av) == 0 || len(bv) == 0 {
			continue
		}
		total += pairedProximity(av, bv, dayProximity)
	}
	return total / float64(len(cols))
}

// setOverlap averages per-column jaccard over the union of columns; a
// column present on only one side contributes zero.
func setOverlap(a, b map[string]map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	cols := unionKeys(a, b)
	total := 0.0
	for col := range cols {
		av, bv := a[col], b[col]
		if len(av) == 0 || len(bv) == 0 {
			continue
		}
		total += jaccard(av, bv)
	}
	return total / float64(len(cols))
}

// pairedProximity sorts both value lists and scores positionally matched
// pairs; a length mismatch dilutes the score.
func pairedProximity(a, b []float64, prox func(x, y float64) float64) float64 {
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)

	n := len(sa)
	if len(sb) < n {
		n = len(sb)
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += prox(sa[i], sb[i])
	}
	maxLen := len(sa)
	if len(sb) > maxLen {
		maxLen = len(sb)
	}
	return total / float64(maxLen)
}

// valueProximity is 1 - |x-y| / max(|x|,|y|) floored at zero.
func valueProximity(x, y float64) float64 {
	if x == y {
		return 1
	}
	den := math.Max(math.Abs(x), math.Abs(y))
	if den == 0 {
		return 1
	}
	return math.Max(0, 1-math.Abs(x-y)/den)
}

// dayProximity scales a day difference against a one-year horizon.
func dayProximity(x, y float64) float64 {
	return math.Max(0, 1-math.Abs(x-y)/365)
}

func asDays(ts []time.Time) []float64 {
	if len(ts) == 0 {
		return nil
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = float64(t.Unix()) / (24 * 60 * 60)
	}
	return out
}

func unionKeys[V any](a, b map[string]V) map[string]struct{} {
	set := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		set[k] = struct{}{}
	}
	for k := range b {
		set[k] = struct{}{}
	}
	return set
}
