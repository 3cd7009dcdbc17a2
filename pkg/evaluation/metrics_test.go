package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreExactMatch(t *testing.T) {
	m := Score(
		"select   id, name\nfrom USERS where active = true",
		"SELECT id, name FROM users WHERE active = TRUE",
	)

	assert.True(t, m.ExactMatch)
	assert.False(t, m.ParseFailed)
	assert.InDelta(t, 1.0, m.StructuralScore, 1e-9)
	assert.InDelta(t, 1.0, m.ValueScore, 1e-9)
	assert.InDelta(t, 1.0, m.CompositeScore, 1e-9)
	for name, score := range m.Subscores {
		assert.InDelta(t, 1.0, score, 1e-9, name)
	}
}

func TestScoreTableMismatch(t *testing.T) {
	m := Score("SELECT count(*) FROM orders", "SELECT count(*) FROM payments")

	assert.False(t, m.ExactMatch)
	assert.InDelta(t, 0.0, m.Subscores[SubTableOverlap], 1e-9)
	// Every other structural dimension agrees, so only the table weight is
	// lost.
	assert.InDelta(t, 0.65, m.StructuralScore, 1e-9)
	assert.InDelta(t, 1.0, m.ValueScore, 1e-9)
	assert.InDelta(t, 0.79, m.CompositeScore, 1e-9)
}

func TestScoreLimitMismatch(t *testing.T) {
	m := Score("SELECT id FROM users LIMIT 5", "SELECT id FROM users")

	assert.False(t, m.ExactMatch)
	assert.InDelta(t, 0.0, m.Subscores[SubLimitMatch], 1e-9)
	assert.InDelta(t, 0.90, m.StructuralScore, 1e-9)
	assert.InDelta(t, 0.0, m.ValueSubscores[SubLimitDistance], 1e-9)
	assert.InDelta(t, 0.80, m.ValueScore, 1e-9)
}

func TestScoreJoinSimilarity(t *testing.T) {
	m := Score(
		"SELECT * FROM a JOIN b ON a.id = b.a_id JOIN c ON b.id = c.b_id",
		"SELECT * FROM a JOIN b ON a.id = b.a_id",
	)

	require.False(t, m.ExactMatch)
	assert.InDelta(t, 0.5, m.Subscores[SubJoinSimilarity], 1e-9)
	assert.InDelta(t, 2.0/3.0, m.Subscores[SubTableOverlap], 1e-9)
	assert.InDelta(t, 0.8083333, m.StructuralScore, 1e-6)
}

func TestScoreValueProximity(t *testing.T) {
	m := Score(
		"SELECT * FROM orders WHERE total > 90",
		"SELECT * FROM orders WHERE total > 100",
	)

	assert.False(t, m.ExactMatch)
	assert.InDelta(t, 1.0, m.StructuralScore, 1e-9, "structure is identical")
	assert.InDelta(t, 0.9, m.ValueSubscores[SubNumericRangeProximity], 1e-9)
	assert.InDelta(t, 0.98, m.ValueScore, 1e-9)
	assert.InDelta(t, 0.992, m.CompositeScore, 1e-9)
}

func TestScoreInListOverlap(t *testing.T) {
	m := Score(
		"SELECT * FROM orders WHERE region IN ('us')",
		"SELECT * FROM orders WHERE region IN ('us', 'eu')",
	)

	assert.InDelta(t, 1.0, m.StructuralScore, 1e-9)
	assert.InDelta(t, 0.5, m.ValueSubscores[SubInOverlap], 1e-9)
	assert.InDelta(t, 0.9, m.ValueScore, 1e-9)
}

func TestScoreParseFailure(t *testing.T) {
	t.Run("identical unparseable text matches by folded compare", func(t *testing.T) {
		m := Score("TOTALLY NOT SQL", "totally   not sql")

		assert.True(t, m.ExactMatch)
		assert.True(t, m.ParseFailed)
		assert.InDelta(t, 1.0, m.StructuralScore, 1e-9)
		assert.InDelta(t, 1.0, m.CompositeScore, 1e-9)
		for name, score := range m.Subscores {
			assert.InDelta(t, 1.0, score, 1e-9, name)
		}
	})

	t.Run("unparseable prediction scores zero", func(t *testing.T) {
		m := Score("not sql at all", "SELECT id FROM users")

		assert.False(t, m.ExactMatch)
		assert.True(t, m.ParseFailed)
		assert.InDelta(t, 0.0, m.StructuralScore, 1e-9)
		assert.InDelta(t, 0.0, m.ValueScore, 1e-9)
		assert.InDelta(t, 0.0, m.CompositeScore, 1e-9)
		for name, score := range m.Subscores {
			assert.InDelta(t, 0.0, score, 1e-9, name)
		}
	})
}

func TestCountSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, countSimilarity(0, 0), 1e-9)
	assert.InDelta(t, 1.0, countSimilarity(3, 3), 1e-9)
	assert.InDelta(t, 0.5, countSimilarity(1, 2), 1e-9)
	assert.InDelta(t, 0.0, countSimilarity(0, 4), 1e-9)
}

func TestJaccard(t *testing.T) {
	assert.InDelta(t, 1.0, jaccard(nil, nil), 1e-9)
	assert.InDelta(t, 0.5, jaccard(
		map[string]struct{}{"a": {}},
		map[string]struct{}{"a": {}, "b": {}},
	), 1e-9)
	assert.InDelta(t, 0.0, jaccard(
		map[string]struct{}{"a": {}},
		map[string]struct{}{"b": {}},
	), 1e-9)
}

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, w := range v1Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 1.0, compositeV1Weight+compositeV2Weight, 1e-9)
}
