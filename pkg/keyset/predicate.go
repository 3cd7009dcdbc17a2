package keyset

import (
	"fmt"
	"strings"
)

// BuildAfterPredicate builds the row-value comparison selecting rows strictly
// after the cursor position under the extracted ordering. Placeholders are
// numbered from paramBase+1 and the returned params line up with them.
//
// Null cursor values follow the key's null ordering: under NULLS FIRST the
// page advances into the non-null region with IS NOT NULL, under NULLS LAST
// there is nothing after a null at that position and the disjunct drops out.
func BuildAfterPredicate(keys []OrderKey, values []any, paramBase int) (string, []any, error) {
	if len(keys) == 0 {
		return "", nil, newError(CodeRequiresStableTieBreaker, "keyset pagination requires an explicit ORDER BY")
	}
	if len(values) != len(keys) {
		return "", nil, newError(CodeOrderMismatch, "cursor value count does not match the ordering")
	}

	var disjuncts []string
	var params []any
	next := paramBase

	for i, key := range keys {
		var terms []string
		var termParams []any
		usable := true

		for j := 0; j < i; j++ {
			if values[j] == nil {
				terms = append(terms, fmt.Sprintf("%s IS NULL", keys[j].Expression))
				continue
			}
			terms = append(terms, fmt.Sprintf("%s = $%d", keys[j].Expression, next+len(termParams)+1))
			termParams = append(termParams, values[j])
		}

		if values[i] == nil {
			if key.NullsFirst {
				terms = append(terms, fmt.Sprintf("%s IS NOT NULL", key.Expression))
			} else {
				usable = false
			}
		} else {
			cmp := ">"
			if key.Descending {
				cmp = "<"
			}
			placeholder := fmt.Sprintf("%s %s $%d", key.Expression, cmp, next+len(termParams)+1)
			if key.NullsFirst {
				terms = append(terms, placeholder)
			} else {
				terms = append(terms, fmt.Sprintf("(%s OR %s IS NULL)", placeholder, key.Expression))
			}
			termParams = append(termParams, values[i])
		}

		if !usable {
			continue
		}
		params = append(params, termParams...)
		next += len(termParams)
		disjuncts = append(disjuncts, "("+strings.Join(terms, " AND ")+")")
	}

	if len(disjuncts) == 0 {
		// Every continuation is impossible; the caller gets an always-false
		// predicate and an empty final page.
		return "FALSE", nil, nil
	}
	return "(" + strings.Join(disjuncts, " OR ") + ")", params, nil
}
