package keyset

import "strings"

// ValidateTieBreaker checks that the final ORDER BY key pins row identity so
// that consecutive pages never skip or repeat rows. meta may be nil when no
// schema metadata is available, in which case only the legacy allowlist
// applies. extraLegacy adds configured column names to that allowlist.
func ValidateTieBreaker(ext *Extraction, meta *TableMeta, extraLegacy []string) error {
	if len(ext.Keys) == 0 {
		return newError(CodeRequiresStableTieBreaker, "keyset pagination requires an explicit ORDER BY")
	}
	last := ext.Keys[len(ext.Keys)-1]
	if last.Column == "" {
		return newError(CodeRequiresStableTieBreaker, "the final ORDER BY key must be a plain column")
	}

	if meta != nil {
		if col, known := meta.Columns[last.Column]; known {
			if !col.NotNull && !last.ExplicitNulls {
				return newError(CodeTieBreakerNullable, "the tie-breaker column is nullable and has no explicit NULLS ordering")
			}
			if hasUniqueSuffix(ext.Keys, meta.UniqueKeys) {
				return nil
			}
			if isLegacyTieBreaker(last.Column, ext.Table, extraLegacy) {
				return nil
			}
			return newError(CodeTieBreakerNotUnique, "no ORDER BY suffix forms a unique key")
		}
	}

	if isLegacyTieBreaker(last.Column, ext.Table, extraLegacy) {
		return nil
	}
	return newError(CodeRequiresStableTieBreaker, "the final ORDER BY key carries no uniqueness guarantee")
}

// hasUniqueSuffix reports whether some suffix of the key list covers a known
// unique key. A suffix is usable only when every key in it is a plain column.
func hasUniqueSuffix(keys []OrderKey, uniqueKeys [][]string) bool {
	for start := len(keys) - 1; start >= 0; start-- {
		cols := make(map[string]struct{}, len(keys)-start)
		usable := true
		for _, k := range keys[start:] {
			if k.Column == "" {
				usable = false
				break
			}
			cols[k.Column] = struct{}{}
		}
		if !usable {
			continue
		}
		for _, uk := range uniqueKeys {
			if len(uk) == 0 {
				continue
			}
			covered := true
			for _, c := range uk {
				if _, ok := cols[strings.ToLower(c)]; !ok {
					covered = false
					break
				}
			}
			if covered {
				return true
			}
		}
	}
	return false
}

func isLegacyTieBreaker(column, table string, extra []string) bool {
	for _, name := range legacyTieBreakers {
		if column == name {
			return true
		}
	}
	if table != "" && column == table+"_id" {
		return true
	}
	for _, name := range extra {
		if column == strings.ToLower(name) {
			return true
		}
	}
	return false
}
