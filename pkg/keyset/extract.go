package keyset

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// volatileFunctions cannot order a keyset page stably.
var volatileFunctions = map[string]struct{}{
	"random":              {},
	"rand":                {},
	"gen_random_uuid":     {},
	"uuid_generate_v1":    {},
	"uuid_generate_v4":    {},
	"now":                 {},
	"current_timestamp":   {},
	"clock_timestamp":     {},
	"statement_timestamp": {},
	"timeofday":           {},
	"currval":             {},
	"nextval":             {},
}

// ExtractOrderKeys parses sql and returns its ORDER BY keys with null
// ordering resolved for the dialect. Postgres fills unspecified null ordering
// with its engine defaults (NULLS LAST ascending, NULLS FIRST descending);
// every other dialect is treated as nulls-last.
func ExtractOrderKeys(sql, dialect string) (*Extraction, error) {
	parsed, err := pg_query.Parse(sql)
	if err != nil {
		return nil, newError(CodeRequiresStableTieBreaker, "statement could not be parsed for keyset ordering")
	}
	if len(parsed.Stmts) != 1 {
		return nil, newError(CodeRequiresStableTieBreaker, "keyset pagination requires a single statement")
	}
	sel := parsed.Stmts[0].Stmt.GetSelectStmt()
	if sel == nil {
		return nil, newError(CodeRequiresStableTieBreaker, "keyset pagination requires a select statement")
	}
	if sel.Op != pg_query.SetOperation_SETOP_NONE {
		// Set operations order the combined result; the sort clause hangs off
		// the topmost node and the per-key expressions still resolve against
		// its projection, which we cannot map to base tables.
		return nil, newError(CodeRequiresStableTieBreaker, "keyset pagination is not supported over set operations")
	}
	if len(sel.SortClause) == 0 {
		return nil, newError(CodeRequiresStableTieBreaker, "keyset pagination requires an explicit ORDER BY")
	}

	ext := &Extraction{Table: singleBaseTable(sel)}
	for _, item := range sel.SortClause {
		sb := item.GetSortBy()
		if sb == nil || sb.Node == nil {
			return nil, newError(CodeRequiresStableTieBreaker, "malformed ORDER BY clause")
		}
		if sb.SortbyDir == pg_query.SortByDir_SORTBY_USING {
			return nil, newError(CodeRequiresStableTieBreaker, "ORDER BY USING has no stable keyset form")
		}

		key := OrderKey{
			Descending: sb.SortbyDir == pg_query.SortByDir_SORTBY_DESC,
		}
		switch sb.SortbyNulls {
		case pg_query.SortByNulls_SORTBY_NULLS_FIRST:
			key.NullsFirst = true
			key.ExplicitNulls = true
		case pg_query.SortByNulls_SORTBY_NULLS_LAST:
			key.NullsFirst = false
			key.ExplicitNulls = true
		default:
			if isPostgres(dialect) {
				key.NullsFirst = key.Descending
			} else {
				key.NullsFirst = false
			}
		}

		expr, alias, err := resolveOrderExpr(sel, sb.Node)
		if err != nil {
			return nil, err
		}
		if err := rejectVolatile(expr); err != nil {
			return nil, err
		}
		key.Alias = alias
		key.Column = plainColumn(expr)
		key.Expression, err = exprText(expr)
		if err != nil {
			return nil, err
		}
		ext.Keys = append(ext.Keys, key)
	}
	return ext, nil
}

func isPostgres(dialect string) bool {
	switch strings.ToLower(dialect) {
	case "postgres", "postgresql":
		return true
	}
	return false
}

// resolveOrderExpr maps positional (ORDER BY 2) and alias (ORDER BY total)
// keys back to the projection expression they name.
func resolveOrderExpr(sel *pg_query.SelectStmt, node *pg_query.Node) (*pg_query.Node, string, error) {
	if c := node.GetAConst(); c != nil {
		pos := c.GetIval().GetIval()
		if pos < 1 || int(pos) > len(sel.TargetList) {
			return nil, "", newError(CodeRequiresStableTieBreaker, "ORDER BY position is out of range")
		}
		rt := sel.TargetList[pos-1].GetResTarget()
		if rt == nil || rt.Val == nil {
			return nil, "", newError(CodeRequiresStableTieBreaker, "ORDER BY position names an unusable projection")
		}
		return rt.Val, rt.Name, nil
	}
	if ref := node.GetColumnRef(); ref != nil && len(ref.Fields) == 1 {
		if name := ref.Fields[0].GetString_(); name != nil {
			for _, item := range sel.TargetList {
				rt := item.GetResTarget()
				if rt != nil && rt.Val != nil && rt.Name == name.Sval {
					return rt.Val, rt.Name, nil
				}
			}
		}
	}
	return node, "", nil
}

// rejectVolatile walks expr looking for function calls whose value changes
// between evaluations.
func rejectVolatile(node *pg_query.Node) error {
	if node == nil {
		return nil
	}
	if fc := node.GetFuncCall(); fc != nil {
		name := funcName(fc)
		if _, bad := volatileFunctions[name]; bad {
			return newError(CodeRequiresStableTieBreaker, "ORDER BY uses the nondeterministic function %s", name)
		}
		for _, arg := range fc.Args {
			if err := rejectVolatile(arg); err != nil {
				return err
			}
		}
		return nil
	}
	if sv := node.GetSqlvalueFunction(); sv != nil {
		// CURRENT_TIMESTAMP and friends parse as SQLValueFunction, not FuncCall.
		return newError(CodeRequiresStableTieBreaker, "ORDER BY uses a nondeterministic value function")
	}
	if ae := node.GetAExpr(); ae != nil {
		if err := rejectVolatile(ae.Lexpr); err != nil {
			return err
		}
		return rejectVolatile(ae.Rexpr)
	}
	if tc := node.GetTypeCast(); tc != nil {
		return rejectVolatile(tc.Arg)
	}
	if ce := node.GetCoalesceExpr(); ce != nil {
		for _, arg := range ce.Args {
			if err := rejectVolatile(arg); err != nil {
				return err
			}
		}
	}
	if cs := node.GetCaseExpr(); cs != nil {
		for _, w := range cs.Args {
			if cw := w.GetCaseWhen(); cw != nil {
				if err := rejectVolatile(cw.Expr); err != nil {
					return err
				}
				if err := rejectVolatile(cw.Result); err != nil {
					return err
				}
			}
		}
		return rejectVolatile(cs.Defresult)
	}
	return nil
}

func funcName(fc *pg_query.FuncCall) string {
	if len(fc.Funcname) == 0 {
		return ""
	}
	last := fc.Funcname[len(fc.Funcname)-1].GetString_()
	if last == nil {
		return ""
	}
	return strings.ToLower(last.Sval)
}

// plainColumn returns the bare column name when node is a simple column
// reference, possibly qualified.
func plainColumn(node *pg_query.Node) string {
	ref := node.GetColumnRef()
	if ref == nil || len(ref.Fields) == 0 {
		return ""
	}
	last := ref.Fields[len(ref.Fields)-1].GetString_()
	if last == nil {
		return ""
	}
	return strings.ToLower(last.Sval)
}

// singleBaseTable returns the relation name when the FROM clause is exactly
// one plain table.
func singleBaseTable(sel *pg_query.SelectStmt) string {
	if len(sel.FromClause) != 1 {
		return ""
	}
	rv := sel.FromClause[0].GetRangeVar()
	if rv == nil {
		return ""
	}
	return strings.ToLower(rv.Relname)
}

// exprText renders an expression by deparsing it inside a throwaway
// single-column projection.
func exprText(node *pg_query.Node) (string, error) {
	wrapper, err := pg_query.Parse("SELECT 1")
	if err != nil {
		return "", newError(CodeRequiresStableTieBreaker, "ORDER BY expression could not be rendered")
	}
	wrapper.Stmts[0].Stmt.GetSelectStmt().TargetList[0].GetResTarget().Val = node
	out, err := pg_query.Deparse(wrapper)
	if err != nil {
		return "", newError(CodeRequiresStableTieBreaker, "ORDER BY expression could not be rendered")
	}
	return strings.TrimSpace(strings.TrimPrefix(out, "SELECT")), nil
}
