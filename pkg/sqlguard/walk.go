package sqlguard

import (
	"sort"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// forbiddenStatements are AST node types that may never appear anywhere in a
// read-only query, including inside CTE bodies.
var forbiddenStatements = map[string]struct{}{
	"InsertStmt":         {},
	"UpdateStmt":         {},
	"DeleteStmt":         {},
	"MergeStmt":          {},
	"DropStmt":           {},
	"TruncateStmt":       {},
	"AlterTableStmt":     {},
	"AlterDomainStmt":    {},
	"GrantStmt":          {},
	"GrantRoleStmt":      {},
	"CreateStmt":         {},
	"CreateTableAsStmt":  {},
	"CreateFunctionStmt": {},
	"CreateRoleStmt":     {},
	"CopyStmt":           {},
	"DoStmt":             {},
	"CallStmt":           {},
	"TransactionStmt":    {},
	"VariableSetStmt":    {},
	"LockStmt":           {},
	"PrepareStmt":        {},
	"ExecuteStmt":        {},
	"DeallocateStmt":     {},
	"ReindexStmt":        {},
	"VacuumStmt":         {},
	"RefreshMatViewStmt": {},
	"IndexStmt":          {},
	"RuleStmt":           {},
	"NotifyStmt":         {},
	"ListenStmt":         {},
}

// aggregateFunctions is the set of function names treated as aggregation for
// lineage purposes.
var aggregateFunctions = map[string]struct{}{
	"count":           {},
	"sum":             {},
	"avg":             {},
	"min":             {},
	"max":             {},
	"array_agg":       {},
	"string_agg":      {},
	"bool_and":        {},
	"bool_or":         {},
	"json_agg":        {},
	"jsonb_agg":       {},
	"percentile_cont": {},
	"percentile_disc": {},
	"stddev":          {},
	"variance":        {},
}

// treeScan is the aggregate outcome of one generic walk over the parse tree.
type treeScan struct {
	nodeCount         int
	joinCount         int
	hasSubquery       bool
	hasAggregation    bool
	hasWindowFunction bool
	forbiddenFound    []string
}

// scanTree walks every protobuf message in the parse tree once, counting
// nodes and collecting structural facts. Walk order over protobuf fields is
// unspecified, so callers must not derive ordering from this scan; the
// forbidden list is returned sorted for determinism.
func scanTree(result *pg_query.ParseResult) treeScan {
	scan := treeScan{}
	seen := map[string]struct{}{}

	inspect(result.ProtoReflect(), func(m protoreflect.Message) {
		scan.nodeCount++
		name := string(m.Descriptor().Name())
		if _, ok := forbiddenStatements[name]; ok {
			seen[name] = struct{}{}
		}
		switch name {
		case "JoinExpr":
			scan.joinCount++
		case "SubLink", "RangeSubselect":
			scan.hasSubquery = true
		case "WindowDef":
			scan.hasWindowFunction = true
		case "FuncCall":
			fc, ok := m.Interface().(*pg_query.FuncCall)
			if !ok {
				return
			}
			if fc.Over != nil {
				scan.hasWindowFunction = true
			}
			if _, agg := aggregateFunctions[funcName(fc)]; agg || fc.AggStar || fc.AggDistinct {
				scan.hasAggregation = true
			}
		}
	})

	scan.forbiddenFound = sortedKeys(seen)
	return scan
}

// inspect recursively visits m and every message reachable from it.
func inspect(m protoreflect.Message, visit func(protoreflect.Message)) {
	visit(m)
	m.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		switch {
		case fd.IsList() && fd.Kind() == protoreflect.MessageKind:
			list := v.List()
			for i := 0; i < list.Len(); i++ {
				inspect(list.Get(i).Message(), visit)
			}
		case fd.IsMap():
			// no map fields in the grammar
		case fd.Kind() == protoreflect.MessageKind:
			inspect(v.Message(), visit)
		}
		return true
	})
}

// funcName returns the lowercased unqualified function name of a call.
func funcName(fc *pg_query.FuncCall) string {
	if len(fc.Funcname) == 0 {
		return ""
	}
	last := fc.Funcname[len(fc.Funcname)-1]
	if s := last.GetString_(); s != nil {
		return strings.ToLower(s.Sval)
	}
	return ""
}

// funcSchema returns the lowercased schema qualifier of a call, if any.
func funcSchema(fc *pg_query.FuncCall) string {
	if len(fc.Funcname) < 2 {
		return ""
	}
	if s := fc.Funcname[0].GetString_(); s != nil {
		return strings.ToLower(s.Sval)
	}
	return ""
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
