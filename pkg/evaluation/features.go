package evaluation

import (
	"strconv"
	"strings"
	"time"

	pg_query "github.com/pganalyze/pg_query_go/v6"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Predicate classes compared by the structural suite.
const (
	predEquality  = "equality"
	predRange     = "range"
	predIn        = "in"
	predLike      = "like"
	predNullCheck = "null_check"
)

var aggregateFunctions = map[string]struct{}{
	"count":      {},
	"sum":        {},
	"avg":        {},
	"min":        {},
	"max":        {},
	"array_agg":  {},
	"string_agg": {},
	"bool_and":   {},
	"bool_or":    {},
	"stddev":     {},
	"variance":   {},
}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// queryFeatures is the structural and value footprint of one statement,
// extracted from its parse tree.
type queryFeatures struct {
	tables     map[string]struct{}
	joins      int
	aggregated bool
	grouped    bool
	predicates map[string]struct{}
	limit      int
	hasLimit   bool

	// Value footprint, keyed by the unqualified column name.
	rangeNums  map[string][]float64
	rangeDates map[string][]time.Time
	eqValues   map[string]map[string]struct{}
	inValues   map[string]map[string]struct{}
}

func newQueryFeatures() *queryFeatures {
	return &queryFeatures{
		tables:     make(map[string]struct{}),
		predicates: make(map[string]struct{}),
		rangeNums:  make(map[string][]float64),
		rangeDates: make(map[string][]time.Time),
		eqValues:   make(map[string]map[string]struct{}),
		inValues:   make(map[string]map[string]struct{}),
	}
}

// extract parses sql and walks the tree once. A statement that does not
// parse has no features; callers apply the parse-failure scoring policy.
func extract(sql string) *queryFeatures {
	parsed, err := pg_query.Parse(sql)
	if err != nil || len(parsed.Stmts) == 0 {
		return nil
	}

	f := newQueryFeatures()
	// Only the top-level limit describes the statement's page shape.
	if sel := parsed.Stmts[0].Stmt.GetSelectStmt(); sel != nil {
		if n, ok := limitValue(sel.LimitCount); ok {
			f.limit, f.hasLimit = n, true
		}
	}

	inspect(parsed.ProtoReflect(), func(m protoreflect.Message) {
		switch string(m.Descriptor().Name()) {
		case "RangeVar":
			if rv, ok := m.Interface().(*pg_query.RangeVar); ok && rv.Relname != "" {
				f.tables[strings.ToLower(rv.Relname)] = struct{}{}
			}
		case "JoinExpr":
			f.joins++
		case "SelectStmt":
			if sel, ok := m.Interface().(*pg_query.SelectStmt); ok && len(sel.GroupClause) > 0 {
				f.grouped = true
			}
		case "FuncCall":
			fc, ok := m.Interface().(*pg_query.FuncCall)
			if !ok {
				return
			}
			if _, agg := aggregateFunctions[funcName(fc)]; agg || fc.AggStar || fc.AggDistinct {
				f.aggregated = true
			}
		case "A_Expr":
			if ae, ok := m.Interface().(*pg_query.A_Expr); ok {
				f.readExpr(ae)
			}
		case "NullTest":
			f.predicates[predNullCheck] = struct{}{}
		case "SubLink":
			if sl, ok := m.Interface().(*pg_query.SubLink); ok && sl.SubLinkType == pg_query.SubLinkType_ANY_SUBLINK {
				f.predicates[predIn] = struct{}{}
			}
		}
	})
	return f
}

func (f *queryFeatures) readExpr(ae *pg_query.A_Expr) {
	switch ae.Kind {
	case pg_query.A_Expr_Kind_AEXPR_OP:
		switch operatorName(ae) {
		case "=", "<>", "!=":
			f.predicates[predEquality] = struct{}{}
			if operatorName(ae) != "=" {
				return
			}
			if col, lit, ok := comparison(ae); ok {
				addSetValue(f.eqValues, col, lit.text)
			}
		case "<", ">", "<=", ">=":
			f.predicates[predRange] = struct{}{}
			if col, lit, ok := comparison(ae); ok {
				f.addRangeValue(col, lit)
			}
		}
	case pg_query.A_Expr_Kind_AEXPR_IN:
		f.predicates[predIn] = struct{}{}
		col := columnOf(ae.Lexpr)
		if col == "" || ae.Rexpr == nil {
			return
		}
		if list := ae.Rexpr.GetList(); list != nil {
			for _, item := range list.Items {
				if lit, ok := constValue(item); ok {
					addSetValue(f.inValues, col, lit.text)
				}
			}
		}
	case pg_query.A_Expr_Kind_AEXPR_LIKE,
		pg_query.A_Expr_Kind_AEXPR_ILIKE,
		pg_query.A_Expr_Kind_AEXPR_SIMILAR:
		f.predicates[predLike] = struct{}{}
	case pg_query.A_Expr_Kind_AEXPR_BETWEEN,
		pg_query.A_Expr_Kind_AEXPR_NOT_BETWEEN,
		pg_query.A_Expr_Kind_AEXPR_BETWEEN_SYM,
		pg_query.A_Expr_Kind_AEXPR_NOT_BETWEEN_SYM:
		f.predicates[predRange] = struct{}{}
		col := columnOf(ae.Lexpr)
		if col == "" || ae.Rexpr == nil {
			return
		}
		if list := ae.Rexpr.GetList(); list != nil {
			for _, bound := range list.Items {
				if lit, ok := constValue(bound); ok {
					f.addRangeValue(col, lit)
				}
			}
		}
	}
}

func (f *queryFeatures) addRangeValue(col string, lit literal) {
	if lit.numeric {
		f.rangeNums[col] = append(f.rangeNums[col], lit.num)
		return
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, lit.text); err == nil {
			f.rangeDates[col] = append(f.rangeDates[col], t)
			return
		}
	}
}

func addSetValue(m map[string]map[string]struct{}, col, value string) {
	if m[col] == nil {
		m[col] = make(map[string]struct{})
	}
	m[col][value] = struct{}{}
}

// literal is one constant operand, with its numeric value when it has one.
type literal struct {
	text    string
	num     float64
	numeric bool
}

// comparison resolves a binary expression into (column, constant) regardless
// of operand order.
func comparison(ae *pg_query.A_Expr) (string, literal, bool) {
	if col := columnOf(ae.Lexpr); col != "" {
		if lit, ok := constValue(ae.Rexpr); ok {
			return col, lit, true
		}
	}
	if col := columnOf(ae.Rexpr); col != "" {
		if lit, ok := constValue(ae.Lexpr); ok {
			return col, lit, true
		}
	}
	return "", literal{}, false
}

func constValue(node *pg_query.Node) (literal, bool) {
	if node == nil {
		return literal{}, false
	}
	if tc := node.GetTypeCast(); tc != nil {
		return constValue(tc.Arg)
	}
	c := node.GetAConst()
	if c == nil {
		return literal{}, false
	}
	switch {
	case c.GetIval() != nil:
		v := c.GetIval().Ival
		return literal{text: strconv.FormatInt(int64(v), 10), num: float64(v), numeric: true}, true
	case c.GetFval() != nil:
		s := c.GetFval().Fval
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return literal{text: s}, true
		}
		return literal{text: s, num: v, numeric: true}, true
	case c.GetSval() != nil:
		return literal{text: c.GetSval().Sval}, true
	case c.GetBoolval() != nil:
		return literal{text: strconv.FormatBool(c.GetBoolval().Boolval)}, true
	}
	return literal{}, false
}

func limitValue(node *pg_query.Node) (int, bool) {
	lit, ok := constValue(node)
	if !ok || !lit.numeric {
		return 0, false
	}
	return int(lit.num), true
}

func columnOf(node *pg_query.Node) string {
	if node == nil {
		return ""
	}
	cr := node.GetColumnRef()
	if cr == nil || len(cr.Fields) == 0 {
		return ""
	}
	last := cr.Fields[len(cr.Fields)-1].GetString_()
	if last == nil {
		return ""
	}
	return strings.ToLower(last.Sval)
}

func operatorName(ae *pg_query.A_Expr) string {
	if len(ae.Name) == 0 {
		return ""
	}
	if s := ae.Name[len(ae.Name)-1].GetString_(); s != nil {
		return s.Sval
	}
	return ""
}

func funcName(fc *pg_query.FuncCall) string {
	if len(fc.Funcname) == 0 {
		return ""
	}
	if s := fc.Funcname[len(fc.Funcname)-1].GetString_(); s != nil {
		return strings.ToLower(s.Sval)
	}
	return ""
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

// canonicalize parses then deparses sql so formatting, casing and keyword
// variants compare byte-equal.
func canonicalize(sql string) (string, bool) {
	parsed, err := pg_query.Parse(sql)
	if err != nil || len(parsed.Stmts) == 0 {
		return "", false
	}
	out, err := pg_query.Deparse(parsed)
	if err != nil {
		return "", false
	}
	return out, true
}

// foldWhitespace is the comparison of last resort when a side does not
// parse: collapse whitespace, fold case, drop a trailing semicolon.
func foldWhitespace(sql string) string {
	s := strings.TrimSpace(sql)
	s = strings.TrimSuffix(s, ";")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
