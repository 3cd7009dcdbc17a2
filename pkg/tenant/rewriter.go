package tenant

import (
	"fmt"
	"sort"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// Rewrite injects `<alias>.<tenant_column> = $n` predicates into every
// eligible base-table reference of the request's SELECT and returns the
// deparsed SQL with the ordered parameter list. The rewrite fails closed:
// any shape it cannot prove safe is rejected with a classified kind and a
// sanitized message.
func Rewrite(req Request) (*Result, error) {
	res, rerr := rewriteOnce(req)
	if rerr != nil {
		return nil, rerr
	}
	if req.Options.AssertInvariants {
		again, aerr := rewriteOnce(req)
		if aerr != nil || again.SQL != res.SQL || len(again.Params) != len(res.Params) {
			return nil, newError(KindCompletenessFailed, "determinism assertion failed")
		}
	}
	return res, nil
}

func rewriteOnce(req Request) (*Result, *Error) {
	opts := req.Options
	if opts.MaxTargets <= 0 {
		opts.MaxTargets = DefaultMaxTargets
	}
	if opts.MaxParams <= 0 {
		opts.MaxParams = DefaultMaxParams
	}
	if opts.MaxASTNodes <= 0 {
		opts.MaxASTNodes = DefaultMaxASTNodes
	}
	tenantColumn := req.TenantColumn
	if tenantColumn == "" {
		tenantColumn = DefaultTenantColumn
	}

	if _, ok := supportedProviders[strings.ToLower(req.Provider)]; !ok {
		return nil, newError(KindDialectUnsupported, fmt.Sprintf("provider %q", strings.ToLower(req.Provider)))
	}

	parsed, err := pg_query.Parse(req.SQL)
	if err != nil {
		return nil, newError(KindParseFailed, "parse error")
	}
	if len(parsed.Stmts) != 1 {
		return nil, newError(KindUnsupportedShape, "multiple statements")
	}
	root := parsed.Stmts[0].Stmt.GetSelectStmt()
	if root == nil {
		return nil, newError(KindUnsupportedShape, "non-select root")
	}

	facts := scanFacts(parsed)
	if facts.nodeCount > opts.MaxASTNodes {
		return nil, newError(KindASTComplexityExceeded,
			fmt.Sprintf("node count %d over ceiling %d", facts.nodeCount, opts.MaxASTNodes))
	}
	if facts.hasWindow {
		return nil, newError(KindUnsupportedShape, "window function")
	}
	if root.Op != pg_query.SetOperation_SETOP_NONE {
		return nil, newError(KindUnsupportedShape, "set operation at top level")
	}

	a := &analysis{
		opts:         opts,
		tenantColumn: strings.ToLower(tenantColumn),
		exempt:       lowerSet(req.ExemptTables),
		metadata:     lowerColumns(req.TableColumns),
		cteNames:     map[string]struct{}{},
	}
	if err := a.walkStatement(root); err != nil {
		return nil, err
	}

	if len(a.targets) > opts.MaxTargets {
		return nil, newError(KindTargetLimitExceeded,
			fmt.Sprintf("%d table references over cap %d", len(a.targets), opts.MaxTargets))
	}

	plan, perr := a.injectionPlan()
	if perr != nil {
		return nil, perr
	}
	if len(plan) == 0 {
		return nil, newError(KindNoPredicatesProduced, "no eligible table references")
	}
	if len(plan) > opts.MaxParams {
		return nil, newError(KindParamLimitExceeded,
			fmt.Sprintf("%d parameters over cap %d", len(plan), opts.MaxParams))
	}

	params := make([]any, 0, len(plan))
	rewritten := make([]string, 0, len(plan))
	number := facts.maxParamRef
	for _, t := range plan {
		number++
		pred := tenantPredicateNode(t.effective, a.tenantColumn, number)
		t.scope.sel.WhereClause = andNode(t.scope.sel.WhereClause, pred)
		params = append(params, req.TenantID)
		rewritten = append(rewritten, t.key())
	}

	sql, derr := pg_query.Deparse(parsed)
	if derr != nil {
		return nil, newError(KindParseFailed, "deparse failed")
	}

	if aerr := a.auditCompleteness(sql, plan, facts.maxParamRef); aerr != nil {
		return nil, aerr
	}

	return &Result{
		SQL:             sql,
		Params:          params,
		RewrittenTables: rewritten,
		PredicateCount:  len(plan),
		Classification: Classification{
			HasCTE:      a.hasCTE,
			HasSubquery: a.hasSubquery,
			ScopeDepth:  a.maxDepth,
		},
	}, nil
}

// scope is one SELECT lexical scope: a CTE body, the final SELECT, or a
// subquery.
type scope struct {
	index   int
	cteName string
	depth   int
	sel     *pg_query.SelectStmt
	// names maps effective name (alias or table name) to physical table
	// name; CTE references map to "".
	names map[string]string
	refs  []colref
}

type target struct {
	scope     *scope
	cteName   string
	effective string
	physical  string
	scopeIdx  int
	appearIdx int
}

// key identifies the rewritten reference in observability output
func (t target) key() string {
	key := t.effective
	if t.effective != t.physical {
		key = t.effective + ":" + t.physical
	}
	if t.cteName != "" {
		key = t.cteName + "/" + key
	}
	return key
}

type colref struct {
	qualifier string
	column    string
}

type analysis struct {
	opts         Options
	tenantColumn string
	exempt       map[string]struct{}
	metadata     map[string][]string

	cteNames    map[string]struct{}
	scopes      []*scope
	targets     []target
	hasCTE      bool
	hasSubquery bool
	maxDepth    int
}

func (a *analysis) walkStatement(root *pg_query.SelectStmt) *Error {
	if root.WithClause != nil {
		if root.WithClause.Recursive {
			return newError(KindUnsupportedShape, "recursive cte")
		}
		a.hasCTE = true
		for _, node := range root.WithClause.Ctes {
			common := node.GetCommonTableExpr()
			if common == nil {
				return newError(KindUnsupportedShape, "unrecognized cte entry")
			}
			body := common.Ctequery.GetSelectStmt()
			if body == nil {
				return newError(KindUnsupportedShape, "non-select cte body")
			}
			if body.Op != pg_query.SetOperation_SETOP_NONE {
				return newError(KindUnsupportedShape, "set operation in cte body")
			}
			if body.WithClause != nil {
				return newError(KindUnsupportedShape, "nested with clause")
			}
			s := a.newScope(strings.ToLower(common.Ctename), 1, body)
			if err := a.collectFrom(s, body.FromClause); err != nil {
				return err
			}
			if err := a.walkScopeExprs(s, true); err != nil {
				return err
			}
			// a CTE name is visible only to later bodies and the final select
			a.cteNames[strings.ToLower(common.Ctename)] = struct{}{}
		}
	}

	main := a.newScope("", 1, root)
	if err := a.collectFrom(main, root.FromClause); err != nil {
		return err
	}
	return a.walkScopeExprs(main, true)
}

func (a *analysis) newScope(cteName string, depth int, sel *pg_query.SelectStmt) *scope {
	s := &scope{
		index:   len(a.scopes),
		cteName: cteName,
		depth:   depth,
		sel:     sel,
		names:   map[string]string{},
	}
	a.scopes = append(a.scopes, s)
	if depth > a.maxDepth {
		a.maxDepth = depth
	}
	return s
}

func (a *analysis) collectFrom(s *scope, items []*pg_query.Node) *Error {
	for _, item := range items {
		if err := a.collectFromItem(s, item); err != nil {
			return err
		}
	}
	return nil
}

func (a *analysis) collectFromItem(s *scope, node *pg_query.Node) *Error {
	if node == nil {
		return nil
	}
	if rv := node.GetRangeVar(); rv != nil {
		name := strings.ToLower(rv.Relname)
		effective := name
		if rv.Alias != nil && rv.Alias.Aliasname != "" {
			effective = strings.ToLower(rv.Alias.Aliasname)
		}
		if existing, dup := s.names[effective]; dup && existing != name {
			return newError(KindUnsupportedShape, "duplicate alias in scope")
		}
		if _, isCTE := a.cteNames[name]; isCTE && rv.Schemaname == "" {
			s.names[effective] = ""
			return nil
		}
		s.names[effective] = name
		a.targets = append(a.targets, target{
			scope:     s,
			cteName:   s.cteName,
			effective: effective,
			physical:  name,
			scopeIdx:  s.index,
			appearIdx: len(a.targets),
		})
		return nil
	}
	if join := node.GetJoinExpr(); join != nil {
		if err := a.collectFromItem(s, join.Larg); err != nil {
			return err
		}
		if err := a.collectFromItem(s, join.Rarg); err != nil {
			return err
		}
		return nil
	}
	if node.GetRangeSubselect() != nil {
		return newError(KindUnsupportedShape, "nested select in FROM")
	}
	if node.GetRangeFunction() != nil {
		return newError(KindUnsupportedShape, "function in FROM")
	}
	return newError(KindUnsupportedShape, "unrecognized FROM entry")
}

// walkScopeExprs visits the scope's expression roots in document order,
// recording column references and descending into subqueries when allowed.
func (a *analysis) walkScopeExprs(s *scope, allowSubqueries bool) *Error {
	refs := []colref{}
	var walkErr *Error

	var walk func(node *pg_query.Node)
	walk = func(node *pg_query.Node) {
		if node == nil || walkErr != nil {
			return
		}
		if cr := node.GetColumnRef(); cr != nil {
			if ref, ok := columnRefParts(cr); ok {
				refs = append(refs, ref)
			}
			return
		}
		if sl := node.GetSubLink(); sl != nil {
			if !allowSubqueries {
				walkErr = newError(KindUnsupportedShape, "nested subquery")
				return
			}
			a.hasSubquery = true
			walk(sl.Testexpr)
			if err := a.enterSubquery(s, sl); err != nil {
				walkErr = err
			}
			return
		}
		if fc := node.GetFuncCall(); fc != nil {
			for _, arg := range fc.Args {
				walk(arg)
			}
			walk(fc.AggFilter)
			return
		}
		if rt := node.GetResTarget(); rt != nil {
			walk(rt.Val)
			return
		}
		if sb := node.GetSortBy(); sb != nil {
			walk(sb.Node)
			return
		}
		if ae := node.GetAExpr(); ae != nil {
			walk(ae.Lexpr)
			walk(ae.Rexpr)
			return
		}
		if be := node.GetBoolExpr(); be != nil {
			for _, arg := range be.Args {
				walk(arg)
			}
			return
		}
		if nt := node.GetNullTest(); nt != nil {
			walk(nt.Arg)
			return
		}
		if ce := node.GetCoalesceExpr(); ce != nil {
			for _, arg := range ce.Args {
				walk(arg)
			}
			return
		}
		if caseExpr := node.GetCaseExpr(); caseExpr != nil {
			walk(caseExpr.Arg)
			for _, when := range caseExpr.Args {
				walk(when)
			}
			walk(caseExpr.Defresult)
			return
		}
		if cw := node.GetCaseWhen(); cw != nil {
			walk(cw.Expr)
			walk(cw.Result)
			return
		}
		if tc := node.GetTypeCast(); tc != nil {
			walk(tc.Arg)
			return
		}
		if list := node.GetList(); list != nil {
			for _, item := range list.Items {
				walk(item)
			}
			return
		}
	}

	for _, item := range s.sel.FromClause {
		walkJoinQuals(item, walk)
	}
	for _, t := range s.sel.TargetList {
		walk(t)
	}
	walk(s.sel.WhereClause)
	for _, g := range s.sel.GroupClause {
		walk(g)
	}
	walk(s.sel.HavingClause)
	for _, sb := range s.sel.SortClause {
		walk(sb)
	}
	walk(s.sel.LimitCount)
	walk(s.sel.LimitOffset)

	if walkErr != nil {
		return walkErr
	}
	s.refs = refs
	return nil
}

func walkJoinQuals(node *pg_query.Node, walk func(*pg_query.Node)) {
	if node == nil {
		return
	}
	if join := node.GetJoinExpr(); join != nil {
		walkJoinQuals(join.Larg, walk)
		walkJoinQuals(join.Rarg, walk)
		walk(join.Quals)
	}
}

func columnRefParts(cr *pg_query.ColumnRef) (colref, bool) {
	var parts []string
	for _, field := range cr.Fields {
		if s := field.GetString_(); s != nil {
			parts = append(parts, strings.ToLower(s.Sval))
		}
	}
	switch len(parts) {
	case 0:
		return colref{}, false
	case 1:
		return colref{column: parts[0]}, true
	default:
		return colref{qualifier: parts[len(parts)-2], column: parts[len(parts)-1]}, true
	}
}

func (a *analysis) enterSubquery(outer *scope, sl *pg_query.SubLink) *Error {
	sub := sl.Subselect.GetSelectStmt()
	if sub == nil {
		return newError(KindUnsupportedShape, "non-select subquery")
	}
	if sub.Op != pg_query.SetOperation_SETOP_NONE {
		return newError(KindUnsupportedShape, "set operation in subquery")
	}
	if sub.WithClause != nil {
		return newError(KindUnsupportedShape, "with clause in subquery")
	}
	if sl.SubLinkType == pg_query.SubLinkType_EXPR_SUBLINK {
		if err := checkScalarAggregateForm(sub); err != nil {
			return err
		}
	}

	s := a.newScope(outer.cteName, outer.depth+1, sub)
	if err := a.collectFrom(s, sub.FromClause); err != nil {
		return err
	}
	if err := a.walkScopeExprs(s, false); err != nil {
		return err
	}
	return a.checkCorrelation(s, outer)
}

// checkScalarAggregateForm enforces the strict shape for scalar aggregate
// subqueries: a single aggregate projection with no grouping, no DISTINCT,
// and at most LIMIT 1.
func checkScalarAggregateForm(sub *pg_query.SelectStmt) *Error {
	if !selectHasAggregate(sub) {
		return nil
	}
	if len(sub.TargetList) != 1 {
		return newError(KindUnsupportedShape, "scalar aggregate with multiple projections")
	}
	if len(sub.GroupClause) > 0 || sub.HavingClause != nil || len(sub.DistinctClause) > 0 {
		return newError(KindUnsupportedShape, "scalar aggregate with grouping")
	}
	if sub.LimitCount != nil && !isLimitOne(sub.LimitCount) {
		return newError(KindUnsupportedShape, "scalar aggregate with limit")
	}
	return nil
}

var scalarAggregates = map[string]struct{}{
	"count": {}, "sum": {}, "avg": {}, "min": {}, "max": {},
	"array_agg": {}, "string_agg": {}, "bool_and": {}, "bool_or": {},
}

func selectHasAggregate(sel *pg_query.SelectStmt) bool {
	for _, t := range sel.TargetList {
		rt := t.GetResTarget()
		if rt == nil {
			continue
		}
		if fc := rt.Val.GetFuncCall(); fc != nil {
			name := ""
			if len(fc.Funcname) > 0 {
				if s := fc.Funcname[len(fc.Funcname)-1].GetString_(); s != nil {
					name = strings.ToLower(s.Sval)
				}
			}
			if _, agg := scalarAggregates[name]; agg || fc.AggStar {
				return true
			}
		}
	}
	return false
}

func isLimitOne(node *pg_query.Node) bool {
	if c := node.GetAConst(); c != nil {
		if iv := c.GetIval(); iv != nil {
			return iv.Ival == 1
		}
	}
	return false
}

// checkCorrelation rejects subqueries whose column references reach into the
// outer scope. In strict mode, unqualified references are rejected unless
// column metadata proves they resolve inside the subquery.
func (a *analysis) checkCorrelation(inner *scope, outer *scope) *Error {
	outerVisible := map[string]string{}
	for eff, phys := range outer.names {
		outerVisible[eff] = phys
	}
	for cte := range a.cteNames {
		if _, taken := outerVisible[cte]; !taken {
			outerVisible[cte] = ""
		}
	}

	for _, ref := range inner.refs {
		if ref.qualifier != "" {
			if _, local := inner.names[ref.qualifier]; local {
				continue
			}
			if _, visible := outerVisible[ref.qualifier]; visible {
				return newError(KindUnsupportedShape, "correlated subquery")
			}
			continue
		}
		switch a.classifyUnqualified(ref.column, inner, outerVisible) {
		case bindInner:
		case bindOuter:
			return newError(KindUnsupportedShape, "correlated subquery")
		case bindUnknown:
			if a.opts.StrictMode {
				return newError(KindUnsupportedShape, "ambiguous column reference in subquery")
			}
		}
	}
	return nil
}

type binding int

const (
	bindInner binding = iota
	bindOuter
	bindUnknown
)

// classifyUnqualified resolves an unqualified column reference inside a
// subquery using table metadata. Name resolution binds innermost-first, so a
// column present in an inner table is never correlated; a column provably
// absent from every inner table but present in an outer one is.
func (a *analysis) classifyUnqualified(column string, inner *scope, outerVisible map[string]string) binding {
	if len(a.metadata) == 0 {
		return bindUnknown
	}
	innerHas, innerComplete := a.metadataLookup(column, inner.names)
	if innerHas {
		return bindInner
	}
	outerHas, outerComplete := a.metadataLookup(column, outerVisible)
	if outerHas && innerComplete {
		return bindOuter
	}
	if !outerHas && outerComplete && innerComplete {
		// the column exists nowhere we know of; not a correlation concern
		return bindInner
	}
	return bindUnknown
}

// metadataLookup reports whether any table in names carries the column, and
// whether metadata was available for every table (CTE references count as
// unknown).
func (a *analysis) metadataLookup(column string, names map[string]string) (found bool, complete bool) {
	complete = true
	for _, physical := range names {
		if physical == "" {
			complete = false
			continue
		}
		cols, known := a.metadata[physical]
		if !known {
			complete = false
			continue
		}
		if containsString(cols, column) {
			found = true
		}
	}
	return found, complete
}

// injectionPlan returns the deduplicated targets in deterministic injection
// order, after exemption and tenant-column checks.
func (a *analysis) injectionPlan() ([]target, *Error) {
	ordered := make([]target, len(a.targets))
	copy(ordered, a.targets)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].cteName != ordered[j].cteName {
			return ordered[i].cteName < ordered[j].cteName
		}
		if ordered[i].effective != ordered[j].effective {
			return ordered[i].effective < ordered[j].effective
		}
		if ordered[i].physical != ordered[j].physical {
			return ordered[i].physical < ordered[j].physical
		}
		if ordered[i].scopeIdx != ordered[j].scopeIdx {
			return ordered[i].scopeIdx < ordered[j].scopeIdx
		}
		return ordered[i].appearIdx < ordered[j].appearIdx
	})

	seen := map[string]struct{}{}
	plan := make([]target, 0, len(ordered))
	for _, t := range ordered {
		if _, skip := a.exempt[t.physical]; skip {
			continue
		}
		if cols, known := a.metadata[t.physical]; known && !containsString(cols, a.tenantColumn) {
			return nil, newError(KindMissingTenantColumn, "tenant column absent from table metadata")
		}
		dedupeKey := fmt.Sprintf("%d\x00%s", t.scopeIdx, t.effective)
		if _, dup := seen[dedupeKey]; dup {
			continue
		}
		seen[dedupeKey] = struct{}{}
		plan = append(plan, t)
	}
	return plan, nil
}

// auditCompleteness verifies the post-conditions on the mutated tree: every
// planned reference has exactly one tenant predicate in its enclosing scope,
// every injected predicate qualifier is defined in its scope, and the number
// of appended placeholders matches the plan. It also checks the rewritten
// text still parses as a single select.
func (a *analysis) auditCompleteness(sql string, plan []target, paramBase int32) *Error {
	reparsed, err := pg_query.Parse(sql)
	if err != nil || len(reparsed.Stmts) != 1 || reparsed.Stmts[0].Stmt.GetSelectStmt() == nil {
		return newError(KindCompletenessFailed, "rewritten statement does not reparse")
	}

	total := 0
	counts := make(map[*scope]map[string]int, len(a.scopes))
	for _, s := range a.scopes {
		counts[s] = map[string]int{}
		collectTenantPredicates(s.sel.WhereClause, a.tenantColumn, paramBase, counts[s])
		for qualifier, n := range counts[s] {
			if _, defined := s.names[qualifier]; !defined {
				return newError(KindCompletenessFailed, "predicate references name outside its scope")
			}
			if n > 1 {
				return newError(KindCompletenessFailed, "duplicate predicate for alias")
			}
			total += n
		}
	}

	for _, t := range plan {
		if counts[t.scope][t.effective] != 1 {
			return newError(KindCompletenessFailed, "uncovered table reference after rewrite")
		}
	}
	if total != len(plan) {
		return newError(KindCompletenessFailed, "placeholder count mismatch")
	}
	return nil
}

// collectTenantPredicates counts `qualifier.tenantColumn = $n` terms on the
// top-level AND chain with placeholder numbers above paramBase, so predicates
// present in the input do not count as injected.
func collectTenantPredicates(node *pg_query.Node, tenantColumn string, paramBase int32, out map[string]int) {
	if node == nil {
		return
	}
	if be := node.GetBoolExpr(); be != nil && be.Boolop == pg_query.BoolExprType_AND_EXPR {
		for _, arg := range be.Args {
			collectTenantPredicates(arg, tenantColumn, paramBase, out)
		}
		return
	}
	ae := node.GetAExpr()
	if ae == nil || len(ae.Name) != 1 {
		return
	}
	if op := ae.Name[0].GetString_(); op == nil || op.Sval != "=" {
		return
	}
	lhs := ae.Lexpr.GetColumnRef()
	rhs := ae.Rexpr.GetParamRef()
	if lhs == nil || rhs == nil || rhs.Number <= paramBase {
		return
	}
	if ref, ok := columnRefParts(lhs); ok && ref.column == tenantColumn && ref.qualifier != "" {
		out[ref.qualifier]++
	}
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func lowerColumns(meta map[string][]string) map[string][]string {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string][]string, len(meta))
	for table, cols := range meta {
		lowered := make([]string, len(cols))
		for i, c := range cols {
			lowered[i] = strings.ToLower(c)
		}
		out[strings.ToLower(table)] = lowered
	}
	return out
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
