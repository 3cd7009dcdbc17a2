// Package sqlguard validates SQL before execution: it parses the statement
// with the PostgreSQL grammar, enforces a read-only policy with table and
// column guards, and extracts lineage metadata for audit.
package sqlguard

import (
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var systemSchemas = map[string]struct{}{
	"pg_catalog":         {},
	"information_schema": {},
}

var dangerousFunctionPrefixes = []string{"pg_", "lo_", "dblink"}

var dangerousFunctions = map[string]struct{}{
	"current_setting": {},
	"set_config":      {},
	"query_to_xml":    {},
	"xpath":           {},
}

// Validate parses sql and enforces the read-only policy described by opts.
// The result carries lineage metadata even when validation fails. Output is
// deterministic: the same input yields byte-identical violation and warning
// lists.
func Validate(sql string, opts Options) *Result {
	opts = normalizeOptions(opts)
	res := &Result{Metadata: Metadata{ColumnUsage: map[string][]string{}}}

	if strings.TrimSpace(sql) == "" {
		res.addViolation(ViolationSyntaxError, "empty query", nil)
		return res
	}
	if strings.ContainsRune(sql, 0) {
		res.addViolation(ViolationSyntaxError, "invalid character in query", nil)
		return res
	}

	parsed, err := pg_query.Parse(sql)
	if err != nil {
		res.addViolation(ViolationSyntaxError, fmt.Sprintf("parse error: %v", err), nil)
		return res
	}

	if len(parsed.Stmts) == 0 {
		res.addViolation(ViolationSyntaxError, "empty query", nil)
		return res
	}
	if len(parsed.Stmts) > 1 {
		res.addViolation(ViolationSecurityPolicy, "multiple statements are not allowed",
			map[string]any{"statement_count": len(parsed.Stmts)})
		return res
	}

	stmt := parsed.Stmts[0].Stmt
	sel := stmt.GetSelectStmt()
	if sel == nil {
		res.addViolation(ViolationForbiddenCommand, "only SELECT statements are allowed",
			map[string]any{"statement_type": nodeTypeName(stmt)})
		return res
	}

	scan := scanTree(parsed)
	res.Metadata.NodeCount = scan.nodeCount
	res.Metadata.JoinComplexity = scan.joinCount
	res.Metadata.HasSubquery = scan.hasSubquery
	res.Metadata.HasAggregation = scan.hasAggregation
	res.Metadata.HasWindowFunction = scan.hasWindowFunction

	for _, name := range scan.forbiddenFound {
		res.addViolation(ViolationForbiddenCommand,
			fmt.Sprintf("forbidden construct: %s", name),
			map[string]any{"construct": name})
	}

	c := newCollector(opts, res)
	c.collectSelect(sel)
	c.finish()

	if scan.joinCount > opts.MaxJoinComplexity {
		res.addViolation(ViolationComplexityLimit,
			fmt.Sprintf("join complexity %d exceeds limit %d", scan.joinCount, opts.MaxJoinComplexity),
			map[string]any{"join_count": scan.joinCount, "limit": opts.MaxJoinComplexity})
	}
	if scan.nodeCount > opts.MaxASTNodes {
		res.addViolation(ViolationComplexityLimit,
			fmt.Sprintf("statement size %d nodes exceeds limit %d", scan.nodeCount, opts.MaxASTNodes),
			map[string]any{"node_count": scan.nodeCount, "limit": opts.MaxASTNodes})
	}

	if normalized, derr := pg_query.Deparse(parsed); derr == nil {
		res.NormalizedSQL = normalized
	}

	res.IsValid = len(res.Violations) == 0
	return res
}

func normalizeOptions(opts Options) Options {
	if opts.MaxJoinComplexity <= 0 {
		opts.MaxJoinComplexity = DefaultMaxJoinComplexity
	}
	if opts.MaxASTNodes <= 0 {
		opts.MaxASTNodes = DefaultMaxASTNodes
	}
	if opts.ColumnMode == "" {
		opts.ColumnMode = EnforcementOff
	}
	return opts
}

func (r *Result) addViolation(t ViolationType, msg string, details map[string]any) {
	r.Violations = append(r.Violations, Violation{Type: t, Message: msg, Details: details})
}

func (r *Result) addWarning(t ViolationType, msg string, details map[string]any) {
	r.Warnings = append(r.Warnings, Violation{Type: t, Message: msg, Details: details})
}

// collector walks the statement structurally, in document order, recording
// table references, column usage, and per-site violations.
type collector struct {
	opts Options
	res  *Result

	allowedTables map[string]struct{}
	restricted    map[string]struct{}
	sensitive     map[string]struct{}
	columnAllow   map[string]map[string]struct{}

	cteNames     map[string]struct{}
	aliasToTable map[string]string
	columnUsage  map[string]map[string]struct{}

	sensitiveHits map[string]struct{}
	allowlistHits map[string]struct{}
}

func newCollector(opts Options, res *Result) *collector {
	c := &collector{
		opts:          opts,
		res:           res,
		allowedTables: lowerSet(opts.AllowedTables),
		restricted:    lowerSet(opts.RestrictedTables),
		sensitive:     lowerSet(opts.SensitiveColumns),
		columnAllow:   map[string]map[string]struct{}{},
		cteNames:      map[string]struct{}{},
		aliasToTable:  map[string]string{},
		columnUsage:   map[string]map[string]struct{}{},
		sensitiveHits: map[string]struct{}{},
		allowlistHits: map[string]struct{}{},
	}
	for table, cols := range opts.AllowedColumns {
		c.columnAllow[strings.ToLower(table)] = lowerSet(cols)
	}
	return c
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func (c *collector) collectSelect(sel *pg_query.SelectStmt) {
	if sel == nil {
		return
	}

	if sel.WithClause != nil {
		// register CTE names before walking bodies so self-references and
		// chained CTEs are not mistaken for base tables
		for _, cte := range sel.WithClause.Ctes {
			if common := cte.GetCommonTableExpr(); common != nil {
				c.cteNames[strings.ToLower(common.Ctename)] = struct{}{}
			}
		}
		for _, cte := range sel.WithClause.Ctes {
			if common := cte.GetCommonTableExpr(); common != nil {
				c.collectSelect(common.Ctequery.GetSelectStmt())
			}
		}
	}

	// each set-operation branch is checked independently
	if sel.Op != pg_query.SetOperation_SETOP_NONE {
		c.collectSelect(sel.Larg)
		c.collectSelect(sel.Rarg)
		return
	}

	if sel.IntoClause != nil {
		c.res.addViolation(ViolationForbiddenCommand, "SELECT INTO is not allowed", nil)
	}
	if len(sel.LockingClause) > 0 {
		c.res.addViolation(ViolationSecurityPolicy, "locking clauses are not allowed", nil)
	}

	for _, item := range sel.FromClause {
		c.collectFromItem(item)
	}
	for _, target := range sel.TargetList {
		c.collectExpr(target)
	}
	c.collectExpr(sel.WhereClause)
	for _, group := range sel.GroupClause {
		c.collectExpr(group)
	}
	c.collectExpr(sel.HavingClause)
	for _, sortBy := range sel.SortClause {
		c.collectExpr(sortBy)
	}
	c.collectExpr(sel.LimitCount)
	c.collectExpr(sel.LimitOffset)
}

func (c *collector) collectFromItem(node *pg_query.Node) {
	if node == nil {
		return
	}

	if rv := node.GetRangeVar(); rv != nil {
		c.collectTable(rv)
		return
	}
	if join := node.GetJoinExpr(); join != nil {
		c.collectFromItem(join.Larg)
		c.collectFromItem(join.Rarg)
		c.collectExpr(join.Quals)
		return
	}
	if sub := node.GetRangeSubselect(); sub != nil {
		c.collectSelect(sub.Subquery.GetSelectStmt())
		return
	}
	if node.GetRangeFunction() != nil {
		c.res.addViolation(ViolationSecurityPolicy, "set-returning functions in FROM are not allowed", nil)
		return
	}
}

func (c *collector) collectTable(rv *pg_query.RangeVar) {
	name := strings.ToLower(rv.Relname)
	schema := strings.ToLower(rv.Schemaname)

	if _, cte := c.cteNames[name]; cte && schema == "" {
		// reference to a CTE defined in this query, not a base table
		return
	}

	alias := name
	if rv.Alias != nil && rv.Alias.Aliasname != "" {
		alias = strings.ToLower(rv.Alias.Aliasname)
	}
	c.aliasToTable[alias] = name
	c.res.Metadata.TableLineage = append(c.res.Metadata.TableLineage, TableRef{
		Schema: schema,
		Name:   name,
		Alias:  alias,
	})

	if _, sys := systemSchemas[schema]; sys || strings.HasPrefix(name, "pg_") {
		c.res.addViolation(ViolationRestrictedTable,
			fmt.Sprintf("access to system table %q is not allowed", rv.Relname),
			map[string]any{"table": name})
		return
	}
	if _, denied := c.restricted[name]; denied {
		c.res.addViolation(ViolationRestrictedTable,
			fmt.Sprintf("access to table %q is not allowed", rv.Relname),
			map[string]any{"table": name})
		return
	}
	if len(c.allowedTables) > 0 {
		if _, ok := c.allowedTables[name]; !ok {
			c.res.addViolation(ViolationRestrictedTable,
				fmt.Sprintf("table %q is not in the allowlist", rv.Relname),
				map[string]any{"table": name})
		}
	}
}

func (c *collector) collectExpr(node *pg_query.Node) {
	if node == nil {
		return
	}

	if cr := node.GetColumnRef(); cr != nil {
		c.collectColumnRef(cr)
		return
	}
	if sl := node.GetSubLink(); sl != nil {
		c.collectExpr(sl.Testexpr)
		c.collectSelect(sl.Subselect.GetSelectStmt())
		return
	}
	if fc := node.GetFuncCall(); fc != nil {
		c.collectFuncCall(fc)
		return
	}
	if rt := node.GetResTarget(); rt != nil {
		c.collectExpr(rt.Val)
		return
	}
	if sb := node.GetSortBy(); sb != nil {
		c.collectExpr(sb.Node)
		return
	}
	if ae := node.GetAExpr(); ae != nil {
		c.collectExpr(ae.Lexpr)
		c.collectExpr(ae.Rexpr)
		return
	}
	if be := node.GetBoolExpr(); be != nil {
		for _, arg := range be.Args {
			c.collectExpr(arg)
		}
		return
	}
	if nt := node.GetNullTest(); nt != nil {
		c.collectExpr(nt.Arg)
		return
	}
	if ce := node.GetCoalesceExpr(); ce != nil {
		for _, arg := range ce.Args {
			c.collectExpr(arg)
		}
		return
	}
	if caseExpr := node.GetCaseExpr(); caseExpr != nil {
		c.collectExpr(caseExpr.Arg)
		for _, when := range caseExpr.Args {
			c.collectExpr(when)
		}
		c.collectExpr(caseExpr.Defresult)
		return
	}
	if cw := node.GetCaseWhen(); cw != nil {
		c.collectExpr(cw.Expr)
		c.collectExpr(cw.Result)
		return
	}
	if tc := node.GetTypeCast(); tc != nil {
		c.collectExpr(tc.Arg)
		return
	}
	if list := node.GetList(); list != nil {
		for _, item := range list.Items {
			c.collectExpr(item)
		}
		return
	}
}

func (c *collector) collectFuncCall(fc *pg_query.FuncCall) {
	name := funcName(fc)
	schema := funcSchema(fc)

	if schema != "" && schema != "pg_catalog" {
		c.res.addViolation(ViolationSecurityPolicy,
			fmt.Sprintf("schema-qualified function calls are not allowed: %s", schema),
			map[string]any{"function": name, "schema": schema})
	}
	for _, prefix := range dangerousFunctionPrefixes {
		if strings.HasPrefix(name, prefix) {
			c.res.addViolation(ViolationSecurityPolicy,
				fmt.Sprintf("function %q is not allowed", name),
				map[string]any{"function": name})
			break
		}
	}
	if _, bad := dangerousFunctions[name]; bad {
		c.res.addViolation(ViolationSecurityPolicy,
			fmt.Sprintf("function %q is not allowed", name),
			map[string]any{"function": name})
	}

	for _, arg := range fc.Args {
		c.collectExpr(arg)
	}
	c.collectExpr(fc.AggFilter)
}

func (c *collector) collectColumnRef(cr *pg_query.ColumnRef) {
	var parts []string
	star := false
	for _, field := range cr.Fields {
		if s := field.GetString_(); s != nil {
			parts = append(parts, strings.ToLower(s.Sval))
		} else if field.GetAStar() != nil {
			star = true
		}
	}
	if len(parts) == 0 {
		return
	}

	column := parts[len(parts)-1]
	if star {
		// qualified star (alias.*): record the table touch, no column checks
		column = "*"
	}

	qualifier := ""
	if len(parts) > 1 {
		qualifier = parts[len(parts)-2]
	}

	if !star {
		if _, hit := c.sensitive[column]; hit {
			c.sensitiveHits[column] = struct{}{}
		}
	}

	if qualifier == "" {
		// unqualified columns are skipped for allowlist checks to avoid
		// false positives against derived names
		return
	}

	table, known := c.aliasToTable[qualifier]
	if !known {
		return
	}
	if _, cte := c.cteNames[table]; cte {
		return
	}

	if c.columnUsage[table] == nil {
		c.columnUsage[table] = map[string]struct{}{}
	}
	c.columnUsage[table][column] = struct{}{}

	if star || c.opts.ColumnMode == EnforcementOff {
		return
	}
	allowed, configured := c.columnAllow[table]
	if !configured {
		return
	}
	if _, ok := allowed[column]; !ok {
		c.allowlistHits[table+"."+column] = struct{}{}
	}
}

// finish emits the checks that are accumulated across the walk rather than
// reported at their site.
func (c *collector) finish() {
	for _, key := range sortedKeys(c.allowlistHits) {
		detail := map[string]any{"column": key}
		msg := fmt.Sprintf("column %q is not in the allowlist", key)
		if c.opts.ColumnMode == EnforcementBlock {
			c.res.addViolation(ViolationColumnAllowlist, msg, detail)
		} else {
			c.res.addWarning(ViolationColumnAllowlist, msg, detail)
		}
	}

	for _, col := range sortedKeys(c.sensitiveHits) {
		detail := map[string]any{"column": col}
		msg := fmt.Sprintf("column %q is on the sensitive column list", col)
		if c.opts.BlockSensitiveColumns {
			c.res.addViolation(ViolationSensitiveColumn, msg, detail)
		} else {
			c.res.addWarning(ViolationSensitiveColumn, msg, detail)
		}
	}

	for table, cols := range c.columnUsage {
		c.res.Metadata.ColumnUsage[table] = sortedKeys(cols)
	}
}

// nodeTypeName reports the concrete AST type held by a node wrapper.
func nodeTypeName(n *pg_query.Node) string {
	if n == nil || n.Node == nil {
		return ""
	}
	var name string
	n.ProtoReflect().Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		if fd.Kind() == protoreflect.MessageKind {
			name = string(v.Message().Descriptor().Name())
			return false
		}
		return true
	})
	return name
}
