package tenant

import (
	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// Raw AST constructors for the injected predicates. Building nodes instead of
// splicing strings keeps the rewrite deterministic under deparse and immune
// to quoting problems.

func stringNode(s string) *pg_query.Node {
	return &pg_query.Node{Node: &pg_query.Node_String_{String_: &pg_query.String{Sval: s}}}
}

func columnRefNode(qualifier, column string) *pg_query.Node {
	fields := []*pg_query.Node{}
	if qualifier != "" {
		fields = append(fields, stringNode(qualifier))
	}
	fields = append(fields, stringNode(column))
	return &pg_query.Node{Node: &pg_query.Node_ColumnRef{ColumnRef: &pg_query.ColumnRef{Fields: fields}}}
}

func paramRefNode(number int32) *pg_query.Node {
	return &pg_query.Node{Node: &pg_query.Node_ParamRef{ParamRef: &pg_query.ParamRef{Number: number}}}
}

// tenantPredicateNode builds `qualifier.column = $number`
func tenantPredicateNode(qualifier, column string, number int32) *pg_query.Node {
	return &pg_query.Node{Node: &pg_query.Node_AExpr{AExpr: &pg_query.A_Expr{
		Kind:  pg_query.A_Expr_Kind_AEXPR_OP,
		Name:  []*pg_query.Node{stringNode("=")},
		Lexpr: columnRefNode(qualifier, column),
		Rexpr: paramRefNode(number),
	}}}
}

// andNode conjoins two boolean expressions. When lhs is already an AND it is
// extended in place so repeated injection keeps a flat argument list.
func andNode(lhs, rhs *pg_query.Node) *pg_query.Node {
	if lhs == nil {
		return rhs
	}
	if be := lhs.GetBoolExpr(); be != nil && be.Boolop == pg_query.BoolExprType_AND_EXPR {
		be.Args = append(be.Args, rhs)
		return lhs
	}
	return &pg_query.Node{Node: &pg_query.Node_BoolExpr{BoolExpr: &pg_query.BoolExpr{
		Boolop: pg_query.BoolExprType_AND_EXPR,
		Args:   []*pg_query.Node{lhs, rhs},
	}}}
}
