// Package nodes defines the AST node types used to represent SQL expressions,
// with the extension FunctionNode and its argument coercion at the centre.
package nodes

// Node is anything a visitor can render: columns, literals, comparisons and
// function calls alike. A Node can be passed to NewFunction unchanged.
type Node interface {
	Accept(visitor Visitor) string
}

// Visitor renders each node kind. The dialect visitors differ mainly in
// VisitFunction, where each call is spelled for its engine.
type Visitor interface {
	VisitTable(node *Table) string
	VisitTableAlias(node *TableAlias) string
	VisitAttribute(node *Attribute) string
	VisitLiteral(node *LiteralNode) string
	VisitStar(node *StarNode) string
	VisitSqlLiteral(node *SqlLiteral) string
	VisitComparison(node *ComparisonNode) string
	VisitUnary(node *UnaryNode) string
	VisitAnd(node *AndNode) string
	VisitOr(node *OrNode) string
	VisitNot(node *NotNode) string
	VisitIn(node *InNode) string
	VisitBetween(node *BetweenNode) string
	VisitGrouping(node *GroupingNode) string
	VisitOrdering(node *OrderingNode) string
	VisitSelectCore(node *SelectCore) string
	VisitInfix(node *InfixNode) string
	VisitAggregate(node *AggregateNode) string
	VisitExtract(node *ExtractNode) string
	VisitNamedFunction(node *NamedFunctionNode) string
	VisitFunction(node *FunctionNode) string
	VisitAlias(node *AliasNode) string
	VisitBindParam(node *BindParamNode) string
	VisitCasted(node *CastedNode) string
	VisitQuoted(node *QuotedNode) string
}

// Parameterizer exposes the values a visitor bound while rendering, in
// placeholder order. Reset clears them before the next statement.
type Parameterizer interface {
	Params() []any
	Reset()
}

// Literal lifts a Go value into the tree; nodes pass through. Unlike
// Coerce it accepts any value, and rendering decides whether it is valid.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	return newLiteral(val)
}

func newLiteral(val any) *LiteralNode {
	lit := &LiteralNode{Value: val}
	lit.Predications.self = lit
	lit.Arithmetics.self = lit
	lit.Combinable.self = lit
	return lit
}
