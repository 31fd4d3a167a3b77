package visitors

import (
	"strings"

	"github.com/bawdo/sqlfn/nodes"
)

// FormattingVisitor wraps a dialect visitor and lays a SELECT out one
// clause per line. Every other node is rendered by the wrapped visitor, so
// function spellings, quoting and placeholders are unchanged.
type FormattingVisitor struct {
	inner nodes.Visitor
}

var _ nodes.Visitor = (*FormattingVisitor)(nil)
var _ nodes.Parameterizer = (*FormattingVisitor)(nil)

// NewFormattingVisitor wraps inner.
func NewFormattingVisitor(inner nodes.Visitor) *FormattingVisitor {
	if inner == nil {
		panic("sqlfn: FormattingVisitor requires a non-nil inner visitor")
	}
	return &FormattingVisitor{inner: inner}
}

// Params returns the inner visitor's params, or nil when it does not bind.
func (f *FormattingVisitor) Params() []any {
	if p, ok := f.inner.(nodes.Parameterizer); ok {
		return p.Params()
	}
	return nil
}

func (f *FormattingVisitor) Reset() {
	if p, ok := f.inner.(nodes.Parameterizer); ok {
		p.Reset()
	}
}

func (f *FormattingVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	var sb strings.Builder
	sb.WriteString("SELECT")
	if n.Distinct {
		sb.WriteString(" DISTINCT")
	}
	if len(n.Projections) == 0 {
		sb.WriteString(" *")
	} else {
		// Leading-comma style.
		f.writeList(&sb, " ", n.Projections, "\n\t,")
	}
	if n.From != nil {
		sb.WriteString("\nFROM ")
		sb.WriteString(n.From.Accept(f.inner))
	}
	f.writeList(&sb, "\nWHERE ", n.Wheres, "\n\tAND ")
	f.writeList(&sb, "\nGROUP BY ", n.Groups, "\n\t,")
	f.writeList(&sb, "\nHAVING ", n.Havings, "\n\tAND ")
	f.writeList(&sb, "\nORDER BY ", n.Orders, "\n\t,")
	if n.Limit != nil {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(n.Limit.Accept(f.inner))
	}
	if n.Offset != nil {
		sb.WriteString("\nOFFSET ")
		sb.WriteString(n.Offset.Accept(f.inner))
	}
	return sb.String()
}

func (f *FormattingVisitor) writeList(sb *strings.Builder, keyword string, items []nodes.Node, sep string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(keyword)
	for i, it := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(it.Accept(f.inner))
	}
}

// --- Delegation ---

func (f *FormattingVisitor) VisitTable(n *nodes.Table) string           { return f.inner.VisitTable(n) }
func (f *FormattingVisitor) VisitTableAlias(n *nodes.TableAlias) string { return f.inner.VisitTableAlias(n) }
func (f *FormattingVisitor) VisitAttribute(n *nodes.Attribute) string   { return f.inner.VisitAttribute(n) }
func (f *FormattingVisitor) VisitLiteral(n *nodes.LiteralNode) string   { return f.inner.VisitLiteral(n) }
func (f *FormattingVisitor) VisitStar(n *nodes.StarNode) string         { return f.inner.VisitStar(n) }
func (f *FormattingVisitor) VisitSqlLiteral(n *nodes.SqlLiteral) string { return f.inner.VisitSqlLiteral(n) }
func (f *FormattingVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	return f.inner.VisitComparison(n)
}
func (f *FormattingVisitor) VisitUnary(n *nodes.UnaryNode) string       { return f.inner.VisitUnary(n) }
func (f *FormattingVisitor) VisitAnd(n *nodes.AndNode) string           { return f.inner.VisitAnd(n) }
func (f *FormattingVisitor) VisitOr(n *nodes.OrNode) string             { return f.inner.VisitOr(n) }
func (f *FormattingVisitor) VisitNot(n *nodes.NotNode) string           { return f.inner.VisitNot(n) }
func (f *FormattingVisitor) VisitIn(n *nodes.InNode) string             { return f.inner.VisitIn(n) }
func (f *FormattingVisitor) VisitBetween(n *nodes.BetweenNode) string   { return f.inner.VisitBetween(n) }
func (f *FormattingVisitor) VisitGrouping(n *nodes.GroupingNode) string { return f.inner.VisitGrouping(n) }
func (f *FormattingVisitor) VisitOrdering(n *nodes.OrderingNode) string { return f.inner.VisitOrdering(n) }
func (f *FormattingVisitor) VisitInfix(n *nodes.InfixNode) string       { return f.inner.VisitInfix(n) }
func (f *FormattingVisitor) VisitAggregate(n *nodes.AggregateNode) string {
	return f.inner.VisitAggregate(n)
}
func (f *FormattingVisitor) VisitExtract(n *nodes.ExtractNode) string { return f.inner.VisitExtract(n) }
func (f *FormattingVisitor) VisitNamedFunction(n *nodes.NamedFunctionNode) string {
	return f.inner.VisitNamedFunction(n)
}
func (f *FormattingVisitor) VisitFunction(n *nodes.FunctionNode) string   { return f.inner.VisitFunction(n) }
func (f *FormattingVisitor) VisitAlias(n *nodes.AliasNode) string         { return f.inner.VisitAlias(n) }
func (f *FormattingVisitor) VisitBindParam(n *nodes.BindParamNode) string { return f.inner.VisitBindParam(n) }
func (f *FormattingVisitor) VisitCasted(n *nodes.CastedNode) string       { return f.inner.VisitCasted(n) }
func (f *FormattingVisitor) VisitQuoted(n *nodes.QuotedNode) string       { return f.inner.VisitQuoted(n) }
