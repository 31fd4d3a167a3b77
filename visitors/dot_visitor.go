package visitors

import (
	"fmt"
	"strings"

	"github.com/bawdo/sqlfn/nodes"
)

// Color constants for DOT node categories.
const (
	colorTable      = "#6CA6CD" // tables, select cores
	colorAttribute  = "#B0D4E8" // attributes, stars
	colorComparison = "#FFB347" // comparisons, predicates
	colorLogical    = "#FFEB80" // AND, OR, NOT, grouping
	colorLiteral    = "#D3D3D3" // literals, binds, coerced values
	colorOrdering   = "#CDA0E0"
	colorArithmetic = "#98FB98"
	colorFunction   = "#87CEEB" // aggregates, function calls
)

type dotNode struct {
	id    string
	label string
	color string
}

type dotEdge struct {
	from  string
	to    string
	label string
}

// DotVisitor walks an AST and produces Graphviz DOT output. Visit methods
// return the DOT id of the node they added; call ToDot for the graph.
type DotVisitor struct {
	nextID    int
	nodes     []dotNode
	edges     []dotEdge
	parentID  string
	edgeLabel string
}

var _ nodes.Visitor = (*DotVisitor)(nil)

func NewDotVisitor() *DotVisitor {
	return &DotVisitor{}
}

func (dv *DotVisitor) addNode(label, color string) string {
	id := fmt.Sprintf("n%d", dv.nextID)
	dv.nextID++
	dv.nodes = append(dv.nodes, dotNode{id: id, label: label, color: color})
	if dv.parentID != "" {
		dv.edges = append(dv.edges, dotEdge{from: dv.parentID, to: id, label: dv.edgeLabel})
	}
	return id
}

// visitChild visits child with parentID and label as its incoming edge.
func (dv *DotVisitor) visitChild(parentID, label string, child nodes.Node) {
	savedParent, savedLabel := dv.parentID, dv.edgeLabel
	dv.parentID, dv.edgeLabel = parentID, label
	child.Accept(dv)
	dv.parentID, dv.edgeLabel = savedParent, savedLabel
}

// visitChildList visits items as indexed children ("ARG[0]", "ARG[1]", ...).
func (dv *DotVisitor) visitChildList(parentID, prefix string, items []nodes.Node) {
	for i, item := range items {
		dv.visitChild(parentID, fmt.Sprintf("%s[%d]", prefix, i), item)
	}
}

// ToDot returns the accumulated graph.
func (dv *DotVisitor) ToDot() string {
	var sb strings.Builder
	sb.WriteString("digraph AST {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	for _, n := range dv.nodes {
		fmt.Fprintf(&sb, "  %s [label=\"%s\", fillcolor=\"%s\"];\n", n.id, escapeLabel(n.label), n.color)
	}
	for _, e := range dv.edges {
		if e.label != "" {
			fmt.Fprintf(&sb, "  %s -> %s [label=\"%s\"];\n", e.from, e.to, e.label)
		} else {
			fmt.Fprintf(&sb, "  %s -> %s;\n", e.from, e.to)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

// escapeLabel escapes double quotes. \n sequences are DOT line breaks and
// are kept.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

// --- Leaves ---

func (dv *DotVisitor) VisitTable(n *nodes.Table) string {
	return dv.addNode("Table\\n"+n.Name, colorTable)
}

func (dv *DotVisitor) VisitTableAlias(n *nodes.TableAlias) string {
	id := dv.addNode("TableAlias\\n"+n.AliasName, colorTable)
	dv.visitChild(id, "RELATION", n.Relation)
	return id
}

func (dv *DotVisitor) VisitAttribute(n *nodes.Attribute) string {
	label := "Attribute\\n"
	if q := nodes.RelationName(n.Relation); q != "" {
		label += q + "."
	}
	return dv.addNode(label+n.Name, colorAttribute)
}

func (dv *DotVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	return dv.addNode(fmt.Sprintf("Literal\\n%v", n.Value), colorLiteral)
}

func (dv *DotVisitor) VisitStar(n *nodes.StarNode) string {
	if n.Table != nil {
		return dv.addNode("Star\\n"+n.Table.Name+".*", colorAttribute)
	}
	return dv.addNode("Star\\n*", colorAttribute)
}

func (dv *DotVisitor) VisitSqlLiteral(n *nodes.SqlLiteral) string {
	return dv.addNode("SqlLiteral\\n"+n.Raw, colorLiteral)
}

func (dv *DotVisitor) VisitBindParam(n *nodes.BindParamNode) string {
	return dv.addNode(fmt.Sprintf("BindParam\\n%v", n.Value), colorLiteral)
}

func (dv *DotVisitor) VisitCasted(n *nodes.CastedNode) string {
	return dv.addNode(fmt.Sprintf("Casted\\n%v AS %s", n.Value, n.TypeName), colorLiteral)
}

// VisitQuoted names the context instead of walking it: the context of a
// function argument is the enclosing call.
func (dv *DotVisitor) VisitQuoted(n *nodes.QuotedNode) string {
	label := fmt.Sprintf("Quoted\\n%v", n.Value)
	switch c := n.Context.(type) {
	case nil:
	case *nodes.FunctionNode:
		label += "\\nin " + c.Name
	case *nodes.Attribute:
		label += "\\nfor " + c.Name
	default:
		label += fmt.Sprintf("\\nfor %T", c)
	}
	return dv.addNode(label, colorLiteral)
}

// --- Predicates and logic ---

func (dv *DotVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	id := dv.addNode("Comparison\\n"+comparisonOpSQL[n.Op], colorComparison)
	dv.visitChild(id, "LEFT", n.Left)
	dv.visitChild(id, "RIGHT", n.Right)
	return id
}

func (dv *DotVisitor) VisitUnary(n *nodes.UnaryNode) string {
	label := "Unary\\nIS NULL"
	if n.Op == nodes.OpIsNotNull {
		label = "Unary\\nIS NOT NULL"
	}
	id := dv.addNode(label, colorComparison)
	dv.visitChild(id, "EXPR", n.Expr)
	return id
}

func (dv *DotVisitor) VisitAnd(n *nodes.AndNode) string {
	id := dv.addNode("AND", colorLogical)
	dv.visitChild(id, "LEFT", n.Left)
	dv.visitChild(id, "RIGHT", n.Right)
	return id
}

func (dv *DotVisitor) VisitOr(n *nodes.OrNode) string {
	id := dv.addNode("OR", colorLogical)
	dv.visitChild(id, "LEFT", n.Left)
	dv.visitChild(id, "RIGHT", n.Right)
	return id
}

func (dv *DotVisitor) VisitNot(n *nodes.NotNode) string {
	id := dv.addNode("NOT", colorLogical)
	dv.visitChild(id, "EXPR", n.Expr)
	return id
}

func (dv *DotVisitor) VisitIn(n *nodes.InNode) string {
	label := "IN"
	if n.Negate {
		label = "NOT IN"
	}
	id := dv.addNode(label, colorComparison)
	dv.visitChild(id, "EXPR", n.Expr)
	dv.visitChildList(id, "VAL", n.Vals)
	return id
}

func (dv *DotVisitor) VisitBetween(n *nodes.BetweenNode) string {
	label := "BETWEEN"
	if n.Negate {
		label = "NOT BETWEEN"
	}
	id := dv.addNode(label, colorComparison)
	dv.visitChild(id, "EXPR", n.Expr)
	dv.visitChild(id, "LOW", n.Low)
	dv.visitChild(id, "HIGH", n.High)
	return id
}

func (dv *DotVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	id := dv.addNode("Grouping\\n( )", colorLogical)
	dv.visitChild(id, "EXPR", n.Expr)
	return id
}

func (dv *DotVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	dir := "ASC"
	if n.Direction == nodes.Desc {
		dir = "DESC"
	}
	switch n.Nulls {
	case nodes.NullsFirst:
		dir += "\\nNULLS FIRST"
	case nodes.NullsLast:
		dir += "\\nNULLS LAST"
	}
	id := dv.addNode("Order\\n"+dir, colorOrdering)
	dv.visitChild(id, "EXPR", n.Expr)
	return id
}

func (dv *DotVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	label := "SelectCore"
	if n.Distinct {
		label += "\\nDISTINCT"
	}
	id := dv.addNode(label, colorTable)
	if n.From != nil {
		dv.visitChild(id, "FROM", n.From)
	}
	dv.visitChildList(id, "SELECT", n.Projections)
	dv.visitChildList(id, "WHERE", n.Wheres)
	dv.visitChildList(id, "GROUP", n.Groups)
	dv.visitChildList(id, "HAVING", n.Havings)
	dv.visitChildList(id, "ORDER", n.Orders)
	if n.Limit != nil {
		dv.visitChild(id, "LIMIT", n.Limit)
	}
	if n.Offset != nil {
		dv.visitChild(id, "OFFSET", n.Offset)
	}
	return id
}

// --- Expressions ---

func (dv *DotVisitor) VisitInfix(n *nodes.InfixNode) string {
	id := dv.addNode("Infix\\n"+infixOpSQL[n.Op], colorArithmetic)
	dv.visitChild(id, "LEFT", n.Left)
	dv.visitChild(id, "RIGHT", n.Right)
	return id
}

func (dv *DotVisitor) VisitAggregate(n *nodes.AggregateNode) string {
	label := aggregateFuncSQL[n.Func]
	if n.Distinct {
		label += "\\nDISTINCT"
	}
	id := dv.addNode(label, colorFunction)
	if n.Expr != nil {
		dv.visitChild(id, "EXPR", n.Expr)
	} else {
		dv.visitChild(id, "EXPR", nodes.Star())
	}
	if n.Filter != nil {
		dv.visitChild(id, "FILTER", n.Filter)
	}
	return id
}

func (dv *DotVisitor) VisitExtract(n *nodes.ExtractNode) string {
	id := dv.addNode("EXTRACT\\n"+extractFieldSQL[n.Field], colorFunction)
	dv.visitChild(id, "FROM", n.Expr)
	return id
}

func (dv *DotVisitor) VisitNamedFunction(n *nodes.NamedFunctionNode) string {
	label := n.Name
	if n.Distinct {
		label += "\\nDISTINCT"
	}
	id := dv.addNode(label, colorFunction)
	dv.visitChildList(id, "ARG", n.Args)
	return id
}

func (dv *DotVisitor) VisitFunction(n *nodes.FunctionNode) string {
	id := dv.addNode("Function\\n"+n.Name, colorFunction)
	dv.visitChildList(id, "ARG", n.Args)
	return id
}

func (dv *DotVisitor) VisitAlias(n *nodes.AliasNode) string {
	label := "Alias\\n" + n.Name
	if n.Raw {
		label += "\\n(raw)"
	}
	id := dv.addNode(label, colorAttribute)
	dv.visitChild(id, "EXPR", n.Expr)
	return id
}
