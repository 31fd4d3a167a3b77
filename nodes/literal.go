package nodes

// LiteralNode wraps a raw Go value (string, integer, float, bool, Date, ...)
// as an AST leaf. Integer function arguments are carried this way verbatim.
type LiteralNode struct {
	Predications
	Arithmetics
	Combinable
	Value any
}

func (n *LiteralNode) Accept(v Visitor) string { return v.VisitLiteral(n) }

// StarNode represents a SQL star (*) or qualified star (table.*).
type StarNode struct {
	Table *Table // nil for unqualified *
}

func (n *StarNode) Accept(v Visitor) string { return v.VisitStar(n) }

// Star returns an unqualified StarNode representing SQL *.
func Star() *StarNode {
	return &StarNode{}
}

// SqlLiteral is a raw SQL fragment injected verbatim into the query.
//
// SECURITY: Raw is never escaped or parameterized. Never build one from
// user-controlled input.
type SqlLiteral struct {
	Predications
	Combinable
	Raw   string
	Binds []any // bound in parameterized mode
}

func NewSqlLiteral(raw string) *SqlLiteral {
	n := &SqlLiteral{Raw: raw}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

func (n *SqlLiteral) Accept(v Visitor) string { return v.VisitSqlLiteral(n) }

// NewBoundSqlLiteral creates a SqlLiteral whose binds are emitted as
// parameters in parameterized mode. The raw text is still verbatim.
func NewBoundSqlLiteral(raw string, binds ...any) *SqlLiteral {
	n := NewSqlLiteral(raw)
	n.Binds = binds
	return n
}

// BindParamNode is an explicit bind parameter placeholder.
type BindParamNode struct {
	Value any
}

func (n *BindParamNode) Accept(v Visitor) string { return v.VisitBindParam(n) }

func NewBindParam(value any) *BindParamNode {
	return &BindParamNode{Value: value}
}
