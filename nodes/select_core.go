package nodes

// SelectCore holds the clauses of a SELECT statement.
// The fluent API for building queries lives in the managers package.
type SelectCore struct {
	From        Node
	Projections []Node
	Wheres      []Node
	Groups      []Node
	Havings     []Node
	Orders      []Node
	Limit       Node // nil or LiteralNode
	Offset      Node // nil or LiteralNode
	Distinct    bool
}

func (n *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(n) }
