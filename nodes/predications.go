package nodes

// Predications provides comparison methods to types that embed it.
// The self field must be set to the embedding node so that comparisons
// reference the correct left-hand side. Right-hand values go through
// Literal, so Nodes are used as-is.
type Predications struct {
	self Node
}

func (p Predications) compare(op ComparisonOp, val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), op)
}

func (p Predications) Eq(val any) *ComparisonNode      { return p.compare(OpEq, val) }
func (p Predications) NotEq(val any) *ComparisonNode   { return p.compare(OpNotEq, val) }
func (p Predications) Gt(val any) *ComparisonNode      { return p.compare(OpGt, val) }
func (p Predications) GtEq(val any) *ComparisonNode    { return p.compare(OpGtEq, val) }
func (p Predications) Lt(val any) *ComparisonNode      { return p.compare(OpLt, val) }
func (p Predications) LtEq(val any) *ComparisonNode    { return p.compare(OpLtEq, val) }
func (p Predications) Like(val any) *ComparisonNode    { return p.compare(OpLike, val) }
func (p Predications) NotLike(val any) *ComparisonNode { return p.compare(OpNotLike, val) }

// In creates self IN (vals...).
func (p Predications) In(vals ...any) *InNode {
	n := &InNode{Expr: p.self, Vals: literals(vals)}
	n.self = n
	return n
}

// NotIn creates self NOT IN (vals...).
func (p Predications) NotIn(vals ...any) *InNode {
	n := p.In(vals...)
	n.Negate = true
	return n
}

// Between creates self BETWEEN low AND high.
func (p Predications) Between(low, high any) *BetweenNode {
	n := &BetweenNode{Expr: p.self, Low: Literal(low), High: Literal(high)}
	n.self = n
	return n
}

// NotBetween creates self NOT BETWEEN low AND high.
func (p Predications) NotBetween(low, high any) *BetweenNode {
	n := p.Between(low, high)
	n.Negate = true
	return n
}

// IsNull creates self IS NULL.
func (p Predications) IsNull() *UnaryNode {
	n := &UnaryNode{Expr: p.self, Op: OpIsNull}
	n.self = n
	return n
}

// IsNotNull creates self IS NOT NULL.
func (p Predications) IsNotNull() *UnaryNode {
	n := &UnaryNode{Expr: p.self, Op: OpIsNotNull}
	n.self = n
	return n
}

// As creates an AliasNode whose name is quoted as an identifier.
func (p Predications) As(name string) *AliasNode {
	return NewAliasNode(p.self, name)
}

func (p Predications) Asc() *OrderingNode  { return &OrderingNode{Expr: p.self, Direction: Asc} }
func (p Predications) Desc() *OrderingNode { return &OrderingNode{Expr: p.self, Direction: Desc} }

func literals(vals []any) []Node {
	out := make([]Node, len(vals))
	for i, v := range vals {
		out[i] = Literal(v)
	}
	return out
}
