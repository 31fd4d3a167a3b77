package nodes

// AndNode represents a logical AND between two expressions.
type AndNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *AndNode) Accept(v Visitor) string { return v.VisitAnd(n) }

// OrNode represents a logical OR between two expressions.
type OrNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *OrNode) Accept(v Visitor) string { return v.VisitOr(n) }

// NotNode represents a logical NOT of an expression.
type NotNode struct {
	Combinable
	Expr Node
}

func (n *NotNode) Accept(v Visitor) string { return v.VisitNot(n) }

// GroupingNode wraps an expression in parentheses for precedence control.
type GroupingNode struct {
	Combinable
	Expr Node
}

func (n *GroupingNode) Accept(v Visitor) string { return v.VisitGrouping(n) }

// UnaryOp represents a unary postfix operator.
type UnaryOp int

const (
	OpIsNull UnaryOp = iota
	OpIsNotNull
)

// UnaryNode represents Expr IS NULL / IS NOT NULL.
type UnaryNode struct {
	Combinable
	Expr Node
	Op   UnaryOp
}

func (n *UnaryNode) Accept(v Visitor) string { return v.VisitUnary(n) }

// NewAnd joins left and right with AND.
func NewAnd(left, right Node) *AndNode {
	n := &AndNode{Left: left, Right: right}
	n.self = n
	return n
}

// NewOr joins left and right with OR.
func NewOr(left, right Node) *OrNode {
	n := &OrNode{Left: left, Right: right}
	n.self = n
	return n
}

// NewNot negates expr.
func NewNot(expr Node) *NotNode {
	n := &NotNode{Expr: expr}
	n.self = n
	return n
}

// NewGrouping parenthesises expr.
func NewGrouping(expr Node) *GroupingNode {
	n := &GroupingNode{Expr: expr}
	n.self = n
	return n
}

// Combinable provides logical chaining methods to types that embed it.
// The self field must be set to the embedding node.
type Combinable struct {
	self Node
}

// And creates an AndNode combining self with other.
func (c Combinable) And(other Node) *AndNode { return NewAnd(c.self, other) }

// Or creates an OrNode grouped in parentheses so it keeps its precedence
// when chained with AND.
func (c Combinable) Or(other Node) *GroupingNode { return NewGrouping(NewOr(c.self, other)) }

// Not creates a NotNode negating self.
func (c Combinable) Not() *NotNode { return NewNot(c.self) }
