package nodes

// InfixOp identifies the binary math or concat operator.
type InfixOp int

const (
	OpPlus InfixOp = iota
	OpMinus
	OpMultiply
	OpDivide
	OpConcat
)

// InfixNode represents Left Op Right for math and string concatenation.
type InfixNode struct {
	Predications
	Arithmetics
	Combinable
	Left  Node
	Right Node
	Op    InfixOp
}

func (n *InfixNode) Accept(v Visitor) string { return v.VisitInfix(n) }

// NewInfixNode creates an InfixNode with properly initialised embedded structs.
func NewInfixNode(left, right Node, op InfixOp) *InfixNode {
	n := &InfixNode{Left: left, Right: right, Op: op}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// Arithmetics provides math methods to types that embed it.
// The self field must be set to the embedding node.
type Arithmetics struct {
	self Node
}

func (a Arithmetics) infix(op InfixOp, val any) *InfixNode {
	return NewInfixNode(a.self, Literal(val), op)
}

func (a Arithmetics) Plus(val any) *InfixNode     { return a.infix(OpPlus, val) }
func (a Arithmetics) Minus(val any) *InfixNode    { return a.infix(OpMinus, val) }
func (a Arithmetics) Multiply(val any) *InfixNode { return a.infix(OpMultiply, val) }
func (a Arithmetics) Divide(val any) *InfixNode   { return a.infix(OpDivide, val) }
func (a Arithmetics) Concat(val any) *InfixNode   { return a.infix(OpConcat, val) }
