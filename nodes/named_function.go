package nodes

// NamedFunctionNode is a function call over nodes the caller already built,
// rendered the same way on every dialect. See FunctionNode for calls that
// take Go values and dialect-specific spellings.
type NamedFunctionNode struct {
	Predications
	Arithmetics
	Combinable
	Name     string
	Args     []Node
	Distinct bool
}

func (n *NamedFunctionNode) Accept(v Visitor) string { return v.VisitNamedFunction(n) }

// NewNamedFunction creates a NamedFunctionNode with properly initialised embedded structs.
func NewNamedFunction(name string, args ...Node) *NamedFunctionNode {
	n := &NamedFunctionNode{Name: name, Args: args}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

func Coalesce(args ...Node) *NamedFunctionNode { return NewNamedFunction("COALESCE", args...) }
func Lower(expr Node) *NamedFunctionNode       { return NewNamedFunction("LOWER", expr) }
func Upper(expr Node) *NamedFunctionNode       { return NewNamedFunction("UPPER", expr) }

// Cast creates CAST(expr AS typeName). The type name renders verbatim.
func Cast(expr Node, typeName string) *NamedFunctionNode {
	return NewNamedFunction("CAST", expr, NewSqlLiteral(typeName))
}
