package nodes

// CastedNode represents a typed value that knows its SQL type.
// Used for type-aware rendering (e.g., ensuring correct casting).
type CastedNode struct {
	Predications
	Arithmetics
	Combinable
	Value    any
	TypeName string
}

func (n *CastedNode) Accept(v Visitor) string { return v.VisitCasted(n) }

// NewCasted creates a CastedNode with properly initialised embedded structs.
func NewCasted(value any, typeName string) *CastedNode {
	n := &CastedNode{Value: value, TypeName: typeName}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// QuotedNode is a literal leaf rendered through the dialect's quoting rules.
// Context is the node the value was coerced for (typically the owning
// FunctionNode); visitors use it to choose typed literal syntax. A nil
// Context means default quoting.
type QuotedNode struct {
	Predications
	Arithmetics
	Combinable
	Value   any
	Context Node
}

func (n *QuotedNode) Accept(v Visitor) string { return v.VisitQuoted(n) }

// NewQuoted creates a QuotedNode with properly initialised embedded structs.
func NewQuoted(value any, context Node) *QuotedNode {
	n := &QuotedNode{Value: value, Context: context}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// BuildQuoted turns value into a leaf for use next to context.
// Nodes pass through. A typed Attribute context yields a CastedNode so the
// value is cast to the column type; any other context yields a QuotedNode.
func BuildQuoted(value any, context Node) Node {
	if n, ok := value.(Node); ok {
		return n
	}
	if attr, ok := context.(*Attribute); ok && attr.TypeName != "" {
		return NewCasted(value, attr.TypeName)
	}
	return NewQuoted(value, context)
}
