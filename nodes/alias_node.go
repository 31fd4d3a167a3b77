package nodes

// AliasNode represents an expression alias: expr AS "name".
// When Raw is set the name is emitted verbatim, without quoting.
type AliasNode struct {
	Predications
	Arithmetics
	Combinable
	Expr Node
	Name string
	Raw  bool
}

func (n *AliasNode) Accept(v Visitor) string { return v.VisitAlias(n) }

// NewAliasNode creates an AliasNode whose name is quoted as an identifier.
func NewAliasNode(expr Node, name string) *AliasNode {
	n := &AliasNode{Expr: expr, Name: name}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// NewRawAlias creates an AliasNode whose name is passed through untouched.
//
// SECURITY: like SqlLiteral, the name is not escaped. Never pass
// user-controlled input.
func NewRawAlias(expr Node, name string) *AliasNode {
	n := NewAliasNode(expr, name)
	n.Raw = true
	return n
}
