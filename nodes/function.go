package nodes

import "fmt"

// FunctionNode is a SQL function call whose arguments were coerced from Go
// values. Every element of Args is a Node; raw values never reach visitors.
// It composes like any other expression through its embedded capabilities.
type FunctionNode struct {
	Predications
	Arithmetics
	Combinable
	Expressions
	Name string
	Args []Node
}

func (n *FunctionNode) Accept(v Visitor) string { return v.VisitFunction(n) }

func newFunctionNode(name string) *FunctionNode {
	n := &FunctionNode{Name: name}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	n.Expressions.self = n
	return n
}

// NewFunction builds name(args...) coercing each argument. It fails with an
// *UnsupportedArgumentTypeError if any argument has an unsupported type.
func NewFunction(name string, args ...any) (*FunctionNode, error) {
	n := newFunctionNode(name)
	if err := n.Append(args...); err != nil {
		return nil, err
	}
	return n, nil
}

// NewFunctionArgs builds name(args...) from already classified arguments.
// Args made with Int, Text, On and the other variant literals are always
// valid; a zero NodeArg, a nil node or an IntArg holding a non-integer
// panics with the *UnsupportedArgumentTypeError Coerce would return.
func NewFunctionArgs(name string, args ...Arg) *FunctionNode {
	n := newFunctionNode(name)
	n.Args = make([]Node, 0, len(args))
	for i, a := range args {
		if err := checkArg(a); err != nil {
			panic(fmt.Errorf("%s argument %d: %w", name, i+1, err))
		}
		n.Args = append(n.Args, Resolve(a, n))
	}
	return n
}

// Must returns n or panics with err. It is meant for function calls built
// from constants, e.g. nodes.Must(nodes.Concat(col, " suffix")).
func Must(n *FunctionNode, err error) *FunctionNode {
	if err != nil {
		panic(err)
	}
	return n
}

// Append coerces vals and appends them to Args. Args is left untouched
// unless every value coerces.
func (n *FunctionNode) Append(vals ...any) error {
	coerced := make([]Node, len(vals))
	for i, v := range vals {
		c, err := CoerceArg(v, n)
		if err != nil {
			return fmt.Errorf("%s argument %d: %w", n.Name, len(n.Args)+i+1, err)
		}
		coerced[i] = c
	}
	n.Args = append(n.Args, coerced...)
	return nil
}

// Expr returns the first argument, the operand of unary-like functions.
func (n *FunctionNode) Expr() (Node, error) {
	if len(n.Args) == 0 {
		return nil, fmt.Errorf("%s: %w", n.Name, ErrNoArguments)
	}
	return n.Args[0], nil
}

// Left is Expr under the name binary-shaped callers use.
func (n *FunctionNode) Left() (Node, error) {
	return n.Expr()
}

// Right is also the first argument. Function calls have no second operand
// slot, so Left and Right name the same node.
func (n *FunctionNode) Right() (Node, error) {
	return n.Expr()
}

// As aliases the call with name rendered verbatim, unquoted.
func (n *FunctionNode) As(name string) *AliasNode {
	return NewRawAlias(n, name)
}
