package visitors

import (
	"strings"

	"github.com/bawdo/sqlfn/nodes"
)

// variadic marks a dialectFunc that accepts one or more arguments.
const variadic = -1

// dialectFunc is a dialect spelling of a FunctionNode name. It is used only
// when the call has exactly arity arguments; otherwise the call falls back
// to the generic NAME(args...) form.
type dialectFunc struct {
	arity  int
	render func(c funcCall) string
}

// funcCall renders the arguments of one function call on demand. Arguments
// must be rendered in the order they appear in the output so that
// positional placeholders line up with the collected params.
type funcCall struct {
	args  []nodes.Node
	visit nodes.Visitor
}

func (f dialectFunc) accepts(n int) bool {
	if f.arity == variadic {
		return n > 0
	}
	return f.arity == n
}

func (c funcCall) arg(i int) string {
	return c.args[i].Accept(c.visit)
}

func (c funcCall) list(sep string) string {
	parts := make([]string, len(c.args))
	for i := range c.args {
		parts[i] = c.arg(i)
	}
	return strings.Join(parts, sep)
}

func (b *baseVisitor) VisitFunction(n *nodes.FunctionNode) string {
	validateSQLFunctionName(n.Name)
	c := funcCall{args: n.Args, visit: b.outer}
	if f, ok := b.functions[strings.ToUpper(n.Name)]; ok && f.accepts(len(n.Args)) {
		return f.render(c)
	}
	return n.Name + "(" + c.list(", ") + ")"
}

// postgresFunctions are the PostgreSQL spellings of the extension functions.
var postgresFunctions = map[string]dialectFunc{
	nodes.FuncLocate: {arity: 2, render: func(c funcCall) string {
		// POSITION takes its operands in the opposite order.
		sub := c.arg(1)
		return "POSITION(" + sub + " IN " + c.arg(0) + ")"
	}},
	nodes.FuncIfNull: {arity: 2, render: func(c funcCall) string {
		return "COALESCE(" + c.list(", ") + ")"
	}},
	nodes.FuncDateDiff: {arity: 2, render: func(c funcCall) string {
		return "(CAST(" + c.arg(0) + " AS DATE) - CAST(" + c.arg(1) + " AS DATE))"
	}},
}

// mysqlFunctions are the MySQL spellings of the extension functions.
var mysqlFunctions = map[string]dialectFunc{
	nodes.FuncLength: {arity: 1, render: func(c funcCall) string {
		return "CHAR_LENGTH(" + c.arg(0) + ")"
	}},
	nodes.FuncLocate: {arity: 2, render: func(c funcCall) string {
		sub := c.arg(1)
		return "LOCATE(" + sub + ", " + c.arg(0) + ")"
	}},
}

// sqliteFunctions are the SQLite spellings of the extension functions.
var sqliteFunctions = map[string]dialectFunc{
	nodes.FuncConcat: {arity: variadic, render: func(c funcCall) string {
		return "(" + c.list(" || ") + ")"
	}},
	nodes.FuncLocate: {arity: 2, render: func(c funcCall) string {
		return "INSTR(" + c.list(", ") + ")"
	}},
	nodes.FuncDateDiff: {arity: 2, render: func(c funcCall) string {
		return "CAST((julianday(" + c.arg(0) + ") - julianday(" + c.arg(1) + ")) AS INTEGER)"
	}},
	nodes.FuncNow: {arity: 0, render: func(c funcCall) string {
		return "CURRENT_TIMESTAMP"
	}},
}
