package visitors

import (
	"github.com/bawdo/sqlfn/internal/quoting"
	"github.com/bawdo/sqlfn/nodes"
)

// MySQLVisitor generates MySQL-dialect SQL.
// Identifiers are quoted with backticks: `table`.`column`.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor creates a MySQLVisitor ready for use.
// Parameterized mode (?) is enabled by default.
func NewMySQLVisitor(opts ...Option) *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = newBaseVisitor(v, quoting.Backtick,
		func(_ int) string { return "?" }, mysqlFunctions)
	v.applyOptions(opts)
	return v
}

// VisitInfix renders || as CONCAT, since MySQL treats || as logical OR
// unless PIPES_AS_CONCAT is set.
func (v *MySQLVisitor) VisitInfix(n *nodes.InfixNode) string {
	if n.Op != nodes.OpConcat {
		return v.baseVisitor.VisitInfix(n)
	}
	left := n.Left.Accept(v)
	return "CONCAT(" + left + ", " + n.Right.Accept(v) + ")"
}

// VisitQuoted prefixes literal dates coerced for a function call with the
// DATE keyword. Bound dates are left to the server.
func (v *MySQLVisitor) VisitQuoted(n *nodes.QuotedNode) string {
	if isContextDate(n) && !v.parameterize {
		return "DATE " + v.literalToSQL(n.Value)
	}
	return v.baseVisitor.VisitQuoted(n)
}
