package visitors

import (
	"strconv"

	"github.com/bawdo/sqlfn/internal/quoting"
	"github.com/bawdo/sqlfn/nodes"
)

// PostgresVisitor generates PostgreSQL-dialect SQL.
// Identifiers are quoted with double quotes: "table"."column".
type PostgresVisitor struct {
	*baseVisitor
}

// NewPostgresVisitor creates a PostgresVisitor ready for use.
// Parameterized mode ($1, $2, ...) is enabled by default.
func NewPostgresVisitor(opts ...Option) *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = newBaseVisitor(v, quoting.DoubleQuote,
		func(i int) string { return "$" + strconv.Itoa(i) }, postgresFunctions)
	v.applyOptions(opts)
	return v
}

// VisitQuoted renders dates coerced for a function call as typed date
// values. Bound strings are cast to text: PostgreSQL cannot infer a type
// for an untyped parameter passed to a variadic function such as CONCAT.
func (v *PostgresVisitor) VisitQuoted(n *nodes.QuotedNode) string {
	if isContextDate(n) {
		if v.parameterize {
			return v.bind(n.Value) + "::date"
		}
		return "DATE " + v.literalToSQL(n.Value)
	}
	if _, ok := n.Value.(string); ok && v.parameterize {
		return v.bind(n.Value) + "::text"
	}
	return v.baseVisitor.VisitQuoted(n)
}

func isContextDate(n *nodes.QuotedNode) bool {
	_, ok := n.Value.(nodes.Date)
	return ok && n.Context != nil
}
