// Package managers wraps function calls and the columns they read in a
// SELECT statement and renders it, turning render panics into errors.
package managers

import (
	"github.com/bawdo/sqlfn/nodes"
)

// SelectManager assembles a SELECT around function calls. Each method
// edits Core in place and returns the manager for chaining.
type SelectManager struct {
	Core *nodes.SelectCore
}

// NewSelectManager starts a query reading from from. A nil from gives a
// FROM-less SELECT, which is enough to evaluate a call such as NOW().
func NewSelectManager(from nodes.Node) *SelectManager {
	return &SelectManager{
		Core: &nodes.SelectCore{From: from},
	}
}

// Select replaces the projections. Aliased calls (fn.As("x")) render with
// their alias verbatim.
func (m *SelectManager) Select(projections ...nodes.Node) *SelectManager {
	m.Core.Projections = projections
	return m
}

// Project is Select.
func (m *SelectManager) Project(projections ...nodes.Node) *SelectManager {
	return m.Select(projections...)
}

// Distinct turns DISTINCT on, or sets it to on[0] when given.
func (m *SelectManager) Distinct(on ...bool) *SelectManager {
	m.Core.Distinct = len(on) == 0 || on[0]
	return m
}

// Where appends conditions, typically comparisons on a call such as
// LOCATE(email, '@') > 0. All conditions are ANDed.
func (m *SelectManager) Where(conditions ...nodes.Node) *SelectManager {
	m.Core.Wheres = append(m.Core.Wheres, conditions...)
	return m
}

// From replaces the FROM source.
func (m *SelectManager) From(table nodes.Node) *SelectManager {
	m.Core.From = table
	return m
}

// Group appends GROUP BY keys; a call can group as well as a column.
func (m *SelectManager) Group(columns ...nodes.Node) *SelectManager {
	m.Core.Groups = append(m.Core.Groups, columns...)
	return m
}

// Having appends ANDed HAVING conditions.
func (m *SelectManager) Having(conditions ...nodes.Node) *SelectManager {
	m.Core.Havings = append(m.Core.Havings, conditions...)
	return m
}

// Order appends orderings such as nodes.Must(nodes.Length(col)).Desc().
func (m *SelectManager) Order(orderings ...nodes.Node) *SelectManager {
	m.Core.Orders = append(m.Core.Orders, orderings...)
	return m
}

// Limit bounds the row count. The value is bound like any other literal.
func (m *SelectManager) Limit(n int) *SelectManager {
	m.Core.Limit = nodes.Literal(n)
	return m
}

// Take is Limit.
func (m *SelectManager) Take(n int) *SelectManager {
	return m.Limit(n)
}

// Offset skips n rows.
func (m *SelectManager) Offset(n int) *SelectManager {
	m.Core.Offset = nodes.Literal(n)
	return m
}

// ToSQL renders the query with v. Params are the values v bound, in
// placeholder order. A call whose name is not a plain SQL identifier, or a
// cast to a malformed type, fails here rather than reaching the database.
func (m *SelectManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, m.Core)
}

// Accept lets the query appear as a function argument or subquery.
func (m *SelectManager) Accept(v nodes.Visitor) string {
	return m.Core.Accept(v)
}

// As names the query so its columns can be referenced from outside.
func (m *SelectManager) As(name string) *nodes.TableAlias {
	return &nodes.TableAlias{Relation: m.Core, AliasName: name}
}
