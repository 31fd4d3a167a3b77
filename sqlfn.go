// Package sqlfn builds SQL expressions around function calls whose
// arguments are plain Go values.
//
// This package re-exports the commonly used types and constructors.
// Advanced users can import the subpackages directly:
//   - github.com/bawdo/sqlfn/nodes (AST nodes, argument coercion)
//   - github.com/bawdo/sqlfn/managers (query builders)
//   - github.com/bawdo/sqlfn/visitors (SQL generation)
package sqlfn

import (
	"time"

	"github.com/bawdo/sqlfn/managers"
	"github.com/bawdo/sqlfn/nodes"
	"github.com/bawdo/sqlfn/visitors"
)

// --- Core types ---

type (
	Node          = nodes.Node
	Table         = nodes.Table
	Attribute     = nodes.Attribute
	Function      = nodes.FunctionNode
	Arg           = nodes.Arg
	Date          = nodes.Date
	SelectManager = managers.SelectManager
)

// ErrUnsupportedArgumentType matches every argument coercion failure.
var ErrUnsupportedArgumentType = nodes.ErrUnsupportedArgumentType

// NewTable creates a new table reference.
func NewTable(name string) *nodes.Table {
	return nodes.NewTable(name)
}

// NewSelect creates a new SelectManager with the given table as FROM.
func NewSelect(from nodes.Node) *managers.SelectManager {
	return managers.NewSelectManager(from)
}

// Literal wraps a Go value as a literal node.
func Literal(value any) nodes.Node {
	return nodes.Literal(value)
}

// NewDate returns a calendar date.
func NewDate(year int, month time.Month, day int) nodes.Date {
	return nodes.NewDate(year, month, day)
}

// --- Functions ---

// Func builds name(args...), coercing each Go value to an argument node.
func Func(name string, args ...any) (*nodes.FunctionNode, error) {
	return nodes.NewFunction(name, args...)
}

// Coerce converts a single Go value into the node a function call embeds.
func Coerce(value any) (nodes.Node, error) {
	return nodes.CoerceArg(value, nil)
}

func Concat(args ...any) (*nodes.FunctionNode, error)  { return nodes.Concat(args...) }
func Length(expr any) (*nodes.FunctionNode, error)     { return nodes.Length(expr) }
func Locate(str, sub any) (*nodes.FunctionNode, error) { return nodes.Locate(str, sub) }
func DateDiff(end, start any) (*nodes.FunctionNode, error) {
	return nodes.DateDiff(end, start)
}

// Must returns fn or panics with err.
func Must(fn *nodes.FunctionNode, err error) *nodes.FunctionNode {
	return nodes.Must(fn, err)
}

// --- Visitors ---

func NewPostgresVisitor(opts ...visitors.Option) *visitors.PostgresVisitor {
	return visitors.NewPostgresVisitor(opts...)
}

func NewMySQLVisitor(opts ...visitors.Option) *visitors.MySQLVisitor {
	return visitors.NewMySQLVisitor(opts...)
}

func NewSQLiteVisitor(opts ...visitors.Option) *visitors.SQLiteVisitor {
	return visitors.NewSQLiteVisitor(opts...)
}

// WithoutParams disables parameterised rendering.
//
// ⚠️ WARNING: Disables SQL injection protection. Debugging and trusted
// constants only.
func WithoutParams() visitors.Option {
	return visitors.WithoutParams()
}
