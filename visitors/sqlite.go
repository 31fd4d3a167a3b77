package visitors

import (
	"github.com/bawdo/sqlfn/internal/quoting"
)

// SQLiteVisitor generates SQLite-dialect SQL.
// Identifiers are quoted with double quotes: "table"."column" (ANSI SQL).
// SQLite has no date type, so dates render as ISO text.
type SQLiteVisitor struct {
	*baseVisitor
}

// NewSQLiteVisitor creates a SQLiteVisitor ready for use.
// Parameterized mode (?) is enabled by default.
func NewSQLiteVisitor(opts ...Option) *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = newBaseVisitor(v, quoting.DoubleQuote,
		func(_ int) string { return "?" }, sqliteFunctions)
	v.applyOptions(opts)
	return v
}
