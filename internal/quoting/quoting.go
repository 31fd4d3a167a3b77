// Package quoting provides shared identifier and literal quoting utilities.
package quoting

import (
	"strings"
	"time"
)

// TimestampLayout is the literal form of timestamps, accepted by all three
// supported dialects.
const TimestampLayout = "2006-01-02 15:04:05.999999"

// DoubleQuote quotes a SQL identifier using double quotes (PostgreSQL, SQLite, ANSI SQL).
// Internal double quotes are escaped by doubling them.
func DoubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Backtick quotes a SQL identifier using backticks (MySQL).
// Internal backticks are escaped by doubling them.
func Backtick(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// EscapeString escapes a string literal for SQL by doubling single quotes
// and escaping backslashes (for MySQL compatibility).
//
// SECURITY: non-parameterized mode only. Multi-byte character sets (GBK,
// SJIS) can defeat this escaping; bound parameters are not affected.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", "''")
}

// String returns s as a single-quoted, escaped SQL string literal.
func String(s string) string {
	return "'" + EscapeString(s) + "'"
}

// Timestamp formats t for use inside a string literal. Trailing zero
// fractional seconds are dropped.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
