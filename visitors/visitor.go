// Package visitors provides SQL dialect generators that walk the AST.
package visitors

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bawdo/sqlfn/internal/quoting"
	"github.com/bawdo/sqlfn/nodes"
	"github.com/shopspring/decimal"
)

// Operator SQL strings for InfixOp values.
var infixOpSQL = [...]string{
	nodes.OpPlus:     "+",
	nodes.OpMinus:    "-",
	nodes.OpMultiply: "*",
	nodes.OpDivide:   "/",
	nodes.OpConcat:   "||",
}

// Operator SQL strings for ComparisonOp values.
var comparisonOpSQL = [...]string{
	nodes.OpEq:      "=",
	nodes.OpNotEq:   "!=",
	nodes.OpGt:      ">",
	nodes.OpGtEq:    ">=",
	nodes.OpLt:      "<",
	nodes.OpLtEq:    "<=",
	nodes.OpLike:    "LIKE",
	nodes.OpNotLike: "NOT LIKE",
}

// Option configures a visitor at construction time.
type Option func(*baseVisitor)

// WithParams enables parameterized query mode. Literal values are replaced
// with bind placeholders and collected for separate retrieval. This is the
// default on every dialect.
func WithParams() Option {
	return func(b *baseVisitor) {
		b.parameterize = true
	}
}

// WithoutParams disables parameterized query mode.
//
// ⚠️ WARNING: Disables SQL injection protection. Values are interpolated
// with basic escaping only. Use it for debugging and for trusted constants.
func WithoutParams() Option {
	return func(b *baseVisitor) {
		b.parameterize = false
	}
}

// baseVisitor implements the shared SQL generation logic used by all dialects.
// Dialect-specific visitors embed *baseVisitor and set the outer field to
// themselves, enabling correct virtual dispatch through the Visitor interface.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer nodes.Visitor

	quoteIdent func(string) string

	// functions holds the dialect spellings of FunctionNode names.
	functions map[string]dialectFunc

	parameterize bool
	params       []any
	paramIndex   int // last placeholder number handed out

	// placeholder returns the bind placeholder for a 1-based index.
	placeholder func(int) string
}

func newBaseVisitor(outer nodes.Visitor, quoteIdent func(string) string, placeholder func(int) string, functions map[string]dialectFunc) *baseVisitor {
	return &baseVisitor{
		outer:        outer,
		quoteIdent:   quoteIdent,
		placeholder:  placeholder,
		functions:    functions,
		parameterize: true,
	}
}

func (b *baseVisitor) applyOptions(opts []Option) {
	for _, o := range opts {
		o(b)
	}
}

// Params returns the collected bind parameters from the last SQL generation.
func (b *baseVisitor) Params() []any {
	return b.params
}

// Reset clears collected parameters for reuse.
func (b *baseVisitor) Reset() {
	b.params = nil
	b.paramIndex = 0
}

func (b *baseVisitor) bind(val any) string {
	b.paramIndex++
	b.params = append(b.params, val)
	return b.placeholder(b.paramIndex)
}

func (b *baseVisitor) VisitTable(n *nodes.Table) string {
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitTableAlias(n *nodes.TableAlias) string {
	if tbl, ok := n.Relation.(*nodes.Table); ok {
		return b.quoteIdent(tbl.Name) + " AS " + b.quoteIdent(n.AliasName)
	}
	return "(" + n.Relation.Accept(b.outer) + ") AS " + b.quoteIdent(n.AliasName)
}

func (b *baseVisitor) VisitAttribute(n *nodes.Attribute) string {
	return b.quoteIdent(nodes.RelationName(n.Relation)) + "." + b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	return b.literalToSQL(n.Value)
}

func (b *baseVisitor) literalToSQL(val any) string {
	// nil always renders as the NULL keyword, never as a parameter.
	if val == nil {
		return "NULL"
	}
	if b.parameterize {
		return b.bind(val)
	}

	switch v := val.(type) {
	case string:
		return quoting.String(v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case decimal.Decimal:
		return v.String()
	case nodes.Date:
		return quoting.String(v.String())
	case time.Time:
		return quoting.String(quoting.Timestamp(v))
	default:
		panic(fmt.Sprintf("sqlfn: unsupported literal type %T", v))
	}
}

func (b *baseVisitor) VisitStar(n *nodes.StarNode) string {
	if n.Table != nil {
		return b.quoteIdent(n.Table.Name) + ".*"
	}
	return "*"
}

func (b *baseVisitor) VisitSqlLiteral(n *nodes.SqlLiteral) string {
	if b.parameterize && len(n.Binds) > 0 {
		b.params = append(b.params, n.Binds...)
		b.paramIndex += len(n.Binds)
	}
	return n.Raw
}

func (b *baseVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " " + comparisonOpSQL[n.Op] + " " + right
}

func (b *baseVisitor) VisitUnary(n *nodes.UnaryNode) string {
	expr := n.Expr.Accept(b.outer)
	if n.Op == nodes.OpIsNotNull {
		return expr + " IS NOT NULL"
	}
	return expr + " IS NULL"
}

func (b *baseVisitor) VisitAnd(n *nodes.AndNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " AND " + right
}

func (b *baseVisitor) VisitOr(n *nodes.OrNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " OR " + right
}

func (b *baseVisitor) VisitNot(n *nodes.NotNode) string {
	return "NOT (" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitIn(n *nodes.InNode) string {
	expr := n.Expr.Accept(b.outer)
	keyword := " IN ("
	if n.Negate {
		keyword = " NOT IN ("
	}
	return expr + keyword + b.join(n.Vals, ", ") + ")"
}

func (b *baseVisitor) VisitBetween(n *nodes.BetweenNode) string {
	expr := n.Expr.Accept(b.outer)
	low := n.Low.Accept(b.outer)
	high := n.High.Accept(b.outer)
	keyword := " BETWEEN "
	if n.Negate {
		keyword = " NOT BETWEEN "
	}
	return expr + keyword + low + " AND " + high
}

func (b *baseVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	return "(" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	expr := n.Expr.Accept(b.outer)
	if n.Direction == nodes.Desc {
		expr += " DESC"
	} else {
		expr += " ASC"
	}
	switch n.Nulls {
	case nodes.NullsFirst:
		expr += " NULLS FIRST"
	case nodes.NullsLast:
		expr += " NULLS LAST"
	}
	return expr
}

// needsParens reports whether n must be parenthesised as an infix operand.
func needsParens(n nodes.Node) bool {
	_, ok := n.(*nodes.InfixNode)
	return ok
}

func (b *baseVisitor) VisitInfix(n *nodes.InfixNode) string {
	left := n.Left.Accept(b.outer)
	if needsParens(n.Left) {
		left = "(" + left + ")"
	}
	right := n.Right.Accept(b.outer)
	if needsParens(n.Right) {
		right = "(" + right + ")"
	}
	return left + " " + infixOpSQL[n.Op] + " " + right
}

var aggregateFuncSQL = [...]string{
	nodes.AggCount: "COUNT",
	nodes.AggSum:   "SUM",
	nodes.AggAvg:   "AVG",
	nodes.AggMin:   "MIN",
	nodes.AggMax:   "MAX",
}

func (b *baseVisitor) VisitAggregate(n *nodes.AggregateNode) string {
	var sb strings.Builder
	sb.WriteString(aggregateFuncSQL[n.Func])
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if n.Expr == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(n.Expr.Accept(b.outer))
	}
	sb.WriteString(")")
	if n.Filter != nil {
		sb.WriteString(" FILTER (WHERE ")
		sb.WriteString(n.Filter.Accept(b.outer))
		sb.WriteString(")")
	}
	return sb.String()
}

var extractFieldSQL = [...]string{
	nodes.ExtractYear:    "YEAR",
	nodes.ExtractMonth:   "MONTH",
	nodes.ExtractDay:     "DAY",
	nodes.ExtractHour:    "HOUR",
	nodes.ExtractMinute:  "MINUTE",
	nodes.ExtractSecond:  "SECOND",
	nodes.ExtractDow:     "DOW",
	nodes.ExtractDoy:     "DOY",
	nodes.ExtractEpoch:   "EPOCH",
	nodes.ExtractQuarter: "QUARTER",
	nodes.ExtractWeek:    "WEEK",
}

func (b *baseVisitor) VisitExtract(n *nodes.ExtractNode) string {
	return "EXTRACT(" + extractFieldSQL[n.Field] + " FROM " + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitNamedFunction(n *nodes.NamedFunctionNode) string {
	validateSQLFunctionName(n.Name)
	if n.Name == "CAST" && len(n.Args) == 2 {
		return "CAST(" + n.Args[0].Accept(b.outer) + " AS " + n.Args[1].Accept(b.outer) + ")"
	}
	distinct := ""
	if n.Distinct {
		distinct = "DISTINCT "
	}
	return n.Name + "(" + distinct + b.join(n.Args, ", ") + ")"
}

func (b *baseVisitor) VisitAlias(n *nodes.AliasNode) string {
	name := n.Name
	if !n.Raw {
		name = b.quoteIdent(name)
	}
	return n.Expr.Accept(b.outer) + " AS " + name
}

func (b *baseVisitor) VisitBindParam(n *nodes.BindParamNode) string {
	if b.parameterize {
		return b.bind(n.Value)
	}
	return b.literalToSQL(n.Value)
}

func (b *baseVisitor) VisitCasted(n *nodes.CastedNode) string {
	valSQL := b.literalToSQL(n.Value)
	if n.TypeName != "" {
		validateSQLTypeName(n.TypeName)
		return "CAST(" + valSQL + " AS " + n.TypeName + ")"
	}
	return valSQL
}

func (b *baseVisitor) VisitQuoted(n *nodes.QuotedNode) string {
	return b.literalToSQL(n.Value)
}

// join renders each node in order and joins the results with sep.
func (b *baseVisitor) join(ns []nodes.Node, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = n.Accept(b.outer)
	}
	return strings.Join(parts, sep)
}

// validateSQLTypeName panics if the type name contains characters outside
// letters, digits, spaces, parentheses, commas and underscores.
func validateSQLTypeName(name string) {
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != ' ' && c != '(' &&
			c != ')' && c != ',' && c != '_' {
			panic(fmt.Sprintf("sqlfn: invalid SQL type name character %q in %q", string(c), name))
		}
	}
}

// validateSQLFunctionName panics if the function name is empty or contains
// characters outside letters, digits and underscores.
func validateSQLFunctionName(name string) {
	if name == "" {
		panic("sqlfn: empty SQL function name")
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != '_' {
			panic(fmt.Sprintf("sqlfn: invalid SQL function name character %q in %q", string(c), name))
		}
	}
}

func (b *baseVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if len(n.Projections) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(b.join(n.Projections, ", "))
	}
	b.writeNodeClause(&sb, " FROM ", n.From)
	b.writeClause(&sb, " WHERE ", n.Wheres, " AND ")
	b.writeClause(&sb, " GROUP BY ", n.Groups, ", ")
	b.writeClause(&sb, " HAVING ", n.Havings, " AND ")
	b.writeClause(&sb, " ORDER BY ", n.Orders, ", ")
	b.writeNodeClause(&sb, " LIMIT ", n.Limit)
	b.writeNodeClause(&sb, " OFFSET ", n.Offset)

	return sb.String()
}

// writeClause writes "keyword item1 sep item2 sep ..." if items is non-empty.
func (b *baseVisitor) writeClause(sb *strings.Builder, keyword string, items []nodes.Node, sep string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(keyword)
	sb.WriteString(b.join(items, sep))
}

// writeNodeClause writes "keyword node" if node is non-nil.
func (b *baseVisitor) writeNodeClause(sb *strings.Builder, keyword string, n nodes.Node) {
	if n != nil {
		sb.WriteString(keyword)
		sb.WriteString(n.Accept(b.outer))
	}
}
