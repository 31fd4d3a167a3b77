package visitors

import (
	"strings"
	"testing"
	"time"

	"github.com/bawdo/sqlfn/internal/testutil"
	"github.com/bawdo/sqlfn/nodes"
	"github.com/shopspring/decimal"
)

func assertPanics(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, substr) {
			t.Errorf("expected panic containing %q, got %v", substr, r)
		}
	}()
	fn()
}

// --- Table ---

func TestVisitTable(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), users, `"users"`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), users, "`users`")
	testutil.AssertSQL(t, NewSQLiteVisitor(WithoutParams()), users, `"users"`)
}

func TestVisitTableQuotesEmbeddedQuotes(t *testing.T) {
	t.Parallel()
	tbl := nodes.NewTable(`us"er`)
	testutil.AssertSQL(t, NewPostgresVisitor(), tbl, `"us""er"`)
	testutil.AssertSQL(t, NewMySQLVisitor(), nodes.NewTable("us`er"), "`us``er`")
}

// --- TableAlias ---

func TestVisitTableAlias(t *testing.T) {
	t.Parallel()
	u := nodes.NewTable("users").Alias("u")
	testutil.AssertSQL(t, NewPostgresVisitor(), u, `"users" AS "u"`)
	testutil.AssertSQL(t, NewMySQLVisitor(), u, "`users` AS `u`")
}

func TestVisitTableAliasOnSubquery(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	core := &nodes.SelectCore{From: users, Projections: []nodes.Node{users.Col("id")}}
	alias := &nodes.TableAlias{Relation: core, AliasName: "sub"}
	testutil.AssertSQL(t, NewPostgresVisitor(), alias, `(SELECT "users"."id" FROM "users") AS "sub"`)
}

// --- Attribute ---

func TestVisitAttribute(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	testutil.AssertSQL(t, NewPostgresVisitor(), col, `"users"."name"`)
	testutil.AssertSQL(t, NewMySQLVisitor(), col, "`users`.`name`")
	testutil.AssertSQL(t, NewSQLiteVisitor(), col, `"users"."name"`)
}

func TestVisitAttributeOnAlias(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Alias("u").Col("name")
	testutil.AssertSQL(t, NewPostgresVisitor(), col, `"u"."name"`)
}

// --- Literals ---

func TestVisitLiteralInline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"string", "Alice", `'Alice'`},
		{"escaped string", "O'Brien", `'O''Brien'`},
		{"backslash", `a\b`, `'a\\b'`},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(255), "255"},
		{"float64", 3.5, "3.5"},
		{"float32", float32(0.25), "0.25"},
		{"decimal", decimal.RequireFromString("19.99"), "19.99"},
		{"nil", nil, "NULL"},
		{"date", nodes.NewDate(2024, time.March, 15), `'2024-03-15'`},
		{"timestamp", time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC), `'2024-03-15 13:45:00'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.Literal(tt.val), tt.want)
		})
	}
}

func TestVisitLiteralUnsupportedTypePanics(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithoutParams())
	assertPanics(t, "unsupported literal type", func() {
		nodes.Literal(struct{}{}).Accept(v)
	})
}

// --- Parameterized mode ---

func TestParamsDefaultOnEveryDialect(t *testing.T) {
	t.Parallel()
	cmp := nodes.NewTable("users").Col("name").Eq("Alice")

	pg := NewPostgresVisitor()
	testutil.AssertSQL(t, pg, cmp, `"users"."name" = $1`)
	testutil.AssertParams(t, pg, "Alice")

	my := NewMySQLVisitor()
	testutil.AssertSQL(t, my, cmp, "`users`.`name` = ?")
	testutil.AssertParams(t, my, "Alice")

	lite := NewSQLiteVisitor()
	testutil.AssertSQL(t, lite, cmp, `"users"."name" = ?`)
	testutil.AssertParams(t, lite, "Alice")
}

func TestPostgresPlaceholdersIncrement(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("age")
	v := NewPostgresVisitor()
	testutil.AssertSQL(t, v, col.Between(18, 65).And(col.NotEq(30)),
		`"users"."age" BETWEEN $1 AND $2 AND "users"."age" != $3`)
	testutil.AssertParams(t, v, 18, 65, 30)
}

func TestResetClearsParams(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor()
	nodes.Literal(1).Accept(v)
	v.Reset()
	testutil.AssertParams(t, v)
	testutil.AssertSQL(t, v, nodes.Literal(2), "$1")
}

func TestNilIsNeverBound(t *testing.T) {
	t.Parallel()
	v := NewMySQLVisitor()
	testutil.AssertSQL(t, v, nodes.Literal(nil), "NULL")
	testutil.AssertParams(t, v)
}

func TestWithParamsAfterWithoutParams(t *testing.T) {
	t.Parallel()
	v := NewSQLiteVisitor(WithoutParams(), WithParams())
	testutil.AssertSQL(t, v, nodes.Literal(1), "?")
}

func TestSqlLiteralBindsCounted(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor()
	n := nodes.NewAnd(nodes.NewBoundSqlLiteral("x = $1", 5), nodes.Literal(6).(*nodes.LiteralNode).Eq(7))
	testutil.AssertSQL(t, v, n, "x = $1 AND $2 = $3")
	testutil.AssertParams(t, v, 5, 6, 7)
}

func TestBindParam(t *testing.T) {
	t.Parallel()
	pg := NewPostgresVisitor()
	testutil.AssertSQL(t, pg, nodes.NewBindParam("x"), "$1")
	testutil.AssertParams(t, pg, "x")
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), nodes.NewBindParam("x"), `'x'`)
}

// --- Predicates ---

func TestVisitComparisons(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("age")
	v := NewPostgresVisitor(WithoutParams())
	tests := []struct {
		node nodes.Node
		want string
	}{
		{col.Eq(1), `"users"."age" = 1`},
		{col.NotEq(1), `"users"."age" != 1`},
		{col.Gt(1), `"users"."age" > 1`},
		{col.GtEq(1), `"users"."age" >= 1`},
		{col.Lt(1), `"users"."age" < 1`},
		{col.LtEq(1), `"users"."age" <= 1`},
		{col.Like("a%"), `"users"."age" LIKE 'a%'`},
		{col.NotLike("a%"), `"users"."age" NOT LIKE 'a%'`},
		{col.IsNull(), `"users"."age" IS NULL`},
		{col.IsNotNull(), `"users"."age" IS NOT NULL`},
		{col.In(1, 2), `"users"."age" IN (1, 2)`},
		{col.NotIn(3), `"users"."age" NOT IN (3)`},
		{col.NotBetween(1, 9), `"users"."age" NOT BETWEEN 1 AND 9`},
	}
	for _, tt := range tests {
		testutil.AssertSQL(t, v, tt.node, tt.want)
	}
}

func TestVisitCombinators(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("age")
	v := NewPostgresVisitor(WithoutParams())
	testutil.AssertSQL(t, v, col.Gt(1).And(col.Lt(9).Or(col.Eq(0))),
		`"users"."age" > 1 AND ("users"."age" < 9 OR "users"."age" = 0)`)
	testutil.AssertSQL(t, v, col.Eq(1).Not(), `NOT ("users"."age" = 1)`)
}

// --- Ordering ---

func TestVisitOrdering(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	v := NewPostgresVisitor()
	testutil.AssertSQL(t, v, col.Asc(), `"users"."name" ASC`)
	testutil.AssertSQL(t, v, col.Desc().NullsLast(), `"users"."name" DESC NULLS LAST`)
	testutil.AssertSQL(t, v, col.Asc().NullsFirst(), `"users"."name" ASC NULLS FIRST`)
}

// --- Arithmetic ---

func TestVisitInfix(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("products").Col("price")
	v := NewPostgresVisitor(WithoutParams())
	testutil.AssertSQL(t, v, col.Plus(1), `"products"."price" + 1`)
	testutil.AssertSQL(t, v, col.Plus(1).Multiply(2), `("products"."price" + 1) * 2`)
	testutil.AssertSQL(t, v, col.Concat("x"), `"products"."price" || 'x'`)
}

func TestMySQLConcatInfix(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	v := NewMySQLVisitor()
	testutil.AssertSQL(t, v, col.Concat("!"), "CONCAT(`users`.`name`, ?)")
	testutil.AssertParams(t, v, "!")
	testutil.AssertSQL(t, NewMySQLVisitor(), col.Minus(1), "`users`.`name` - ?")
}

// --- Aggregates ---

func TestVisitAggregate(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("total")
	v := NewPostgresVisitor(WithoutParams())
	testutil.AssertSQL(t, v, nodes.Count(nil), "COUNT(*)")
	testutil.AssertSQL(t, v, col.Count(true), `COUNT(DISTINCT "orders"."total")`)
	testutil.AssertSQL(t, v, nodes.Sum(col).WithFilter(col.Gt(0)),
		`SUM("orders"."total") FILTER (WHERE "orders"."total" > 0)`)
	testutil.AssertSQL(t, v, col.Maximum(), `MAX("orders"."total")`)
}

func TestVisitExtract(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("orders").Col("placed_at")
	testutil.AssertSQL(t, NewPostgresVisitor(), col.Extract(nodes.ExtractYear),
		`EXTRACT(YEAR FROM "orders"."placed_at")`)
}

// --- Named functions, casts and aliases ---

func TestVisitNamedFunction(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	v := NewPostgresVisitor(WithoutParams())
	testutil.AssertSQL(t, v, nodes.Lower(col), `LOWER("users"."name")`)
	testutil.AssertSQL(t, v, nodes.Coalesce(col, nodes.Literal("x")), `COALESCE("users"."name", 'x')`)
	testutil.AssertSQL(t, v, nodes.Cast(col, "varchar(10)"), `CAST("users"."name" AS varchar(10))`)
}

func TestVisitNamedFunctionRejectsBadNames(t *testing.T) {
	t.Parallel()
	n := nodes.NewNamedFunction("LOWER(x); --")
	assertPanics(t, "invalid SQL function name", func() { n.Accept(NewPostgresVisitor()) })
}

func TestVisitAliasQuoted(t *testing.T) {
	t.Parallel()
	col := nodes.NewTable("users").Col("name")
	testutil.AssertSQL(t, NewPostgresVisitor(), col.As("n"), `"users"."name" AS "n"`)
	testutil.AssertSQL(t, NewMySQLVisitor(), col.As("n"), "`users`.`name` AS `n`")
}

func TestVisitCasted(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithoutParams())
	testutil.AssertSQL(t, v, nodes.NewCasted(nodes.NewDate(2024, 3, 15), "date"), `CAST('2024-03-15' AS date)`)
	testutil.AssertSQL(t, v, nodes.NewCasted(5, ""), "5")
	assertPanics(t, "invalid SQL type name", func() {
		nodes.NewCasted(1, "int; DROP").Accept(v)
	})
}

func TestVisitQuotedWithoutContext(t *testing.T) {
	t.Parallel()
	n := nodes.NewQuoted(nodes.NewDate(2024, 3, 15), nil)
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), n, `'2024-03-15'`)
	testutil.AssertSQL(t, NewMySQLVisitor(WithoutParams()), n, `'2024-03-15'`)
}

// --- SelectCore ---

func TestVisitSelectCoreAllClauses(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	core := &nodes.SelectCore{
		From:        users,
		Projections: []nodes.Node{users.Col("country"), nodes.Count(nil)},
		Wheres:      []nodes.Node{users.Col("active").Eq(true), users.Col("age").Gt(18)},
		Groups:      []nodes.Node{users.Col("country")},
		Havings:     []nodes.Node{nodes.Count(nil).Gt(5)},
		Orders:      []nodes.Node{users.Col("country").Asc()},
		Limit:       nodes.Literal(10),
		Offset:      nodes.Literal(20),
		Distinct:    true,
	}
	testutil.AssertSQL(t, NewPostgresVisitor(WithoutParams()), core,
		`SELECT DISTINCT "users"."country", COUNT(*) FROM "users" `+
			`WHERE "users"."active" = TRUE AND "users"."age" > 18 `+
			`GROUP BY "users"."country" HAVING COUNT(*) > 5 `+
			`ORDER BY "users"."country" ASC LIMIT 10 OFFSET 20`)
}

func TestVisitSelectCoreWithoutFrom(t *testing.T) {
	t.Parallel()
	core := &nodes.SelectCore{Projections: []nodes.Node{nodes.Literal(1)}}
	v := NewSQLiteVisitor()
	testutil.AssertSQL(t, v, core, "SELECT ?")
	testutil.AssertParams(t, v, 1)
}
