package managers

import (
	"strings"
	"testing"
	"time"

	"github.com/bawdo/sqlfn/internal/testutil"
	"github.com/bawdo/sqlfn/nodes"
	"github.com/bawdo/sqlfn/visitors"
)

// --- NewSelectManager ---

func TestNewSelectManagerSetsFrom(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewSelectManager(users)

	if m.Core.From != users {
		t.Error("expected From to be the users table")
	}
	if len(m.Core.Projections) != 0 || len(m.Core.Wheres) != 0 {
		t.Error("expected empty projections and wheres")
	}
}

func TestNewSelectManagerNilFrom(t *testing.T) {
	t.Parallel()
	m := NewSelectManager(nil)
	if m.Core.From != nil {
		t.Error("expected nil From")
	}
}

// --- Clauses ---

func TestSelectReplacesProjections(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewSelectManager(users)

	m.Select(users.Col("id"))
	m.Project(users.Col("name"), users.Col("email"))

	if len(m.Core.Projections) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(m.Core.Projections))
	}
}

func TestWhereAppendsConditions(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewSelectManager(users)

	m.Where(users.Col("active").Eq(true))
	m.Where(users.Col("age").Gt(18), users.Col("age").Lt(65))

	if len(m.Core.Wheres) != 3 {
		t.Fatalf("expected 3 wheres, got %d", len(m.Core.Wheres))
	}
}

func TestGroupHavingOrderAppend(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewSelectManager(users).
		Group(users.Col("country")).
		Group(users.Col("city")).
		Having(nodes.Count(nil).Gt(1)).
		Order(users.Col("country").Asc()).
		Order(users.Col("city").Desc())

	testutil.AssertEqual(t, len(m.Core.Groups), 2)
	testutil.AssertEqual(t, len(m.Core.Havings), 1)
	testutil.AssertEqual(t, len(m.Core.Orders), 2)
}

func TestDistinct(t *testing.T) {
	t.Parallel()
	m := NewSelectManager(nodes.NewTable("users"))
	m.Distinct()
	testutil.AssertEqual(t, m.Core.Distinct, true)
	m.Distinct(false)
	testutil.AssertEqual(t, m.Core.Distinct, false)
}

func TestLimitOffsetTake(t *testing.T) {
	t.Parallel()
	m := NewSelectManager(nodes.NewTable("users")).Take(10).Offset(20)

	limit, ok := m.Core.Limit.(*nodes.LiteralNode)
	if !ok || limit.Value != 10 {
		t.Errorf("expected limit literal 10, got %#v", m.Core.Limit)
	}
	offset, ok := m.Core.Offset.(*nodes.LiteralNode)
	if !ok || offset.Value != 20 {
		t.Errorf("expected offset literal 20, got %#v", m.Core.Offset)
	}
}

func TestFromChangesSource(t *testing.T) {
	t.Parallel()
	posts := nodes.NewTable("posts")
	m := NewSelectManager(nodes.NewTable("users")).From(posts)
	if m.Core.From != posts {
		t.Error("expected From to be posts")
	}
}

// --- ToSQL ---

func TestToSQLDelegatesToVisitor(t *testing.T) {
	t.Parallel()
	m := NewSelectManager(nodes.NewTable("users"))
	sql, params, err := m.ToSQL(testutil.StubVisitor{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, "select_core")
	if params != nil {
		t.Errorf("expected nil params without a parameterizer, got %v", params)
	}
}

func TestToSQLResetsParameterizer(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	m := NewSelectManager(users).Where(users.Col("id").Eq(1))
	v := visitors.NewPostgresVisitor()

	for i := 0; i < 2; i++ {
		sql, params, err := m.ToSQL(v)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, sql, `SELECT * FROM "users" WHERE "users"."id" = $1`)
		if len(params) != 1 || params[0] != 1 {
			t.Fatalf("run %d: expected params [1], got %v", i, params)
		}
	}
}

func TestToSQLWithFunctionProjection(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	full := nodes.Must(nodes.Concat(users.Col("first_name"), " ", users.Col("last_name")))
	since := nodes.Must(nodes.DateDiff(time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC), users.Col("created_at")))

	m := NewSelectManager(users).
		Select(full.As("full_name"), since.As("age_days")).
		Where(since.Gt(30))

	sql, params, err := m.ToSQL(visitors.NewMySQLVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		"SELECT CONCAT(`users`.`first_name`, ?, `users`.`last_name`) AS full_name, "+
			"DATEDIFF(?, `users`.`created_at`) AS age_days FROM `users` "+
			"WHERE DATEDIFF(?, `users`.`created_at`) > ?")
	testutil.AssertEqual(t, len(params), 4)
	testutil.AssertEqual(t, params[0].(string), " ")
	testutil.AssertEqual(t, params[1].(nodes.Date), nodes.NewDate(2024, time.March, 15))
	testutil.AssertEqual(t, params[3].(int), 30)
}

func TestToSQLFromlessFunctionCall(t *testing.T) {
	t.Parallel()
	ab := nodes.Must(nodes.Concat("a", "b"))
	sql, params, err := NewSelectManager(nil).Select(ab.As("ab")).ToSQL(visitors.NewPostgresVisitor())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, "SELECT CONCAT($1::text, $2::text) AS ab")
	testutil.AssertNode(t, params, []any{"a", "b"})
}

func TestToSQLInvalidFunctionNameIsAnError(t *testing.T) {
	t.Parallel()
	fn := nodes.Must(nodes.NewFunction("LOWER); DROP TABLE users; --", "x"))
	m := NewSelectManager(nodes.NewTable("users")).Select(fn)

	sql, params, err := m.ToSQL(visitors.NewSQLiteVisitor())
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "invalid SQL function name") {
		t.Errorf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, sql, "")
	if params != nil {
		t.Errorf("expected nil params on error, got %v", params)
	}
}

func TestToSQLRepanicsForeignPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected the foreign panic to propagate")
		}
	}()
	m := NewSelectManager(nodes.NewTable("users"))
	_, _, _ = m.ToSQL(panickingVisitor{})
}

type panickingVisitor struct{ testutil.StubVisitor }

func (panickingVisitor) VisitSelectCore(*nodes.SelectCore) string { panic("boom") }

// --- Subqueries ---

func TestSelectManagerAsSubquery(t *testing.T) {
	t.Parallel()
	users := nodes.NewTable("users")
	inner := NewSelectManager(users).Select(users.Col("id"))
	outer := NewSelectManager(inner.As("u"))

	sql, _, err := outer.ToSQL(visitors.NewPostgresVisitor(visitors.WithoutParams()))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, `SELECT * FROM (SELECT "users"."id" FROM "users") AS "u"`)
}

func TestSelectManagerImplementsNode(t *testing.T) {
	t.Parallel()
	var n nodes.Node = NewSelectManager(nodes.NewTable("users"))
	testutil.AssertEqual(t, n.Accept(testutil.StubVisitor{}), "select_core")
}
