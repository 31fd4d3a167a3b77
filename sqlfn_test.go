package sqlfn_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bawdo/sqlfn"
)

// TestSimpleImportStyle builds a whole query through the facade.
func TestSimpleImportStyle(t *testing.T) {
	users := sqlfn.NewTable("users")
	greeting := sqlfn.Must(sqlfn.Concat("Hello, ", users.Col("name")))

	query := sqlfn.NewSelect(users).
		Select(users.Col("id"), greeting.As("greeting")).
		Where(users.Col("active").Eq(true)).
		Order(users.Col("name").Asc()).
		Limit(10)

	sql, _, err := query.ToSQL(sqlfn.NewPostgresVisitor(sqlfn.WithoutParams()))
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	expected := `SELECT "users"."id", CONCAT('Hello, ', "users"."name") AS greeting FROM "users" WHERE "users"."active" = TRUE ORDER BY "users"."name" ASC LIMIT 10`
	if sql != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, sql)
	}
}

// TestParameterisedFunction checks that coerced arguments are bound.
func TestParameterisedFunction(t *testing.T) {
	users := sqlfn.NewTable("users")
	pos := sqlfn.Must(sqlfn.Locate(users.Col("email"), "@"))

	query := sqlfn.NewSelect(users).Select(pos)
	sql, params, err := query.ToSQL(sqlfn.NewSQLiteVisitor())
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}
	if sql != `SELECT INSTR("users"."email", ?) FROM "users"` {
		t.Errorf("unexpected SQL: %s", sql)
	}
	if len(params) != 1 || params[0] != "@" {
		t.Errorf("expected params [@], got %v", params)
	}
}

func TestCoerceRejectsFloats(t *testing.T) {
	_, err := sqlfn.Coerce(1.5)
	if !errors.Is(err, sqlfn.ErrUnsupportedArgumentType) {
		t.Fatalf("expected ErrUnsupportedArgumentType, got %v", err)
	}
}

func TestFuncWithDate(t *testing.T) {
	fn, err := sqlfn.Func("YEAR", sqlfn.NewDate(2024, time.March, 15))
	if err != nil {
		t.Fatalf("Func failed: %v", err)
	}
	got := fn.Accept(sqlfn.NewMySQLVisitor(sqlfn.WithoutParams()))
	if got != "YEAR(DATE '2024-03-15')" {
		t.Errorf("unexpected SQL: %s", got)
	}
}
