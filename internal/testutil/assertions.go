package testutil

import (
	"errors"
	"testing"

	"github.com/bawdo/sqlfn/nodes"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertSQL accepts a visitor and node, renders the SQL, and compares it with the expected string.
func AssertSQL(t *testing.T, v nodes.Visitor, node nodes.Node, expected string) {
	t.Helper()
	got := node.Accept(v)
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// AssertParams compares the parameters collected by v with want.
func AssertParams(t *testing.T, v nodes.Parameterizer, want ...any) {
	t.Helper()
	if diff := cmp.Diff(want, v.Params(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

// AssertNode compares two values structurally, ignoring the unexported
// self pointers of the capability structs.
func AssertNode(t *testing.T, got, want any) {
	t.Helper()
	opts := cmpopts.IgnoreUnexported(
		nodes.Predications{}, nodes.Arithmetics{}, nodes.Combinable{}, nodes.Expressions{},
	)
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("node mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error matching %v, got %v", target, err)
	}
}
