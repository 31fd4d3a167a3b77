package nodes

import (
	"fmt"
	"reflect"
	"time"
)

// Arg is a function argument in one of the supported shapes. The set of
// implementations is closed: NodeArg, IntArg, TextArg, DateArg,
// TimestampArg and DurationArg.
type Arg interface {
	isArg()
}

// NodeArg is an existing AST node or attribute, embedded unchanged. Node
// must not be nil.
type NodeArg struct{ Node Node }

// IntArg is a whole number. Value must hold one of the Integer types;
// Coerce rejects any other payload.
type IntArg struct{ Value any }

// TextArg is a string literal.
type TextArg struct{ Text string }

// DateArg is a plain calendar date.
type DateArg struct{ Date Date }

// TimestampArg is a point in time. Only its calendar date is embedded.
type TimestampArg struct{ Time time.Time }

// DurationArg is an elapsed span, embedded as whole seconds.
type DurationArg struct{ Duration time.Duration }

func (NodeArg) isArg()      {}
func (IntArg) isArg()       {}
func (TextArg) isArg()      {}
func (DateArg) isArg()      {}
func (TimestampArg) isArg() {}
func (DurationArg) isArg()  {}

// Integer lists the Go integer types accepted as IntArg values.
// Named types (including time.Duration) are deliberately excluded.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Int returns an IntArg carrying v with its original type.
func Int[T Integer](v T) IntArg { return IntArg{Value: v} }

// Text returns a TextArg.
func Text(s string) TextArg { return TextArg{Text: s} }

// On returns a NodeArg.
func On(n Node) NodeArg { return NodeArg{Node: n} }

// Coerce classifies a Go value as an Arg. The first matching rule wins:
// Arg values and Nodes, integers, time.Time, string, Date, time.Duration.
// Anything else yields an *UnsupportedArgumentTypeError, as do Arg values
// with an invalid payload and nil nodes.
func Coerce(value any) (Arg, error) {
	switch v := value.(type) {
	case Arg:
		if err := checkArg(v); err != nil {
			return nil, err
		}
		return v, nil
	case Node:
		if isNilNode(v) {
			return nil, &UnsupportedArgumentTypeError{Type: fmt.Sprintf("%T", value)}
		}
		return NodeArg{Node: v}, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return IntArg{Value: v}, nil
	case time.Time:
		return TimestampArg{Time: v}, nil
	case string:
		return TextArg{Text: v}, nil
	case Date:
		return DateArg{Date: v}, nil
	case time.Duration:
		return DurationArg{Duration: v}, nil
	default:
		return nil, &UnsupportedArgumentTypeError{Type: fmt.Sprintf("%T", value)}
	}
}

// checkArg reports whether a's payload is one Resolve can embed.
func checkArg(a Arg) error {
	switch a := a.(type) {
	case NodeArg:
		if isNilNode(a.Node) {
			return &UnsupportedArgumentTypeError{Type: fmt.Sprintf("%T", a.Node)}
		}
	case IntArg:
		switch a.Value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		default:
			return &UnsupportedArgumentTypeError{Type: fmt.Sprintf("%T", a.Value)}
		}
	case TextArg, DateArg, TimestampArg, DurationArg:
	default:
		return &UnsupportedArgumentTypeError{Type: fmt.Sprintf("%T", a)}
	}
	return nil
}

// isNilNode catches both a nil interface and a typed nil pointer.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Resolve turns arg into the node embedded in a function call. ctx is the
// node the argument belongs to; dates and timestamps are tagged with it so
// visitors can pick typed literal syntax.
func Resolve(arg Arg, ctx Node) Node {
	switch a := arg.(type) {
	case NodeArg:
		return a.Node
	case IntArg:
		return newLiteral(a.Value)
	case TimestampArg:
		return BuildQuoted(DateOf(a.Time), ctx)
	case TextArg:
		return NewQuoted(a.Text, nil)
	case DateArg:
		return BuildQuoted(a.Date, ctx)
	case DurationArg:
		return newLiteral(int64(a.Duration / time.Second))
	default:
		panic(fmt.Sprintf("sqlfn: unknown argument variant %T", arg))
	}
}

// CoerceArg coerces value and resolves it against ctx in one step.
func CoerceArg(value any, ctx Node) (Node, error) {
	arg, err := Coerce(value)
	if err != nil {
		return nil, err
	}
	return Resolve(arg, ctx), nil
}
