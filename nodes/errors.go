package nodes

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedArgumentType is matched by every UnsupportedArgumentTypeError.
	ErrUnsupportedArgumentType = errors.New("sqlfn: unsupported function argument type")

	// ErrNoArguments is returned by accessors that need at least one argument.
	ErrNoArguments = errors.New("sqlfn: function has no arguments")
)

// UnsupportedArgumentTypeError reports a value that cannot become a
// function argument. Type is the Go type name of the offending value.
type UnsupportedArgumentTypeError struct {
	Type string
}

func (e *UnsupportedArgumentTypeError) Error() string {
	return fmt.Sprintf("sqlfn: %s can not be converted to a function argument", e.Type)
}

func (e *UnsupportedArgumentTypeError) Is(target error) bool {
	return target == ErrUnsupportedArgumentType
}
