package nodes

// Names of the extension functions. Visitors key their dialect spellings
// on these; any other name renders as a plain NAME(args...) call.
const (
	FuncConcat   = "CONCAT"
	FuncLength   = "LENGTH"
	FuncLocate   = "LOCATE"
	FuncReplace  = "REPLACE"
	FuncTrim     = "TRIM"
	FuncLTrim    = "LTRIM"
	FuncRTrim    = "RTRIM"
	FuncRound    = "ROUND"
	FuncAbs      = "ABS"
	FuncIfNull   = "IFNULL"
	FuncDateDiff = "DATEDIFF"
	FuncNow      = "NOW"
)

// Concat creates CONCAT(args...). At least one argument is required.
func Concat(args ...any) (*FunctionNode, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}
	return NewFunction(FuncConcat, args...)
}

// Length creates the character length of expr.
func Length(expr any) (*FunctionNode, error) {
	return NewFunction(FuncLength, expr)
}

// Locate creates the 1-based position of substr in str, 0 when absent.
func Locate(str, substr any) (*FunctionNode, error) {
	return NewFunction(FuncLocate, str, substr)
}

// Replace creates REPLACE(str, from, to).
func Replace(str, from, to any) (*FunctionNode, error) {
	return NewFunction(FuncReplace, str, from, to)
}

func Trim(expr any) (*FunctionNode, error)  { return NewFunction(FuncTrim, expr) }
func LTrim(expr any) (*FunctionNode, error) { return NewFunction(FuncLTrim, expr) }
func RTrim(expr any) (*FunctionNode, error) { return NewFunction(FuncRTrim, expr) }

// Round creates ROUND(expr) or ROUND(expr, precision).
func Round(expr any, precision ...int) (*FunctionNode, error) {
	args := []any{expr}
	if len(precision) > 0 {
		args = append(args, precision[0])
	}
	return NewFunction(FuncRound, args...)
}

func Abs(expr any) (*FunctionNode, error) { return NewFunction(FuncAbs, expr) }

// IfNull yields expr, or def when expr is NULL.
func IfNull(expr, def any) (*FunctionNode, error) {
	return NewFunction(FuncIfNull, expr, def)
}

// DateDiff yields the number of days from start to end.
func DateDiff(end, start any) (*FunctionNode, error) {
	return NewFunction(FuncDateDiff, end, start)
}

// Now yields the current timestamp.
func Now() *FunctionNode {
	return newFunctionNode(FuncNow)
}
