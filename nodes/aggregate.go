package nodes

// AggregateFunc identifies the aggregate function.
type AggregateFunc int

const (
	AggCount AggregateFunc = iota
	AggSum
	AggAvg
	AggMin
	AggMax
)

// AggregateNode represents an aggregate function call (COUNT, SUM, AVG, MIN, MAX).
type AggregateNode struct {
	Predications
	Arithmetics
	Combinable
	Func     AggregateFunc
	Expr     Node // nil for COUNT(*)
	Distinct bool
	Filter   Node // FILTER (WHERE ...), nil if unused
}

func (n *AggregateNode) Accept(v Visitor) string { return v.VisitAggregate(n) }

// NewAggregateNode creates an AggregateNode with properly initialised embedded structs.
func NewAggregateNode(fn AggregateFunc, expr Node) *AggregateNode {
	n := &AggregateNode{Func: fn, Expr: expr}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// Count creates a COUNT aggregate. Pass nil for COUNT(*).
func Count(expr Node) *AggregateNode { return NewAggregateNode(AggCount, expr) }

func Sum(expr Node) *AggregateNode { return NewAggregateNode(AggSum, expr) }
func Avg(expr Node) *AggregateNode { return NewAggregateNode(AggAvg, expr) }
func Min(expr Node) *AggregateNode { return NewAggregateNode(AggMin, expr) }
func Max(expr Node) *AggregateNode { return NewAggregateNode(AggMax, expr) }

// WithFilter returns a copy of the aggregate with a FILTER (WHERE ...) clause.
func (n *AggregateNode) WithFilter(condition Node) *AggregateNode {
	out := NewAggregateNode(n.Func, n.Expr)
	out.Distinct = n.Distinct
	out.Filter = condition
	return out
}

// ExtractField identifies the date/time field for EXTRACT.
type ExtractField int

const (
	ExtractYear ExtractField = iota
	ExtractMonth
	ExtractDay
	ExtractHour
	ExtractMinute
	ExtractSecond
	ExtractDow
	ExtractDoy
	ExtractEpoch
	ExtractQuarter
	ExtractWeek
)

// ExtractNode represents EXTRACT(field FROM expr).
type ExtractNode struct {
	Predications
	Arithmetics
	Combinable
	Field ExtractField
	Expr  Node
}

func (n *ExtractNode) Accept(v Visitor) string { return v.VisitExtract(n) }

// NewExtractNode creates an ExtractNode with properly initialised embedded structs.
func NewExtractNode(field ExtractField, expr Node) *ExtractNode {
	n := &ExtractNode{Field: field, Expr: expr}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}
