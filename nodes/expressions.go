package nodes

// Expressions provides aggregate and EXTRACT helpers to types that embed it.
// The self field must be set to the embedding node.
type Expressions struct {
	self Node
}

// Count creates COUNT(self), or COUNT(DISTINCT self) when distinct is true.
func (e Expressions) Count(distinct ...bool) *AggregateNode {
	n := NewAggregateNode(AggCount, e.self)
	n.Distinct = len(distinct) > 0 && distinct[0]
	return n
}

func (e Expressions) Sum() *AggregateNode     { return NewAggregateNode(AggSum, e.self) }
func (e Expressions) Maximum() *AggregateNode { return NewAggregateNode(AggMax, e.self) }
func (e Expressions) Minimum() *AggregateNode { return NewAggregateNode(AggMin, e.self) }
func (e Expressions) Average() *AggregateNode { return NewAggregateNode(AggAvg, e.self) }

// Extract creates EXTRACT(field FROM self).
func (e Expressions) Extract(field ExtractField) *ExtractNode {
	return NewExtractNode(field, e.self)
}
