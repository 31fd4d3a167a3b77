package nodes

// Attribute represents a column reference bound to a table or table alias.
type Attribute struct {
	Predications
	Arithmetics
	Combinable
	Expressions
	Name     string
	Relation Node   // *Table or *TableAlias
	TypeName string // SQL type used when values are coerced against it
}

// NewAttribute creates an Attribute with its capability structs pointing at it.
func NewAttribute(relation Node, name string) *Attribute {
	a := &Attribute{Name: name, Relation: relation}
	a.init()
	return a
}

func (a *Attribute) init() {
	a.Predications.self = a
	a.Arithmetics.self = a
	a.Combinable.self = a
	a.Expressions.self = a
}

func (a *Attribute) Accept(v Visitor) string { return v.VisitAttribute(a) }

// Typed returns a copy of the Attribute with TypeName set.
func (a *Attribute) Typed(typeName string) *Attribute {
	c := &Attribute{Name: a.Name, Relation: a.Relation, TypeName: typeName}
	c.init()
	return c
}

// Coerce wraps val for comparison against the attribute: a CastedNode when
// TypeName is set, a plain literal otherwise.
func (a *Attribute) Coerce(val any) Node {
	if a.TypeName != "" {
		return NewCasted(val, a.TypeName)
	}
	return Literal(val)
}
