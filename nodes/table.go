package nodes

// Table is a named relation. Its columns are the usual first argument of
// a function call.
type Table struct {
	Name string
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) Accept(v Visitor) string { return v.VisitTable(t) }

// Col returns the column called name, ready to pass to NewFunction.
func (t *Table) Col(name string) *Attribute {
	return NewAttribute(t, name)
}

// Alias renames t, e.g. for a self join.
func (t *Table) Alias(name string) *TableAlias {
	return &TableAlias{Relation: t, AliasName: name}
}

// Star is t.*.
func (t *Table) Star() *StarNode {
	return &StarNode{Table: t}
}

// TableAlias is a table or subquery under another name.
type TableAlias struct {
	Relation  Node // *Table, *SelectCore, or any Node
	AliasName string
}

func (ta *TableAlias) Accept(v Visitor) string { return v.VisitTableAlias(ta) }

// Col returns a column qualified by the alias.
func (ta *TableAlias) Col(name string) *Attribute {
	return NewAttribute(ta, name)
}

// RelationName is the qualifier printed before a column: the table name or
// the alias. Other nodes have none.
func RelationName(n Node) string {
	switch r := n.(type) {
	case *Table:
		return r.Name
	case *TableAlias:
		return r.AliasName
	default:
		return ""
	}
}
