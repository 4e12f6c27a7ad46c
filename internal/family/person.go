package family

// PersonID is a stable handle into a Tree's arena. It stays valid until Clear.
type PersonID int

// Person is a node of the relationship graph.
// Parents and Children hold handles, never duplicated within one list.
type Person struct {
	ID       PersonID
	Name     string
	Parents  []PersonID
	Children []PersonID
}

func (p *Person) hasParent(id PersonID) bool {
	return contains(p.Parents, id)
}

func (p *Person) hasChild(id PersonID) bool {
	return contains(p.Children, id)
}

func contains(ids []PersonID, id PersonID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
