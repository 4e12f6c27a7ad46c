package family

// Tree owns every Person of one family graph.
// Persons live in a dense arena addressed by PersonID; names index into it.
// A Tree is not safe for concurrent use.
type Tree struct {
	people []*Person           // id → Person, insertion order
	index  map[string]PersonID // name → id
}

// NewTree allocates an empty Tree.
func NewTree() *Tree {
	return &Tree{index: make(map[string]PersonID)}
}

// GetOrCreate returns the handle for name, creating an empty Person on first reference.
func (t *Tree) GetOrCreate(name string) PersonID {
	if id, ok := t.index[name]; ok {
		return id
	}
	id := PersonID(len(t.people))
	t.people = append(t.people, &Person{ID: id, Name: name})
	t.index[name] = id
	return id
}

// Lookup returns the Person registered under name without creating it.
func (t *Tree) Lookup(name string) (*Person, bool) {
	id, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.people[id], true
}

// Person returns the Person behind id (nil if the handle is stale).
func (t *Tree) Person(id PersonID) *Person {
	if id < 0 || int(id) >= len(t.people) {
		return nil
	}
	return t.people[id]
}

// Len returns the number of registered persons.
func (t *Tree) Len() int {
	return len(t.people)
}

// Names returns every registered name in insertion order.
func (t *Tree) Names() []string {
	out := make([]string, 0, len(t.people))
	for _, p := range t.people {
		out = append(out, p.Name)
	}
	return out
}

// ParentNames returns the names of name's parents in list order (nil if unknown).
func (t *Tree) ParentNames(name string) []string {
	p, ok := t.Lookup(name)
	if !ok {
		return nil
	}
	return t.names(p.Parents)
}

// ChildNames returns the names of name's children in list order (nil if unknown).
func (t *Tree) ChildNames(name string) []string {
	p, ok := t.Lookup(name)
	if !ok {
		return nil
	}
	return t.names(p.Children)
}

// Clear removes every person. Handles issued before Clear must not be reused.
func (t *Tree) Clear() {
	t.people = nil
	t.index = make(map[string]PersonID)
}

func (t *Tree) names(ids []PersonID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.people[id].Name)
	}
	return out
}
