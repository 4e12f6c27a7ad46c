package family

// AddParentChild links parent and child in both directions. Existing links are kept as is.
func (t *Tree) AddParentChild(parent, child PersonID) {
	c, p := t.people[child], t.people[parent]
	if !c.hasParent(parent) {
		c.Parents = append(c.Parents, parent)
	}
	if !p.hasChild(child) {
		p.Children = append(p.Children, child)
	}
}

// AddSibling gives a and b the union of their parents.
//
// The work happens in two phases. First every parent of a is linked to b, then every
// parent of b (now including a's) is linked to a. Then each side's Parents list is merged
// with the other's without touching Children. Each loop ranges over the list as it was
// when the loop started.
func (t *Tree) AddSibling(a, b PersonID) {
	pa, pb := t.people[a], t.people[b]
	for _, parent := range pa.Parents {
		t.AddParentChild(parent, b)
	}
	for _, parent := range pb.Parents {
		t.AddParentChild(parent, a)
	}

	mergeParents(pa, pb.Parents)
	mergeParents(pb, pa.Parents)
}

// AddParentSibling makes auntUncle a sibling of each of person's parents, which in turn
// gives auntUncle the grandparents of person.
func (t *Tree) AddParentSibling(person, auntUncle PersonID) {
	for _, parent := range t.people[person].Parents {
		t.AddSibling(parent, auntUncle)
	}
}

// mergeParents appends the ids of src missing from dst.Parents, in src order.
func mergeParents(dst *Person, src []PersonID) {
	missing := make([]PersonID, 0, len(src))
	for _, id := range src {
		if !dst.hasParent(id) && !contains(missing, id) {
			missing = append(missing, id)
		}
	}
	dst.Parents = append(dst.Parents, missing...)
}
