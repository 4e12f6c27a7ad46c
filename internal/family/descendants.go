package family

// CountDescendants returns len(children) plus the descendant count of every child.
//
// The sum is not deduplicated: a person reachable through two children is counted twice.
// There is no cycle guard, so a cycle below id never terminates.
func (t *Tree) CountDescendants(id PersonID) int {
	p := t.people[id]
	if len(p.Children) == 0 {
		return 0
	}
	count := len(p.Children)
	for _, child := range p.Children {
		count += t.CountDescendants(child)
	}
	return count
}

// Roots returns every person without parents, in registry order.
func (t *Tree) Roots() []PersonID {
	var roots []PersonID
	for _, p := range t.people {
		if len(p.Parents) == 0 {
			roots = append(roots, p.ID)
		}
	}
	return roots
}

// OldestWithMostDescendants picks the root with the largest CountDescendants.
// Ties go to the root registered first. ok is false when there is no root.
func (t *Tree) OldestWithMostDescendants() (best PersonID, ok bool) {
	bestCount := -1
	for _, id := range t.Roots() {
		n := t.CountDescendants(id)
		if n > bestCount {
			best, bestCount, ok = id, n, true
		}
	}
	return best, ok
}
