package family

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// DefaultIndent is the number of spaces written per depth level.
const DefaultIndent = 4

// Printer writes a vertical pedigree chart: ancestors above the start person,
// descendants below, each name indented by its depth.
type Printer struct {
	Tree    *Tree
	Indent  int                   // spaces per level; DefaultIndent when <= 0
	Compare func(a, b string) int // name order; strings.Compare when nil
}

// PrintFrom prints the chart for start at depth 0 with a fresh visited set.
func (pr *Printer) PrintFrom(w io.Writer, start PersonID) error {
	return pr.Print(w, start, 0, make(map[string]struct{}))
}

// Print walks the graph depth first from start.
//
// A visited person is skipped entirely. Otherwise the person is marked, its parents are
// printed (name order, depth-1), then its own line, then its children (name order, depth+1).
// visited is shared by the whole walk so nobody is printed twice. Lines at negative depth
// get no indentation.
func (pr *Printer) Print(w io.Writer, start PersonID, depth int, visited map[string]struct{}) error {
	p := pr.Tree.Person(start)
	if p == nil {
		return fmt.Errorf("print tree: unknown person id %d", start)
	}
	if _, seen := visited[p.Name]; seen {
		return nil
	}
	visited[p.Name] = struct{}{}

	for _, parent := range pr.sorted(p.Parents) {
		if _, seen := visited[parent.Name]; seen {
			continue
		}
		if err := pr.Print(w, parent.ID, depth-1, visited); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat(" ", pr.indent(depth))+p.Name); err != nil {
		return fmt.Errorf("print tree: %w", err)
	}

	for _, child := range pr.sorted(p.Children) {
		if _, seen := visited[child.Name]; seen {
			continue
		}
		if err := pr.Print(w, child.ID, depth+1, visited); err != nil {
			return err
		}
	}
	return nil
}

func (pr *Printer) indent(depth int) int {
	width := pr.Indent
	if width <= 0 {
		width = DefaultIndent
	}
	return max(depth*width, 0)
}

func (pr *Printer) sorted(ids []PersonID) []*Person {
	cmp := pr.Compare
	if cmp == nil {
		cmp = strings.Compare
	}
	out := make([]*Person, 0, len(ids))
	for _, id := range ids {
		out = append(out, pr.Tree.Person(id))
	}
	slices.SortStableFunc(out, func(a, b *Person) int {
		return cmp(a.Name, b.Name)
	})
	return out
}
