package command

import (
	"fmt"

	"github.com/gyaneshwarpardhi/familytree/internal/family"
)

// Relation codes understood by DefaultRegistry.
const (
	CodeParent        = "P"
	CodeChild         = "C"
	CodeSibling       = "S"
	CodeParentSibling = "PS"
)

// relation is a Handler built from a tree operation and the noun used in its confirmation.
type relation struct {
	code  string
	noun  string
	apply func(tree *family.Tree, subject, object family.PersonID)
}

func (r relation) Code() string { return r.code }

func (r relation) Apply(tree *family.Tree, subject, object family.PersonID) {
	r.apply(tree, subject, object)
}

func (r relation) Describe(subject, object string) string {
	return fmt.Sprintf("%s is %s's %s.", object, subject, r.noun)
}

func defaultHandlers() []Handler {
	return []Handler{
		relation{code: CodeParent, noun: "parent", apply: func(t *family.Tree, s, o family.PersonID) {
			t.AddParentChild(o, s)
		}},
		relation{code: CodeChild, noun: "child", apply: func(t *family.Tree, s, o family.PersonID) {
			t.AddParentChild(s, o)
		}},
		relation{code: CodeSibling, noun: "sibling", apply: func(t *family.Tree, s, o family.PersonID) {
			t.AddSibling(s, o)
		}},
		relation{code: CodeParentSibling, noun: "aunt/uncle", apply: func(t *family.Tree, s, o family.PersonID) {
			t.AddParentSibling(s, o)
		}},
	}
}
