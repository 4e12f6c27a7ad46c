package command_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/familytree/internal/command"
	"github.com/gyaneshwarpardhi/familytree/internal/family"
	"github.com/gyaneshwarpardhi/familytree/internal/metrics"
)

func newInterpreter(t *testing.T) (*command.Interpreter, *family.Tree) {
	t.Helper()
	tr := family.NewTree()
	return command.NewInterpreter(tr, nil, nil), tr
}

func run(t *testing.T, in *command.Interpreter, lines ...string) {
	t.Helper()
	for _, l := range lines {
		_, err := in.Process(l)
		require.NoError(t, err, l)
	}
}

func TestProcess_Parent(t *testing.T) {
	in, tr := newInterpreter(t)

	msg, err := in.Process("Pavel P Viktor")
	require.NoError(t, err)
	assert.Equal(t, "Viktor is Pavel's parent.", msg)
	assert.Contains(t, tr.ParentNames("Pavel"), "Viktor")
	assert.Contains(t, tr.ChildNames("Viktor"), "Pavel")
}

func TestProcess_Child(t *testing.T) {
	in, tr := newInterpreter(t)

	msg, err := in.Process("Tanya C Gabi")
	require.NoError(t, err)
	assert.Equal(t, "Gabi is Tanya's child.", msg)
	assert.Contains(t, tr.ChildNames("Tanya"), "Gabi")
	assert.Contains(t, tr.ParentNames("Gabi"), "Tanya")
}

func TestProcess_Sibling(t *testing.T) {
	in, tr := newInterpreter(t)
	run(t, in, "Pavel P Viktor", "Tanya P Viktor")

	msg, err := in.Process("Pavel S Tanya")
	require.NoError(t, err)
	assert.Equal(t, "Tanya is Pavel's sibling.", msg)
	assert.ElementsMatch(t, tr.ParentNames("Pavel"), tr.ParentNames("Tanya"))
}

func TestProcess_SiblingDifferentParents(t *testing.T) {
	in, tr := newInterpreter(t)
	run(t, in, "A P X", "B P Y", "A S B")

	assert.ElementsMatch(t, []string{"X", "Y"}, tr.ParentNames("A"))
	assert.ElementsMatch(t, tr.ParentNames("A"), tr.ParentNames("B"))
}

func TestProcess_ParentSibling(t *testing.T) {
	in, tr := newInterpreter(t)
	run(t, in, "Tanya P Viktor", "Viktor P Vera")

	msg, err := in.Process("Tanya PS Valera")
	require.NoError(t, err)
	assert.Equal(t, "Valera is Tanya's aunt/uncle.", msg)
	assert.ElementsMatch(t, tr.ParentNames("Viktor"), tr.ParentNames("Valera"))
}

func TestProcess_InvalidShapeChangesNothing(t *testing.T) {
	in, tr := newInterpreter(t)
	before := testutil.ToFloat64(metrics.InvalidCommands.WithLabelValues("shape"))

	for _, line := range []string{"", "Pavel", "Pavel P", "Pavel P Viktor Vera"} {
		_, err := in.Process(line)
		assert.ErrorIs(t, err, command.ErrInvalidCommand, line)
	}

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, before+4, testutil.ToFloat64(metrics.InvalidCommands.WithLabelValues("shape")))
}

func TestProcess_InvalidRelationStillRegistersNames(t *testing.T) {
	in, tr := newInterpreter(t)
	before := testutil.ToFloat64(metrics.InvalidCommands.WithLabelValues("relation"))

	_, err := in.Process("Pavel X Viktor")
	assert.ErrorIs(t, err, command.ErrInvalidRelation)

	assert.Equal(t, []string{"Pavel", "Viktor"}, tr.Names())
	assert.Empty(t, tr.ParentNames("Pavel"))
	assert.Empty(t, tr.ChildNames("Pavel"))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.InvalidCommands.WithLabelValues("relation")))
}

func TestProcess_RelationCodeIsCaseSensitive(t *testing.T) {
	in, _ := newInterpreter(t)
	_, err := in.Process("Pavel p Viktor")
	assert.ErrorIs(t, err, command.ErrInvalidRelation)
}

func TestProcess_CountsAppliedCommands(t *testing.T) {
	in, _ := newInterpreter(t)
	before := testutil.ToFloat64(metrics.CommandsProcessed.WithLabelValues("C", metrics.StatusApplied))

	run(t, in, "A C B", "A C D")

	assert.Equal(t, before+2, testutil.ToFloat64(metrics.CommandsProcessed.WithLabelValues("C", metrics.StatusApplied)))
}

func TestProcess_OldestWithMostDescendants(t *testing.T) {
	in, tr := newInterpreter(t)
	run(t, in,
		"Pieter P Tinus",
		"Pieter P Petra",
		"Pieter C Lila",
		"Lila P Emily",
	)

	id, ok := tr.OldestWithMostDescendants()
	require.True(t, ok)
	assert.Equal(t, "Tinus", tr.Person(id).Name)
}

func TestProcess_Tree(t *testing.T) {
	in, tr := newInterpreter(t)
	assert.Same(t, tr, in.Tree())
}
