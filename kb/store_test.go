package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelShpagin/ontos/errors"
)

func TestAddClassIdempotent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddClass("mammal"))
	require.NoError(t, s.AddClass("mammal"))

	assert.Equal(t, 1, s.ClassCount())
	assert.True(t, s.IsClass("mammal"))
	assert.False(t, s.IsInstance("mammal"))
}

func TestAddEdgeRegistersEndpointsAndCollapsesDuplicates(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddEdge(RelIsA, "dog", "canine"))
	require.NoError(t, s.AddEdge(RelIsA, "dog", "canine"))

	assert.True(t, s.IsClass("dog"))
	assert.True(t, s.IsClass("canine"))
	assert.Equal(t, 1, s.EdgeCount())
	assert.Equal(t, []string{"canine"}, s.Neighbors(RelIsA, "dog"))
}

func TestAddEdgeUnknownRelation(t *testing.T) {
	s := NewStore()
	err := s.AddEdge(Relation("sibling_of"), "a", "b")
	require.Error(t, err)
}

func TestNeighborsPreserveInsertionOrder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddEdge(RelPartOf, "tail", "mammal"))
	require.NoError(t, s.AddEdge(RelPartOf, "tail", "reptile"))
	require.NoError(t, s.AddEdge(RelPartOf, "tail", "mammal")) // dup, must not reorder

	assert.Equal(t, []string{"mammal", "reptile"}, s.Neighbors(RelPartOf, "tail"))
}

func TestNeighborsUnknownSourceIsEmptyNotError(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Neighbors(RelIsA, "ghost"))
}

func TestAddInstanceAssignsExactlyOneClass(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddInstance("rex", "dog"))
	require.NoError(t, s.AddInstance("rex", "dog")) // same assignment, no-op

	err := s.AddInstance("rex", "cat")
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateInstance(err))

	class, ok := s.ClassOf("rex")
	require.True(t, ok)
	assert.Equal(t, "dog", class)
}

func TestClassAndInstanceNamespacesAreDisjoint(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddClass("dog"))

	err := s.AddInstance("dog", "canine")
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateInstance(err))

	require.NoError(t, s.AddInstance("rex", "dog"))
	err = s.AddClass("rex")
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateInstance(err))
}

func TestSubclassesOfSingleHop(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddEdge(RelIsA, "dog", "canine"))
	require.NoError(t, s.AddEdge(RelIsA, "wolf", "canine"))
	require.NoError(t, s.AddEdge(RelIsA, "canine", "mammal"))

	assert.Equal(t, []string{"dog", "wolf"}, s.SubclassesOf("canine"))
	// single hop: dog is not a direct subclass of mammal
	assert.Equal(t, []string{"canine"}, s.SubclassesOf("mammal"))

	assert.True(t, s.IsLeafClass("dog"))
	assert.False(t, s.IsLeafClass("canine"))
}

func TestInstancesOfExactClassOnly(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddEdge(RelIsA, "dog", "canine"))
	require.NoError(t, s.AddInstance("rex", "dog"))
	require.NoError(t, s.AddInstance("bim", "dog"))
	require.NoError(t, s.AddInstance("akela", "wolf"))

	assert.Equal(t, []string{"rex", "bim"}, s.InstancesOf("dog"))
	// exact match: subclass instances are not lifted into the parent
	assert.Empty(t, s.InstancesOf("canine"))
	assert.Empty(t, s.InstancesOf("unregistered"))
}

func TestClassOfUnknownInstance(t *testing.T) {
	s := NewStore()
	_, ok := s.ClassOf("nobody")
	assert.False(t, ok)
}
