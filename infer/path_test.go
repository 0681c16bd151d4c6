package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ontostest "github.com/PavelShpagin/ontos/internal/testing"
	"github.com/PavelShpagin/ontos/kb"
)

// assertValidChain checks that every step is a real stored fact and that
// the steps chain head-to-tail from a to b, honoring Reversed hops.
func assertValidChain(t *testing.T, s *kb.Store, path []Step, a, b string) {
	t.Helper()
	cur := a
	for i, step := range path {
		if step.Relation == kb.RelInstanceOf {
			class, ok := s.ClassOf(step.Source)
			require.True(t, ok, "step %d: %q is not an instance", i, step.Source)
			require.Equal(t, step.Target, class, "step %d: wrong assignment", i)
		} else {
			require.True(t, s.HasEdge(step.Relation, step.Source, step.Target),
				"step %d: %s -%s-> %s is not a stored edge", i, step.Source, step.Relation, step.Target)
		}
		if step.Reversed {
			require.Equal(t, cur, step.Target, "step %d breaks the chain", i)
			cur = step.Source
		} else {
			require.Equal(t, cur, step.Source, "step %d breaks the chain", i)
			cur = step.Target
		}
	}
	require.Equal(t, b, cur, "chain must end at %q", b)
}

func TestAnyPathFollowsStoredDirections(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	path := AnyPath(s, "eye", "vertebrate")
	require.Len(t, path, 2)
	assert.Equal(t, Step{Source: "eye", Relation: kb.RelPartOf, Target: "head"}, path[0])
	assert.Equal(t, Step{Source: "head", Relation: kb.RelPartOf, Target: "vertebrate"}, path[1])
	assertValidChain(t, s, path, "eye", "vertebrate")

	// dog -> canine -> mammal -> vertebrate -> animal
	path = AnyPath(s, "dog", "animal")
	require.Len(t, path, 4)
	for _, step := range path {
		assert.Equal(t, kb.RelIsA, step.Relation)
		assert.False(t, step.Reversed)
	}
	assertValidChain(t, s, path, "dog", "animal")
}

func TestAnyPathUnreachableReturnsNil(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	// fur has no outgoing edges, nothing is reachable from it
	assert.Nil(t, AnyPath(s, "fur", "dog"))
	// direction discipline: stored edges never point from whole to part
	assert.Nil(t, AnyPath(s, "dog", "fur"))
	assert.Nil(t, AnyPath(s, "ghost", "dog"))
}

func TestAnyPathSameEndpointsIsEmptyNotNil(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	path := AnyPath(s, "dog", "dog")
	require.NotNil(t, path)
	assert.Empty(t, path)
}

func TestAnyPathTieBreaksByRelationOrder(t *testing.T) {
	s := kb.NewStore()
	// two one-hop paths exist; is_a registers before part_of in the
	// relation enumeration, so BFS must discover it first
	require.NoError(t, s.AddEdge(kb.RelPartOf, "a", "b"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "a", "b"))

	path := AnyPath(s, "a", "b")
	require.Len(t, path, 1)
	assert.Equal(t, kb.RelIsA, path[0].Relation)
}

func TestAnyPathTerminatesOnCycle(t *testing.T) {
	s := kb.NewStore()
	require.NoError(t, s.AddEdge(kb.RelDependsOn, "x", "y"))
	require.NoError(t, s.AddEdge(kb.RelDependsOn, "y", "x"))

	assert.Nil(t, AnyPath(s, "x", "z"))
	path := AnyPath(s, "x", "y")
	require.Len(t, path, 1)
}

func TestConnectedIsSymmetric(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	pairs := [][2]string{
		{"rex", "fur"},
		{"dog", "fur"},
		{"chirpy", "feather"},
		{"eye", "tail"},
		{"dog", "dog"},
	}
	for _, p := range pairs {
		assert.Equal(t, Connected(s, p[0], p[1]), Connected(s, p[1], p[0]),
			"connectivity must be symmetric for (%s, %s)", p[0], p[1])
	}
}

func TestConnectedCrossesRelationsAndInstanceEdges(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	// rex ∈ dog ⊑ ... ⊑ mammal, tail ⋐ mammal, tail ⊸ fur
	assert.True(t, Connected(s, "rex", "fur"))
	assert.True(t, Connected(s, "chirpy", "feather"))
	assert.False(t, Connected(s, "dog", "unicorn"))
	assert.False(t, Connected(s, "unicorn", "dog"))
}

func TestConnectedPathWitness(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	// dog ⊑ canine ⊑ mammal, then against the part edge to tail, then to fur
	path := ConnectedPath(s, "dog", "fur")
	require.NotNil(t, path)
	assert.Len(t, path, 4)
	assertValidChain(t, s, path, "dog", "fur")
	last := path[len(path)-1]
	assert.Equal(t, "fur", last.Target)
	assert.Equal(t, kb.RelHasProperty, last.Relation)

	assert.Nil(t, ConnectedPath(s, "dog", "unicorn"))

	same := ConnectedPath(s, "rex", "rex")
	require.NotNil(t, same)
	assert.Empty(t, same)
}

func TestConnectedPathThroughInstanceAssignment(t *testing.T) {
	s := ontostest.CreateTestStore(t)

	path := ConnectedPath(s, "rex", "bim")
	require.NotNil(t, path)
	assertValidChain(t, s, path, "rex", "bim")
	// rex ∈ dog, bim ∈ dog: two assignment hops
	require.Len(t, path, 2)
	assert.Equal(t, kb.RelInstanceOf, path[0].Relation)
	assert.Equal(t, kb.RelInstanceOf, path[1].Relation)
}
