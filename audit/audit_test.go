package audit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/kb"
)

// chainStore builds root -> c1 -> c2 -> ... with n classes total and
// enough instances on the single leaf to satisfy the default floor.
func chainStore(t *testing.T, n int) *kb.Store {
	t.Helper()
	s := kb.NewStore()
	require.NoError(t, s.AddClass("root"))
	prev := "root"
	for i := 1; i < n; i++ {
		cur := fmt.Sprintf("c%d", i)
		require.NoError(t, s.AddEdge(kb.RelIsA, cur, prev))
		prev = cur
	}
	require.NoError(t, s.AddInstance(prev+"_a", prev))
	require.NoError(t, s.AddInstance(prev+"_b", prev))
	return s
}

func TestCheckClassCountFloor(t *testing.T) {
	s := chainStore(t, 19)
	policy := Policy{MinClasses: 20}

	err := Check(s, policy)
	require.Error(t, err)
	assert.True(t, errors.IsInvariant(err))
	assert.Contains(t, err.Error(), "class count")
	assert.Contains(t, err.Error(), "19")

	assert.NoError(t, Check(chainStore(t, 20), policy))
}

func TestCheckDepthFloor(t *testing.T) {
	s := chainStore(t, 20)
	// chain of 20 classes gives depth 20 from root
	assert.NoError(t, Check(s, Policy{DepthRoot: "root", MinDepth: 4}))

	shallow := chainStore(t, 20)
	err := Check(shallow, Policy{DepthRoot: "root", MinDepth: 25})
	require.Error(t, err)
	assert.True(t, errors.IsInvariant(err))
	assert.Contains(t, err.Error(), "taxonomy depth")
}

func TestCheckDepthExactlyAtFloorPasses(t *testing.T) {
	s := kb.NewStore()
	require.NoError(t, s.AddEdge(kb.RelIsA, "b", "a"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "c", "b"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "d", "c"))

	require.Equal(t, 4, MaxDepthFrom(s, "a"))
	assert.NoError(t, Check(s, Policy{DepthRoot: "a", MinDepth: 4}))
	assert.Error(t, Check(s, Policy{DepthRoot: "a", MinDepth: 5}))
}

func TestCheckLeafInstanceFloorNamesTheClass(t *testing.T) {
	s := chainStore(t, 5)
	require.NoError(t, s.AddEdge(kb.RelIsA, "starved", "root"))
	require.NoError(t, s.AddInstance("only_one", "starved"))

	err := Check(s, Policy{MinLeafInstances: 2})
	require.Error(t, err)
	assert.True(t, errors.IsInvariant(err))
	assert.Contains(t, err.Error(), `"starved"`)
	assert.Contains(t, err.Error(), "has 1")
}

func TestCheckLeafInstanceFloorRestrictedToNamedClasses(t *testing.T) {
	s := chainStore(t, 5)
	require.NoError(t, s.AddEdge(kb.RelIsA, "abstract_leaf", "root"))

	// abstract_leaf has no instances, but the policy only audits c4
	policy := Policy{MinLeafInstances: 2, LeafClasses: []string{"c4"}}
	assert.NoError(t, Check(s, policy))

	policy.LeafClasses = []string{"c4", "abstract_leaf"}
	err := Check(s, policy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"abstract_leaf"`)
}

func TestCheckZeroPolicyDisablesChecks(t *testing.T) {
	s := kb.NewStore()
	assert.NoError(t, Check(s, Policy{}))
}

func TestMaxDepthFrom(t *testing.T) {
	s := kb.NewStore()
	require.NoError(t, s.AddEdge(kb.RelIsA, "b", "a"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "c", "b"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "x", "a"))

	assert.Equal(t, 3, MaxDepthFrom(s, "a"))
	assert.Equal(t, 2, MaxDepthFrom(s, "b"))
	assert.Equal(t, 1, MaxDepthFrom(s, "x"))
	assert.Equal(t, 0, MaxDepthFrom(s, "unregistered"))
}

func TestMaxDepthFromMultiParentTaxonomy(t *testing.T) {
	s := kb.NewStore()
	// diamond: d descends from a both directly and through b -> c
	require.NoError(t, s.AddEdge(kb.RelIsA, "b", "a"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "c", "b"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "d", "a"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "d", "c"))

	// longest chain a > b > c > d
	assert.Equal(t, 4, MaxDepthFrom(s, "a"))
}

func TestMaxDepthFromTerminatesOnCyclicTaxonomy(t *testing.T) {
	s := kb.NewStore()
	require.NoError(t, s.AddEdge(kb.RelIsA, "b", "a"))
	require.NoError(t, s.AddEdge(kb.RelIsA, "a", "b"))

	// malformed input, but the audit must still return
	depth := MaxDepthFrom(s, "a")
	assert.GreaterOrEqual(t, depth, 2)
}
