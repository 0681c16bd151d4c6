package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelShpagin/ontos/kb"
	ontostest "github.com/PavelShpagin/ontos/internal/testing"
)

func TestBuildNodesAndLinks(t *testing.T) {
	store := ontostest.CreateTestStore(t)
	g := Build(store, "test export")

	assert.Equal(t, store.ClassCount()+store.InstanceCount(), len(g.Nodes))
	assert.Equal(t, len(g.Nodes), g.Meta.Stats.TotalNodes)
	assert.Equal(t, len(g.Links), g.Meta.Stats.TotalEdges)

	nodeByID := make(map[string]Node)
	for _, node := range g.Nodes {
		nodeByID[node.ID] = node
	}
	require.Contains(t, nodeByID, "dog")
	assert.Equal(t, "class", nodeByID["dog"].Type)
	require.Contains(t, nodeByID, "rex")
	assert.Equal(t, "instance", nodeByID["rex"].Type)

	// every link endpoint must be an exported node
	for _, link := range g.Links {
		assert.Contains(t, nodeByID, link.Source, "link source missing from nodes")
		assert.Contains(t, nodeByID, link.Target, "link target missing from nodes")
	}
}

func TestBuildInstanceLinks(t *testing.T) {
	store := ontostest.CreateTestStore(t)
	g := Build(store, "test export")

	var found bool
	for _, link := range g.Links {
		if link.Source == "rex" && link.Target == "dog" {
			assert.Equal(t, string(kb.RelInstanceOf), link.Type)
			found = true
		}
	}
	assert.True(t, found, "instance assignment must surface as an instance_of link")
}

func TestBuildDeterministic(t *testing.T) {
	store := ontostest.CreateTestStore(t)
	first := Build(store, "test export")
	second := Build(store, "test export")

	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Links, second.Links)
}

func TestBuildLegends(t *testing.T) {
	store := ontostest.CreateTestStore(t)
	g := Build(store, "test export")

	types := make(map[string]int)
	for _, info := range g.Meta.NodeTypes {
		types[info.Type] = info.Count
	}
	assert.Equal(t, store.ClassCount(), types["class"])
	assert.Equal(t, store.InstanceCount(), types["instance"])

	var sawIsA bool
	for _, info := range g.Meta.RelationshipTypes {
		if info.Type == string(kb.RelIsA) {
			sawIsA = true
			assert.Equal(t, "Is A", info.Label)
			assert.NotZero(t, info.Count)
			require.NotNil(t, info.LinkDistance)
		}
	}
	assert.True(t, sawIsA, "is_a relation must appear in the legend")
}
