package infer

import (
	"github.com/PavelShpagin/ontos/kb"
)

// Step is one labeled edge in a reconstructed path. Source, Relation and
// Target always name a real stored edge (or an instance→class
// assignment, labeled kb.RelInstanceOf). Reversed marks steps that an
// undirected traversal walked against the stored direction; directed
// queries never set it.
type Step struct {
	Source   string      `json:"source"`
	Relation kb.Relation `json:"relation"`
	Target   string      `json:"target"`
	Reversed bool        `json:"reversed,omitempty"`
}

// hop records how BFS first reached a node, for predecessor-pointer
// path reconstruction.
type hop struct {
	prev string
	step Step
}

// AnyPath returns the shortest edge sequence from a to b over the union
// of all relations, directed as stored. Among equal-length paths the one
// discovered first wins; discovery order is the relation registration
// order, then target insertion order, so the result is deterministic.
//
// Returns nil when b is unreachable from a, and an empty non-nil path
// when a == b.
func AnyPath(s *kb.Store, a, b string) []Step {
	if a == b {
		return []Step{}
	}
	prev := map[string]hop{a: {}}
	queue := []string{a}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == b {
			return reconstruct(prev, a, b)
		}
		for _, rel := range kb.Relations() {
			for _, next := range s.Neighbors(rel, node) {
				if _, seen := prev[next]; seen {
					continue
				}
				prev[next] = hop{prev: node, step: Step{Source: node, Relation: rel, Target: next}}
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// Connected reports whether any chain of facts links a and b, treating
// every edge of every relation as undirected and instance↔class
// assignments as edges too. This is intentionally laxer than AnyPath:
// no relation-direction discipline at all.
func Connected(s *kb.Store, a, b string) bool {
	if a == b {
		return true
	}
	visited := make(map[string]struct{})
	queue := []string{a}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		for _, edge := range undirectedNeighbors(s, node) {
			if edge.node == b {
				return true
			}
			if _, seen := visited[edge.node]; !seen {
				queue = append(queue, edge.node)
			}
		}
	}
	return false
}

// ConnectedPath returns a shortest witness chain for Connected(a, b),
// with each step recorded as the stored edge plus a Reversed flag for
// hops walked against edge direction. Returns nil when a and b are not
// connected, and an empty non-nil path when a == b.
func ConnectedPath(s *kb.Store, a, b string) []Step {
	if a == b {
		return []Step{}
	}
	prev := map[string]hop{a: {}}
	queue := []string{a}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == b {
			return reconstruct(prev, a, b)
		}
		for _, edge := range undirectedNeighbors(s, node) {
			if _, seen := prev[edge.node]; seen {
				continue
			}
			prev[edge.node] = hop{prev: node, step: edge.step}
			queue = append(queue, edge.node)
		}
	}
	return nil
}

// reconstruct walks predecessor pointers backward from b then reverses.
func reconstruct(prev map[string]hop, a, b string) []Step {
	var path []Step
	for cur := b; cur != a; cur = prev[cur].prev {
		path = append(path, prev[cur].step)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// undirectedEdge pairs a neighbor with the stored edge that reaches it.
type undirectedEdge struct {
	node string
	step Step
}

// undirectedNeighbors generates every neighbor of node across all
// relations in both directions, plus instance↔class hops, in the
// store's deterministic iteration order.
func undirectedNeighbors(s *kb.Store, node string) []undirectedEdge {
	var out []undirectedEdge
	for _, rel := range kb.Relations() {
		for _, next := range s.Neighbors(rel, node) {
			out = append(out, undirectedEdge{
				node: next,
				step: Step{Source: node, Relation: rel, Target: next},
			})
		}
		for _, src := range s.Sources(rel) {
			if s.HasEdge(rel, src, node) {
				out = append(out, undirectedEdge{
					node: src,
					step: Step{Source: src, Relation: rel, Target: node, Reversed: true},
				})
			}
		}
	}
	if class, ok := s.ClassOf(node); ok {
		out = append(out, undirectedEdge{
			node: class,
			step: Step{Source: node, Relation: kb.RelInstanceOf, Target: class},
		})
	}
	for _, inst := range s.InstancesOf(node) {
		out = append(out, undirectedEdge{
			node: inst,
			step: Step{Source: inst, Relation: kb.RelInstanceOf, Target: node, Reversed: true},
		})
	}
	return out
}
