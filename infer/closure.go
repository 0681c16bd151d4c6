package infer

import (
	"github.com/PavelShpagin/ontos/kb"
)

// Reachable reports whether target is reachable from start following
// directed edges of rel, zero or more hops. Reflexive: start == target
// is true even for identifiers absent from the store.
func Reachable(s *kb.Store, rel kb.Relation, start, target string) bool {
	if start == target {
		return true
	}
	visited := make(map[string]struct{})
	queue := []string{start}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}
		for _, next := range s.Neighbors(rel, node) {
			if next == target {
				return true
			}
			queue = append(queue, next)
		}
	}
	return false
}

// IsA reports whether ancestor is reachable from child over the taxonomy.
func IsA(s *kb.Store, child, ancestor string) bool {
	return Reachable(s, kb.RelIsA, child, ancestor)
}

// DependsOn reports whether b is reachable from a over the prerequisite
// relation.
func DependsOn(s *kb.Store, a, b string) bool {
	return Reachable(s, kb.RelDependsOn, a, b)
}

// PartOf reports whether part is part of whole, transitively. Instance
// operands are supported by first trying the direct edges, then lifting
// each instance to its assigned class and retrying. Lifting is one-shot:
// instances are never assigned to other instances, so there is no chain
// to follow.
func PartOf(s *kb.Store, part, whole string) bool {
	if Reachable(s, kb.RelPartOf, part, whole) {
		return true
	}
	liftedPart := lift(s, part)
	liftedWhole := lift(s, whole)
	if liftedPart == part && liftedWhole == whole {
		return false
	}
	return Reachable(s, kb.RelPartOf, liftedPart, liftedWhole)
}

// lift replaces an instance identifier with its assigned class; any other
// identifier passes through unchanged.
func lift(s *kb.Store, id string) string {
	if class, ok := s.ClassOf(id); ok {
		return class
	}
	return id
}

// HasPart reports whether (part, whole) is a direct part_of edge. This is
// the strict inverse view; see HasPartTransitive for the inferred one.
func HasPart(s *kb.Store, whole, part string) bool {
	return s.HasEdge(kb.RelPartOf, part, whole)
}

// HasPartTransitive reports whether part belongs to whole under part
// inference. A single BFS from the whole combines the edge-generating
// rules per visited node:
//
//   - direct parts of the node (inverse part_of edges); a found part is
//     accepted when it equals the target or the target is_a-descends
//     from it (a more general part concept subsumes a specific one)
//   - is_a subclasses of the node (their parts count for the node)
//   - the found parts themselves (a part's own parts, transitively)
//
// Acceptance always runs through a direct part_of edge plus an optional
// taxonomy descent from the target, so an unrelated class that happens
// to share a part name is never reachable.
func HasPartTransitive(s *kb.Store, whole, part string) bool {
	visited := make(map[string]struct{})
	queue := []string{whole}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}

		for _, p := range directParts(s, node) {
			if p == part || IsA(s, part, p) {
				return true
			}
			// nested parts
			queue = append(queue, p)
		}

		queue = append(queue, s.SubclassesOf(node)...)
	}
	return false
}

// directParts returns the sources of part_of edges pointing at whole, in
// the store's deterministic source order.
func directParts(s *kb.Store, whole string) []string {
	var parts []string
	for _, src := range s.Sources(kb.RelPartOf) {
		if s.HasEdge(kb.RelPartOf, src, whole) {
			parts = append(parts, src)
		}
	}
	return parts
}
