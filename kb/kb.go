// Package kb holds the in-memory knowledge base: the identifier universe
// (classes, instances, instance→class assignment) and one directed edge
// multimap per named relation.
//
// The store is built once from seed edge lists and treated as read-only
// afterwards. All lookups are O(1) per (source, relation), and every
// enumeration the store hands out preserves insertion order so that the
// traversals in package infer are deterministic across runs.
package kb

// Relation names a directed edge kind in the knowledge base.
type Relation string

// The fixed relation enumeration. Edges of any other relation are rejected.
const (
	// RelIsA is the taxonomy relation, child → parent. Interpreted as a
	// DAG; traversals guard against cycles regardless.
	RelIsA Relation = "is_a"

	// RelPartOf is the composition relation, part → whole.
	RelPartOf Relation = "part_of"

	// RelDependsOn is the prerequisite relation, dependent → dependency.
	RelDependsOn Relation = "depends_on"

	// RelHasProperty is the attribute relation, subject → property.
	RelHasProperty Relation = "has_property"
)

// RelInstanceOf labels instance→class assignment steps in reconstructed
// paths and exported graphs. It is not an edge multimap relation: the
// assignment lives in the store's instance table, so RelInstanceOf is
// excluded from Relations() and rejected by AddEdge.
const RelInstanceOf Relation = "instance_of"

// Relations returns the fixed relation enumeration in registration order.
// This order is the outer iteration order for union-of-relations
// traversals, so it is part of the determinism contract.
func Relations() []Relation {
	return []Relation{RelIsA, RelPartOf, RelDependsOn, RelHasProperty}
}

// Known reports whether rel is part of the fixed enumeration.
func Known(rel Relation) bool {
	switch rel {
	case RelIsA, RelPartOf, RelDependsOn, RelHasProperty:
		return true
	}
	return false
}
