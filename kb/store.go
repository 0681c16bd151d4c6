package kb

import (
	"github.com/PavelShpagin/ontos/errors"
)

// relationEdges is one directed edge multimap with set semantics plus
// insertion-order bookkeeping for deterministic iteration.
type relationEdges struct {
	targets map[string]map[string]struct{} // source -> set(target)
	order   map[string][]string            // source -> targets in insertion order
	sources []string                       // sources in insertion order
}

func newRelationEdges() *relationEdges {
	return &relationEdges{
		targets: make(map[string]map[string]struct{}),
		order:   make(map[string][]string),
	}
}

// add inserts an edge, collapsing duplicates. Reports whether the edge was new.
func (r *relationEdges) add(source, target string) bool {
	set, ok := r.targets[source]
	if !ok {
		set = make(map[string]struct{})
		r.targets[source] = set
		r.sources = append(r.sources, source)
	}
	if _, dup := set[target]; dup {
		return false
	}
	set[target] = struct{}{}
	r.order[source] = append(r.order[source], target)
	return true
}

func (r *relationEdges) has(source, target string) bool {
	_, ok := r.targets[source][target]
	return ok
}

// Store owns the identifier universe and the per-relation edge multimaps.
// Construction is single-threaded; once built the store is read-only and
// safe for concurrent readers without locking.
type Store struct {
	classes       map[string]struct{}
	classOrder    []string
	instanceClass map[string]string // instance -> assigned class
	instanceOrder []string
	edges         map[Relation]*relationEdges
	edgeCount     int
}

// NewStore creates an empty knowledge base with the fixed relation set.
func NewStore() *Store {
	edges := make(map[Relation]*relationEdges, len(Relations()))
	for _, rel := range Relations() {
		edges[rel] = newRelationEdges()
	}
	return &Store{
		classes:       make(map[string]struct{}),
		instanceClass: make(map[string]string),
		edges:         edges,
	}
}

// AddClass registers a class identifier. Idempotent. Fails when the
// identifier is already registered as an instance: the class and instance
// namespaces are disjoint.
func (s *Store) AddClass(id string) error {
	if _, isInst := s.instanceClass[id]; isInst {
		return errors.Wrapf(errors.ErrDuplicateInstance,
			"identifier %q is already an instance, cannot register as class", id)
	}
	if _, ok := s.classes[id]; ok {
		return nil
	}
	s.classes[id] = struct{}{}
	s.classOrder = append(s.classOrder, id)
	return nil
}

// AddEdge inserts a directed edge into the named relation's multimap,
// implicitly registering both endpoints as classes. Re-adding the same
// (relation, source, target) triple is a no-op.
func (s *Store) AddEdge(rel Relation, source, target string) error {
	if !Known(rel) {
		return errors.Newf("unknown relation %q", rel)
	}
	if err := s.AddClass(source); err != nil {
		return err
	}
	if err := s.AddClass(target); err != nil {
		return err
	}
	if s.edges[rel].add(source, target) {
		s.edgeCount++
	}
	return nil
}

// AddInstance registers instance under class and records the assignment.
// Registering the same (instance, class) pair again is a no-op, but
// reassigning an instance to a different class is an error: silent
// reassignment would corrupt the leaf-instance audit.
func (s *Store) AddInstance(instance, class string) error {
	if _, isClass := s.classes[instance]; isClass {
		return errors.Wrapf(errors.ErrDuplicateInstance,
			"identifier %q is already a class, cannot register as instance", instance)
	}
	if prev, ok := s.instanceClass[instance]; ok {
		if prev == class {
			return nil
		}
		return errors.Wrapf(errors.ErrDuplicateInstance,
			"instance %q already assigned to class %q, cannot reassign to %q",
			instance, prev, class)
	}
	if err := s.AddClass(class); err != nil {
		return err
	}
	s.instanceClass[instance] = class
	s.instanceOrder = append(s.instanceOrder, instance)
	return nil
}

// Neighbors returns the direct targets of source under rel, in insertion
// order. Unknown sources (and unknown relations) yield an empty slice,
// never an error: reachability queries over absent identifiers simply
// come back false.
func (s *Store) Neighbors(rel Relation, source string) []string {
	edges, ok := s.edges[rel]
	if !ok {
		return nil
	}
	order := edges.order[source]
	if len(order) == 0 {
		return nil
	}
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// HasEdge reports whether the exact (source, rel, target) triple is stored.
func (s *Store) HasEdge(rel Relation, source, target string) bool {
	edges, ok := s.edges[rel]
	return ok && edges.has(source, target)
}

// Sources returns all sources that have at least one edge under rel, in
// insertion order.
func (s *Store) Sources(rel Relation) []string {
	edges, ok := s.edges[rel]
	if !ok {
		return nil
	}
	out := make([]string, len(edges.sources))
	copy(out, edges.sources)
	return out
}

// SubclassesOf returns all classes whose is_a edges include class as a
// direct parent. Single hop, not transitive.
func (s *Store) SubclassesOf(class string) []string {
	var subs []string
	edges := s.edges[RelIsA]
	for _, child := range edges.sources {
		if edges.has(child, class) {
			subs = append(subs, child)
		}
	}
	return subs
}

// IsLeafClass reports whether class has no recorded subclass.
func (s *Store) IsLeafClass(class string) bool {
	edges := s.edges[RelIsA]
	for _, child := range edges.sources {
		if edges.has(child, class) {
			return false
		}
	}
	return true
}

// InstancesOf returns all instances assigned exactly to class, in
// registration order. Instances of subclasses are not included; callers
// that want them walk the subclass tree first.
func (s *Store) InstancesOf(class string) []string {
	var out []string
	for _, inst := range s.instanceOrder {
		if s.instanceClass[inst] == class {
			out = append(out, inst)
		}
	}
	return out
}

// ClassOf returns the class assigned to instance.
func (s *Store) ClassOf(instance string) (string, bool) {
	class, ok := s.instanceClass[instance]
	return class, ok
}

// IsClass reports whether id is a registered class identifier.
func (s *Store) IsClass(id string) bool {
	_, ok := s.classes[id]
	return ok
}

// IsInstance reports whether id is a registered instance identifier.
func (s *Store) IsInstance(id string) bool {
	_, ok := s.instanceClass[id]
	return ok
}

// Contains reports whether id is known to the store under either kind.
func (s *Store) Contains(id string) bool {
	return s.IsClass(id) || s.IsInstance(id)
}

// Classes returns every registered class identifier in registration order.
func (s *Store) Classes() []string {
	out := make([]string, len(s.classOrder))
	copy(out, s.classOrder)
	return out
}

// Instances returns every registered instance identifier in registration order.
func (s *Store) Instances() []string {
	out := make([]string, len(s.instanceOrder))
	copy(out, s.instanceOrder)
	return out
}

// ClassCount returns the number of registered classes.
func (s *Store) ClassCount() int { return len(s.classOrder) }

// InstanceCount returns the number of registered instances.
func (s *Store) InstanceCount() int { return len(s.instanceOrder) }

// EdgeCount returns the number of distinct stored edges across all relations.
func (s *Store) EdgeCount() int { return s.edgeCount }
