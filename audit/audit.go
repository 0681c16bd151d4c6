// Package audit runs the one-shot structural checks a freshly built
// knowledge base must pass: an entity-count floor, a taxonomy-depth
// floor under a designated root, and an instance floor for every leaf
// class. It consumes the store read-only and is a construction gate,
// not a per-query concern.
package audit

import (
	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/kb"
)

// Policy configures the structural floors. Zero values disable the
// corresponding check, so partial policies are usable in tests.
type Policy struct {
	MinClasses       int    // minimum number of registered classes
	DepthRoot        string // taxonomy root the depth check descends from
	MinDepth         int    // minimum is_a descent depth from DepthRoot
	MinLeafInstances int    // minimum instances per leaf class

	// LeafClasses restricts the instance floor to the named classes.
	// Empty means every leaf class is checked. Seed ontologies that
	// model abstract leaves (body parts, say) declare their concrete
	// classes here instead of inventing filler instances.
	LeafClasses []string
}

// DefaultPolicy mirrors the seed ontology's construction contract.
func DefaultPolicy() Policy {
	return Policy{
		MinClasses:       20,
		DepthRoot:        "entity",
		MinDepth:         4,
		MinLeafInstances: 2,
	}
}

// Check audits the store against the policy. The first violated
// invariant fails the whole audit with an ErrInvariant-wrapped error
// naming the invariant and the offending values.
func Check(s *kb.Store, policy Policy) error {
	if policy.MinClasses > 0 && s.ClassCount() < policy.MinClasses {
		return errors.NewInvariantError(
			"class count: need at least %d classes, have %d",
			policy.MinClasses, s.ClassCount())
	}

	if policy.MinDepth > 0 {
		depth := MaxDepthFrom(s, policy.DepthRoot)
		if depth < policy.MinDepth {
			return errors.NewInvariantError(
				"taxonomy depth: need an is_a chain of depth at least %d under %q, deepest is %d",
				policy.MinDepth, policy.DepthRoot, depth)
		}
	}

	if policy.MinLeafInstances > 0 {
		checked := policy.LeafClasses
		if len(checked) == 0 {
			for _, class := range s.Classes() {
				if s.IsLeafClass(class) {
					checked = append(checked, class)
				}
			}
		}
		for _, class := range checked {
			if n := len(s.InstancesOf(class)); n < policy.MinLeafInstances {
				return errors.NewInvariantError(
					"leaf instances: leaf class %q needs at least %d instances, has %d",
					class, policy.MinLeafInstances, n)
			}
		}
	}

	return nil
}

// MaxDepthFrom returns the length in nodes of the longest is_a descent
// chain starting at root, walking parent→children over the inverse
// taxonomy. A registered root with no subclasses has depth 1; an
// unregistered root has depth 0. A global visited set would under-report
// multi-parent taxonomies, so the descent guards against cycles with a
// per-path set instead.
func MaxDepthFrom(s *kb.Store, root string) int {
	if !s.IsClass(root) {
		return 0
	}
	return descend(s, root, make(map[string]struct{}))
}

func descend(s *kb.Store, node string, onPath map[string]struct{}) int {
	onPath[node] = struct{}{}
	defer delete(onPath, node)

	best := 1
	for _, child := range s.SubclassesOf(node) {
		if _, cyclic := onPath[child]; cyclic {
			continue
		}
		if d := 1 + descend(s, child, onPath); d > best {
			best = d
		}
	}
	return best
}
