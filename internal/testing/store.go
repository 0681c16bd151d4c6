// Package testing provides shared test fixtures.
package testing

import (
	"testing"

	"github.com/PavelShpagin/ontos/kb"
)

// CreateTestStore builds the small animal ontology most tests run
// against: a five-level taxonomy, body-part composition, property facts
// and a pair of named instances.
func CreateTestStore(t *testing.T) *kb.Store {
	t.Helper()

	s := kb.NewStore()

	type edge struct {
		rel      kb.Relation
		src, dst string
	}
	edges := []edge{
		{kb.RelIsA, "dog", "canine"},
		{kb.RelIsA, "wolf", "canine"},
		{kb.RelIsA, "cat", "feline"},
		{kb.RelIsA, "canine", "mammal"},
		{kb.RelIsA, "feline", "mammal"},
		{kb.RelIsA, "mammal", "vertebrate"},
		{kb.RelIsA, "bird", "vertebrate"},
		{kb.RelIsA, "sparrow", "bird"},
		{kb.RelIsA, "vertebrate", "animal"},

		{kb.RelPartOf, "eye", "head"},
		{kb.RelPartOf, "head", "vertebrate"},
		{kb.RelPartOf, "tail", "mammal"},
		{kb.RelPartOf, "wing", "bird"},
		{kb.RelPartOf, "feather", "bird"},

		{kb.RelDependsOn, "wing", "feather"},

		{kb.RelHasProperty, "tail", "fur"},
		{kb.RelHasProperty, "wing", "feather"},
	}
	for _, e := range edges {
		if err := s.AddEdge(e.rel, e.src, e.dst); err != nil {
			t.Fatalf("failed to add edge %s -%s-> %s: %v", e.src, e.rel, e.dst, err)
		}
	}

	// ordered pairs, not a map: tests assert insertion-order iteration
	instances := []struct {
		inst  string
		class string
	}{
		{"rex", "dog"},
		{"bim", "dog"},
		{"murka", "cat"},
		{"chirpy", "sparrow"},
	}
	for _, e := range instances {
		if err := s.AddInstance(e.inst, e.class); err != nil {
			t.Fatalf("failed to add instance %s: %v", e.inst, err)
		}
	}

	return s
}
