// Package query exposes the knowledge base's named operations as one
// thin surface. The CLI, REPL and server call only this package; it
// performs no reasoning of its own beyond delegating to kb and infer
// and logging what it was asked.
package query

import (
	"go.uber.org/zap"

	"github.com/PavelShpagin/ontos/infer"
	"github.com/PavelShpagin/ontos/kb"
)

// Facade wraps a read-only store with the fixed query operations.
type Facade struct {
	store  *kb.Store
	logger *zap.SugaredLogger
}

// NewFacade creates a query facade over a fully constructed store.
func NewFacade(store *kb.Store, log *zap.SugaredLogger) *Facade {
	return &Facade{store: store, logger: log}
}

// Store returns the underlying store for read-only consumers such as
// the graph exporter.
func (f *Facade) Store() *kb.Store {
	return f.store
}

// IsA reports whether ancestor is a transitive taxonomy ancestor of child.
func (f *Facade) IsA(child, ancestor string) bool {
	result := infer.IsA(f.store, child, ancestor)
	f.logger.Debugw("query is_a", "child", child, "ancestor", ancestor, "result", result)
	return result
}

// PartOf reports whether part is a transitive part of whole, lifting
// instance operands to their classes.
func (f *Facade) PartOf(part, whole string) bool {
	result := infer.PartOf(f.store, part, whole)
	f.logger.Debugw("query part_of", "part", part, "whole", whole, "result", result)
	return result
}

// DependsOn reports whether a transitively depends on b.
func (f *Facade) DependsOn(a, b string) bool {
	result := infer.DependsOn(f.store, a, b)
	f.logger.Debugw("query depends_on", "a", a, "b", b, "result", result)
	return result
}

// HasPart reports whether whole has part as a direct part.
func (f *Facade) HasPart(whole, part string) bool {
	result := infer.HasPart(f.store, whole, part)
	f.logger.Debugw("query has_part", "whole", whole, "part", part, "result", result)
	return result
}

// HasPartTransitive reports whether whole has part under part inference,
// accounting for taxonomy inheritance on both sides.
func (f *Facade) HasPartTransitive(whole, part string) bool {
	result := infer.HasPartTransitive(f.store, whole, part)
	f.logger.Debugw("query has_part_transitive", "whole", whole, "part", part, "result", result)
	return result
}

// Path returns the shortest directed labeled edge sequence from a to b,
// nil when none exists.
func (f *Facade) Path(a, b string) []infer.Step {
	path := infer.AnyPath(f.store, a, b)
	f.logger.Debugw("query path", "from", a, "to", b, "steps", len(path), "found", path != nil)
	return path
}

// Connected reports whether any undirected chain of facts links a and b.
func (f *Facade) Connected(a, b string) bool {
	result := infer.Connected(f.store, a, b)
	f.logger.Debugw("query connected", "a", a, "b", b, "result", result)
	return result
}

// ConnectedPath returns a shortest undirected witness chain between a
// and b, nil when they are not connected.
func (f *Facade) ConnectedPath(a, b string) []infer.Step {
	path := infer.ConnectedPath(f.store, a, b)
	f.logger.Debugw("query connected path", "a", a, "b", b, "steps", len(path), "found", path != nil)
	return path
}

// InstancesOf returns the instances assigned exactly to class; empty for
// unregistered classes, never an error.
func (f *Facade) InstancesOf(class string) []string {
	return f.store.InstancesOf(class)
}

// ClassOf returns the class an instance is assigned to.
func (f *Facade) ClassOf(instance string) (string, bool) {
	return f.store.ClassOf(instance)
}
