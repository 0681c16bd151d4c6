// Package infer answers closure queries by traversing the knowledge
// base's directed relations.
//
// If a relation defines a hierarchy, and an entity has an edge relating
// it to an item in the hierarchy, then reachability infers that the
// entity also relates to every ancestor item on the hierarchy path.
// For example, given taxonomy facts
//
//	[dog] -is_a-> [canine] -is_a-> [mammal]
//
// the closure query IsA(dog, mammal) is true even though no direct edge
// says so.
//
// Every traversal in this package is an explicit queue or stack with a
// visited set, so queries terminate on any finite graph, cyclic input
// included. The package holds no state: all functions take the store as
// their first argument and perform pure reads, so concurrent queries
// need no locking once construction has finished.
package infer
