// Package alias maps surface names, including non-English synonyms, to
// the canonical identifiers the knowledge base is keyed by. Resolution
// happens before any query reaches the core: the reasoner only ever sees
// canonical identifiers, and an unresolvable term fails here with
// ErrUnknownTerm instead of silently querying nothing.
package alias

import (
	"sort"
	"strings"

	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/kb"
)

// Resolver is an immutable surface-name table bound to a store. Canonical
// identifiers already registered in the store pass through unchanged.
type Resolver struct {
	canonical map[string]string
	store     *kb.Store
}

// NewResolver builds a resolver from an alias table. The table maps each
// surface form to its canonical identifier; it is copied, so the caller's
// map stays untouched.
func NewResolver(table map[string]string, store *kb.Store) *Resolver {
	canonical := make(map[string]string, len(table))
	for surface, id := range table {
		canonical[surface] = id
	}
	return &Resolver{canonical: canonical, store: store}
}

// Resolve maps a surface term to its canonical identifier. Lookup order:
// the alias table first, then direct pass-through for identifiers the
// store already knows. Unknown terms fail with an ErrUnknownTerm-wrapped
// error naming the term.
func (r *Resolver) Resolve(term string) (string, error) {
	key := strings.TrimSpace(term)
	if key == "" {
		return "", errors.Wrap(errors.ErrUnknownTerm, "empty term")
	}
	if id, ok := r.canonical[key]; ok {
		return id, nil
	}
	if r.store != nil && r.store.Contains(key) {
		return key, nil
	}
	return "", errors.NewUnknownTermError(term)
}

// ResolveAll resolves every term, failing on the first unknown one.
func (r *Resolver) ResolveAll(terms ...string) ([]string, error) {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		id, err := r.Resolve(term)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// AliasesFor returns all surface forms that resolve to canonical, sorted,
// excluding the canonical spelling itself.
func (r *Resolver) AliasesFor(canonical string) []string {
	var aliases []string
	for surface, id := range r.canonical {
		if id == canonical && surface != canonical {
			aliases = append(aliases, surface)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// Len returns the number of surface forms in the table.
func (r *Resolver) Len() int {
	return len(r.canonical)
}
