// Package sym defines canonical glyphs for ontos relations and system
// markers. These symbols are stable across CLI output, the REPL prompt,
// and documentation, and give each relation a recognizable visual anchor
// in rendered paths.
package sym

// Relation glyphs — one per edge kind in the knowledge base.
const (
	IsA         = "⊑" // taxonomy subsumption, child ⊑ parent
	PartOf      = "⋐" // composition, part ⋐ whole
	DependsOn   = "⇀" // prerequisite, a ⇀ b
	HasProperty = "⊸" // attribute fact, subject ⊸ property
	InstanceOf  = "∈" // membership, instance ∈ class
)

// System markers used by the CLI and server banner.
const (
	KB    = "◆" // knowledge base
	Path  = "⟿" // path query
	Audit = "✓" // structural audit
	Repl  = "»" // repl prompt
)

// RelationGlyphs maps canonical relation names to their glyph.
var RelationGlyphs = map[string]string{
	"is_a":         IsA,
	"part_of":      PartOf,
	"depends_on":   DependsOn,
	"has_property": HasProperty,
	"instance_of":  InstanceOf,
}

// GlyphRelations is the inverse of RelationGlyphs.
var GlyphRelations = map[string]string{
	IsA:         "is_a",
	PartOf:      "part_of",
	DependsOn:   "depends_on",
	HasProperty: "has_property",
	InstanceOf:  "instance_of",
}

// ForRelation returns the glyph for a relation name, or the name itself
// when no glyph is registered.
func ForRelation(rel string) string {
	if g, ok := RelationGlyphs[rel]; ok {
		return g
	}
	return rel
}
