package sym

import (
	"testing"
	"unicode/utf8"
)

func TestRelationGlyphsAreBidirectional(t *testing.T) {
	for rel, glyph := range RelationGlyphs {
		got, ok := GlyphRelations[glyph]
		if !ok {
			t.Errorf("RelationGlyphs has %q → %q, but GlyphRelations has no entry for %q", rel, glyph, glyph)
			continue
		}
		if got != rel {
			t.Errorf("bidirectional mismatch: RelationGlyphs[%q] = %q, but GlyphRelations[%q] = %q", rel, glyph, glyph, got)
		}
	}
}

func TestGlyphsAreSingleRunes(t *testing.T) {
	for rel, glyph := range RelationGlyphs {
		if utf8.RuneCountInString(glyph) != 1 {
			t.Errorf("glyph for %q should be a single rune, got %q (%d runes)", rel, glyph, utf8.RuneCountInString(glyph))
		}
	}
}

func TestForRelationFallsBackToName(t *testing.T) {
	if got := ForRelation("made_up"); got != "made_up" {
		t.Errorf("ForRelation(made_up) = %q, want the name itself", got)
	}
	if got := ForRelation("is_a"); got != IsA {
		t.Errorf("ForRelation(is_a) = %q, want %q", got, IsA)
	}
}
