package suggest

import (
	"testing"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
)

func newIndex(t *testing.T) *Index {
	t.Helper()
	return New(catalog.Builtin())
}

func TestMatchNameFindsAtomByCode(t *testing.T) {
	ix := newIndex(t)
	matches := ix.MatchName("g", 1)
	if len(matches) == 0 {
		t.Fatal("expected a match for the atom code \"g\"")
	}
	if matches[0].Atom.CS != "g" {
		t.Errorf("expected CS \"g\", got %q", matches[0].Atom.CS)
	}
}

func TestMatchNameFindsAtomByDisplayName(t *testing.T) {
	ix := newIndex(t)
	matches := ix.MatchName("gram", 1)
	if len(matches) == 0 || matches[0].Atom.CS != "g" {
		t.Fatalf("expected \"gram\" to resolve to g, got %+v", matches)
	}
}

func TestMatchNameFindsAtomBySynonym(t *testing.T) {
	ix := newIndex(t)
	matches := ix.MatchName("mole", 1)
	if len(matches) == 0 || matches[0].Atom.CS != "mol" {
		t.Fatalf("expected \"mole\" to resolve to mol, got %+v", matches)
	}
}

func TestMatchNameUnknownTermReturnsNil(t *testing.T) {
	ix := newIndex(t)
	if matches := ix.MatchName("glorp", 1); matches != nil {
		t.Errorf("expected nil, got %+v", matches)
	}
}

func TestForUnknownAtomSuggestsNearMiss(t *testing.T) {
	ix := newIndex(t)
	suggestions := ix.ForUnknownAtom("mter", 3)
	if len(suggestions) == 0 {
		t.Error("expected at least one suggestion for a near-miss atom code")
	}
}
