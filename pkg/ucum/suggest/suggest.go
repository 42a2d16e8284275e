// Package suggest implements the Suggestion Index (component G): given
// an input that failed to resolve, or one that resolved but closely
// matches a better-known code, it proposes alternatives drawn from the
// catalog's code, name, and synonym indexes.
package suggest

import (
	"slices"

	"github.com/sambeau/ucum/pkg/ucum/catalog"
	"github.com/sambeau/ucum/pkg/ucum/ucumerr"
)

// Index answers "did you mean?" queries against a catalog.Table.
type Index struct {
	tab *catalog.Table
}

// New builds an Index over tab.
func New(tab *catalog.Table) *Index {
	return &Index{tab: tab}
}

// ForUnknownAtom returns up to n candidate CS codes for an atom token
// that failed to resolve: near-miss codes first, ranked by edit
// distance, then the codes of atoms whose display name is a near miss
// (so "mter" suggests m via "meter").
func (ix *Index) ForUnknownAtom(token string, n int) []string {
	codes := ix.tab.AllCodes()
	out := ucumerr.TopMatches(token, codes, n)
	var names []string
	for _, c := range codes {
		if a, ok := ix.tab.AtomByCaseSensitive(c); ok && a.Name != "" {
			names = append(names, a.Name)
		}
	}
	for _, name := range ucumerr.TopMatches(token, names, n) {
		if a, ok := ix.tab.AtomByName(name); ok && len(out) < n && !slices.Contains(out, a.CS) {
			out = append(out, a.CS)
		}
	}
	return out
}

// NameMatch is a single candidate produced by MatchName: the atom it
// points to, plus the term (name or synonym) that matched.
type NameMatch struct {
	Atom    *catalog.Atom
	Term    string
	Exact   bool
}

// MatchName looks for the atom term names exactly: as a CS code, then
// a CI code, then a display name (case-insensitively), then a synonym.
// It does no fuzzy matching and returns nil when none of these match;
// n is not used, and a synonym shared by several atoms returns them
// all. Used for the
// annotation-content advisory: a unit expression that parses cleanly
// but carries an annotation like "{gram}" is offered "did you mean g
// (gram)?" even though the bare expression was already valid.
func (ix *Index) MatchName(term string, n int) []NameMatch {
	if a, ok := ix.tab.AtomByCaseSensitive(term); ok {
		return []NameMatch{{Atom: a, Term: term, Exact: true}}
	}
	if a, ok := ix.tab.AtomByCaseInsensitive(term); ok {
		return []NameMatch{{Atom: a, Term: term, Exact: true}}
	}
	if a, ok := ix.tab.AtomByName(term); ok {
		return []NameMatch{{Atom: a, Term: term, Exact: true}}
	}
	if atoms := ix.tab.AtomsBySynonym(term); len(atoms) > 0 {
		out := make([]NameMatch, 0, len(atoms))
		for _, a := range atoms {
			out = append(out, NameMatch{Atom: a, Term: term, Exact: true})
		}
		return out
	}
	return nil
}
