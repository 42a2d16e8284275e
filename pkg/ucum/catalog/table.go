package catalog

import (
	"golang.org/x/text/cases"

	"github.com/sambeau/ucum/pkg/ucum/dimension"
)

// folder is the Unicode-correct case folder used to build and query the
// case-insensitive indexes. A naive strings.ToLower is ASCII-only and
// mishandles the handful of UCUM atoms that use Greek letters (e.g.
// µ, the micro prefix); x/text/cases.Fold is locale-independent and
// designed exactly for case-insensitive comparison rather than display.
var folder = cases.Fold()

// Fold normalises s for case-insensitive comparison.
func Fold(s string) string {
	return folder.String(s)
}

// Table is an immutable catalog of atoms and prefixes. The zero value
// is not usable; build one with NewTable or Builtin.
type Table struct {
	byCS        map[string]*Atom
	byCI        map[string]*Atom
	byName      map[string]*Atom
	prefixByCS  map[string]*Prefix
	prefixByCI  map[string]*Prefix
	allCodes    []string // every CS code, for fuzzy-match candidate lists
	synonyms    map[string][]*Atom
}

// NewTable builds a Table from slices of atoms and prefixes. Later
// entries win on CS-code collision, matching a typical "overlay wins"
// merge semantics used by LoadOverlay. When two prefixes share a CI
// code, the one whose own CS code folds to that key keeps it (so "u",
// not its alias "µ", answers a case-insensitive lookup of "u").
func NewTable(atoms []Atom, prefixes []Prefix) *Table {
	t := &Table{
		byCS:       make(map[string]*Atom, len(atoms)),
		byCI:       make(map[string]*Atom, len(atoms)),
		byName:     make(map[string]*Atom, len(atoms)),
		prefixByCS: make(map[string]*Prefix, len(prefixes)),
		prefixByCI: make(map[string]*Prefix, len(prefixes)),
		synonyms:   make(map[string][]*Atom),
	}
	for i := range atoms {
		a := atoms[i]
		t.byCS[a.CS] = &a
		t.byCI[Fold(a.CI)] = &a
		t.byName[Fold(a.Name)] = &a
		t.allCodes = append(t.allCodes, a.CS)
		for _, syn := range a.Synonyms {
			key := Fold(syn)
			t.synonyms[key] = append(t.synonyms[key], &a)
		}
	}
	for i := range prefixes {
		p := prefixes[i]
		t.prefixByCS[p.CS] = &p
		key := Fold(p.CI)
		if _, taken := t.prefixByCI[key]; !taken || Fold(p.CS) == key {
			t.prefixByCI[key] = &p
		}
	}
	return t
}

// AtomByCaseSensitive looks up an atom by its exact CS code.
func (t *Table) AtomByCaseSensitive(code string) (*Atom, bool) {
	a, ok := t.byCS[code]
	return a, ok
}

// AtomByCaseInsensitive looks up an atom by a case-folded code. It
// succeeds only when the folded string matches a catalog entry's own
// CI code — it does not fall back to the CS index. When several atoms
// share a CI code (e.g. "L" and "l"), the one added last is returned.
func (t *Table) AtomByCaseInsensitive(code string) (*Atom, bool) {
	a, ok := t.byCI[Fold(code)]
	return a, ok
}

// AtomByName looks up an atom by its display name, case-insensitively.
func (t *Table) AtomByName(name string) (*Atom, bool) {
	a, ok := t.byName[Fold(name)]
	return a, ok
}

// PrefixByCaseSensitive looks up a prefix by its exact CS code.
func (t *Table) PrefixByCaseSensitive(code string) (*Prefix, bool) {
	p, ok := t.prefixByCS[code]
	return p, ok
}

// PrefixByCaseInsensitive looks up a prefix by a case-folded code.
func (t *Table) PrefixByCaseInsensitive(code string) (*Prefix, bool) {
	p, ok := t.prefixByCI[Fold(code)]
	return p, ok
}

// AtomsBySynonym returns every atom listing term as a synonym.
func (t *Table) AtomsBySynonym(term string) []*Atom {
	return t.synonyms[Fold(term)]
}

// AtomsByDimension returns every base atom whose dimension vector
// equals d. Coherent-unit codes are rebuilt per axis with
// BaseAtomForDimension instead; nothing in this module calls
// AtomsByDimension.
func (t *Table) AtomsByDimension(d dimension.Vector) []*Atom {
	var out []*Atom
	for _, a := range t.byCS {
		if a.IsBase && a.Dimension.Equals(d) {
			out = append(out, a)
		}
	}
	return out
}

// AllCodes returns every case-sensitive atom code in the table, for
// fuzzy-match candidate generation.
func (t *Table) AllCodes() []string {
	out := make([]string, len(t.allCodes))
	copy(out, t.allCodes)
	return out
}

// BaseAtomForDimension returns the single canonical base atom for one
// axis of the dimension vector — the atom used to rebuild a coherent
// unit's display code, e.g. "m" for length, "s" for time.
func (t *Table) BaseAtomForDimension(i dimension.Index) (*Atom, bool) {
	unit := dimension.Zero()
	// Build a unit vector with a 1 in slot i.
	var comps [dimension.Size]int
	comps[i] = 1
	unit = dimension.New(comps)
	for _, a := range t.byCS {
		if a.IsBase && a.Dimension.Equals(unit) {
			return a, true
		}
	}
	return nil, false
}
